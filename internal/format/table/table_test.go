package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"KEY", "LABEL", "STEPS"},
		{"0", "Republish site", "hugo -D"},
		{"10", "Push", "git push"},
	}
	got := Format(rows, []Alignment{AlignRight, AlignLeft})
	want := []string{
		"KEY  LABEL           STEPS",
		"  0  Republish site  hugo -D",
		" 10  Push            git push",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatRaggedRows(t *testing.T) {
	got := Format([][]string{{"a", "bb"}, {"ccc"}}, nil)
	want := []string{"a    bb", "ccc"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil for no rows, got %v", got)
	}
}
