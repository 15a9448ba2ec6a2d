package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/atomicstack/onekey/internal/app"
	"github.com/atomicstack/onekey/internal/config"
	"github.com/atomicstack/onekey/internal/format/table"
	"github.com/atomicstack/onekey/internal/logging"
	"github.com/atomicstack/onekey/internal/logging/events"
	"github.com/atomicstack/onekey/internal/menu"
)

// configError marks failures that exit with status 2.
type configError struct {
	err error
}

func (e configError) Error() string { return e.err.Error() }

func (e configError) Unwrap() error { return e.err }

func main() {
	err := newRootCmd().Execute()
	if err == nil {
		return
	}
	var cfgErr configError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Error(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "onekey",
		Short:         "One-key menu for rebuilding, serving and publishing a Hugo site",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runtimeCfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logging.Configure(runtimeCfg.Logging.FilePath)
			logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

			traceStartup(runtimeCfg)

			return app.Run(context.Background(), runtimeCfg.App)
		},
	}
	config.RegisterFlags(root.Flags())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return configError{err: err}
	})
	root.AddCommand(newPresetsCmd())
	return root
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	runtimeCfg, err := config.Load(cmd.Flags(), os.Args[1:])
	if err != nil {
		return config.Config{}, configError{err: err}
	}
	if err := config.Validate(runtimeCfg); err != nil {
		return config.Config{}, configError{err: err}
	}
	return runtimeCfg, nil
}

func newPresetsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "presets [name...]",
		Short: "Print the key bindings and commands of each menu preset",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				for _, p := range menu.Presets() {
					names = append(names, string(p))
				}
			}
			return writePresets(cmd.OutOrStdout(), names, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format (yaml, table)")
	return cmd
}

func writePresets(w io.Writer, names []string, format string) error {
	summaries := make([]menu.PresetSummary, 0, len(names))
	for _, name := range names {
		p, err := menu.ParsePreset(name)
		if err != nil {
			return configError{err: err}
		}
		m, err := menu.ForPreset(p)
		if err != nil {
			return errors.Wrapf(err, "build preset %s", p)
		}
		summaries = append(summaries, m.Summary())
	}
	switch format {
	case "yaml":
		data, err := yaml.Marshal(summaries)
		if err != nil {
			return errors.Wrap(err, "encode presets")
		}
		_, err = w.Write(data)
		return err
	case "table":
		_, err := io.WriteString(w, strings.Join(presetTable(summaries), "\n")+"\n")
		return err
	}
	return configError{err: fmt.Errorf("unknown format %q (want yaml or table)", format)}
}

// presetTable renders one row per step so fused and multi-step actions stay
// readable.
func presetTable(summaries []menu.PresetSummary) []string {
	rows := [][]string{{"PRESET", "KEY", "LABEL", "STEP"}}
	for _, s := range summaries {
		for _, e := range s.Entries {
			for i, step := range e.Steps {
				if i == 0 {
					rows = append(rows, []string{string(s.Preset), e.Key, e.Label, step})
					continue
				}
				rows = append(rows, []string{"", "", "", step})
			}
		}
	}
	return table.Format(rows, nil)
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails probes the standard streams for a terminal and records
// the first size it can read.
func collectTTYDetails() ttyDetails {
	streams := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	details := ttyDetails{Probes: make([]ttyProbeResult, 0, len(streams))}
	for _, stream := range streams {
		probe := ttyProbeResult{Name: stream.name}
		fd := int(stream.file.Fd())
		if term.IsTerminal(fd) {
			probe.IsTerminal = true
			width, height, err := term.GetSize(fd)
			if err != nil {
				probe.Error = err.Error()
			} else {
				probe.Width, probe.Height = width, height
				if details.Detected == nil {
					details.Detected = &ttyDetected{Source: stream.name, Width: width, Height: height}
				}
			}
		}
		details.Probes = append(details.Probes, probe)
	}
	return details
}
