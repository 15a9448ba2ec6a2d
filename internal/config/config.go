package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/atomicstack/onekey/internal/app"
	"github.com/atomicstack/onekey/internal/logging"
	"github.com/atomicstack/onekey/internal/menu"
	"github.com/atomicstack/onekey/internal/shell"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// EnvPrefix is prepended to every flag name, upper-cased with dashes turned
// into underscores, to form its environment override.
const EnvPrefix = "ONEKEY"

const (
	flagPreset     = "preset"
	flagInvokeMode = "invoke-mode"
	flagShell      = "shell"
	flagWorkDir    = "workdir"
	flagTitle      = "title"
	flagTUI        = "tui"
	flagFooter     = "footer"
	flagNoColor    = "no-color"
	flagTrace      = "trace"
	flagLogFile    = "log-file"
)

const defaultTitle = "onekey"

// RegisterFlags declares every configuration flag on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(flagPreset, string(menu.PresetFull), "menu layout ("+joinPresets()+")")
	fs.String(flagInvokeMode, string(shell.ModeShell), "how replies reach commands: shell splices them into the line, exec passes them as arguments")
	fs.String(flagShell, "", "command interpreter for shell lines, e.g. \"bash -c\" (default cmd /C on Windows, sh -c elsewhere)")
	fs.String(flagWorkDir, ".", "working directory for every command")
	fs.String(flagTitle, defaultTitle, "console window title")
	fs.Bool(flagTUI, false, "use the interactive picker when attached to a terminal")
	fs.Bool(flagFooter, false, "show the key hint row in the interactive picker")
	fs.Bool(flagNoColor, false, "disable colored output (also honours NO_COLOR)")
	fs.Bool(flagTrace, false, "enable verbose JSON trace logging")
	fs.String(flagLogFile, logging.DefaultFile, "path to the log file")
}

func joinPresets() string {
	names := make([]string, 0, len(menu.Presets()))
	for _, p := range menu.Presets() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

// Load resolves the flags in fs against ONEKEY_* environment overrides. Flags
// set on the command line win over the environment, which wins over the flag
// defaults. args is recorded as given for tracing.
func Load(fs *pflag.FlagSet, args []string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, errors.Wrap(err, "bind flags")
	}

	preset, err := menu.ParsePreset(v.GetString(flagPreset))
	if err != nil {
		return Config{}, errors.Wrap(err, flagPreset)
	}
	mode, err := shell.ParseMode(v.GetString(flagInvokeMode))
	if err != nil {
		return Config{}, errors.Wrap(err, flagInvokeMode)
	}
	interpreter, err := shell.ParseInterpreter(v.GetString(flagShell))
	if err != nil {
		return Config{}, errors.Wrap(err, flagShell)
	}

	colorless := v.GetBool(flagNoColor) || os.Getenv("NO_COLOR") != ""
	cfg := Config{
		App: app.Config{
			Preset:      preset,
			Mode:        mode,
			Interpreter: interpreter,
			WorkDir:     v.GetString(flagWorkDir),
			Title:       v.GetString(flagTitle),
			TUI:         v.GetBool(flagTUI),
			ShowFooter:  v.GetBool(flagFooter),
			Colorless:   colorless,
		},
		Logging: Logging{
			FilePath: v.GetString(flagLogFile),
			Trace:    v.GetBool(flagTrace),
		},
		Flags: map[string]string{
			flagPreset:     string(preset),
			flagInvokeMode: string(mode),
			flagShell:      strings.Join(interpreter, " "),
			flagWorkDir:    v.GetString(flagWorkDir),
			flagTitle:      v.GetString(flagTitle),
			flagTUI:        strconv.FormatBool(v.GetBool(flagTUI)),
			flagFooter:     strconv.FormatBool(v.GetBool(flagFooter)),
			flagNoColor:    strconv.FormatBool(colorless),
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

// Validate checks the parts of the configuration that depend on the host.
func Validate(cfg Config) error {
	if cfg.App.WorkDir != "" {
		info, err := os.Stat(cfg.App.WorkDir)
		if err != nil {
			return errors.Wrap(err, flagWorkDir)
		}
		if !info.IsDir() {
			return fmt.Errorf("%s: %s is not a directory", flagWorkDir, cfg.App.WorkDir)
		}
	}
	if len(cfg.App.Interpreter) == 0 {
		return fmt.Errorf("%s: interpreter must not be empty", flagShell)
	}
	if strings.TrimSpace(cfg.Logging.FilePath) == "" {
		return fmt.Errorf("%s must not be empty", flagLogFile)
	}
	return nil
}
