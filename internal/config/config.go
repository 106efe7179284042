package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/atomicstack/panesync/internal/app"
	"github.com/atomicstack/panesync/internal/layout"
	"github.com/atomicstack/panesync/internal/ui"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// File is the config file that was read, if any.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth      = "PANESYNC_WIDTH"
	envHeight     = "PANESYNC_HEIGHT"
	envTrace      = "PANESYNC_TRACE"
	envLogFile    = "PANESYNC_LOG_FILE"
	envView       = "PANESYNC_VIEW"
	envRows       = "PANESYNC_ROWS"
	envCols       = "PANESYNC_COLS"
	envFrozenCols = "PANESYNC_FROZEN_COLS"
	envColWidth   = "PANESYNC_COL_WIDTH"
	envDivider    = "PANESYNC_DIVIDER"
	envMinPane    = "PANESYNC_MIN_PANE"
	envSync       = "PANESYNC_SYNC"
	envClamp      = "PANESYNC_CLAMP"
	envData       = "PANESYNC_DATA"
	envTasks      = "PANESYNC_TASKS"
	envConfig     = "PANESYNC_CONFIG"
)

const (
	defaultRows       = 200
	defaultCols       = 27
	defaultFrozenCols = 1
	defaultColWidth   = 10
)

// fileConfig mirrors the flags in a TOML or YAML file. Pointers mark keys
// that were present.
type fileConfig struct {
	Width      *int     `toml:"width" yaml:"width"`
	Height     *int     `toml:"height" yaml:"height"`
	Trace      *bool    `toml:"trace" yaml:"trace"`
	LogFile    *string  `toml:"log-file" yaml:"log-file"`
	View       *string  `toml:"view" yaml:"view"`
	Rows       *int     `toml:"rows" yaml:"rows"`
	Cols       *int     `toml:"cols" yaml:"cols"`
	FrozenCols *int     `toml:"frozen-cols" yaml:"frozen-cols"`
	ColWidth   *int     `toml:"col-width" yaml:"col-width"`
	Divider    *string  `toml:"divider" yaml:"divider"`
	MinPane    *int     `toml:"min-pane" yaml:"min-pane"`
	Sync       *string  `toml:"sync" yaml:"sync"`
	Clamp      *string  `toml:"clamp" yaml:"clamp"`
	Data       *string  `toml:"data" yaml:"data"`
	Tasks      []string `toml:"tasks" yaml:"tasks"`
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("panesync", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	view := fs.String("view", envOrDefault(env, envView, "grid"), "initial view: grid or tasks")
	rows := fs.Int("rows", envOrInt(env, envRows, defaultRows), "rows in the generated demo sheet")
	cols := fs.Int("cols", envOrInt(env, envCols, defaultCols), "columns in the generated demo sheet, including the row label")
	frozenCols := fs.Int("frozen-cols", envOrInt(env, envFrozenCols, defaultFrozenCols), "leading columns kept in the frozen pane")
	colWidth := fs.Int("col-width", envOrInt(env, envColWidth, defaultColWidth), "width of every column in cells")
	divider := fs.String("divider", envOrDefault(env, envDivider, ""), `initial divider position in cells ("24") or percent ("30%")`)
	minPane := fs.Int("min-pane", envOrInt(env, envMinPane, 0), "minimum width of either side of the divider")
	sync := fs.String("sync", envOrDefault(env, envSync, "both"), "synchronised scroll axes: both, horizontal or vertical")
	clamp := fs.String("clamp", envOrDefault(env, envClamp, "independent"), "clamp policy for unequal ranges: independent or shortest")
	data := fs.String("data", envOrDefault(env, envData, ""), "CSV or XLSX file to display instead of the demo sheet")
	tasks := fs.String("tasks", envOrDefault(env, envTasks, ""), "comma separated items for the reorderable list")
	file := fs.String("config", envOrDefault(env, envConfig, ""), "TOML or YAML config file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	if *file != "" {
		fc, err := readFile(*file)
		if err != nil {
			return Config{}, err
		}
		visited := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { visited[f.Name] = true })
		unset := func(name, envKey string) bool {
			if visited[name] {
				return false
			}
			_, ok := env[envKey]
			return !ok
		}
		applyInt(fc.Width, unset("width", envWidth), width)
		applyInt(fc.Height, unset("height", envHeight), height)
		applyBool(fc.Trace, unset("trace", envTrace), trace)
		applyString(fc.LogFile, unset("log-file", envLogFile), logFile)
		applyString(fc.View, unset("view", envView), view)
		applyInt(fc.Rows, unset("rows", envRows), rows)
		applyInt(fc.Cols, unset("cols", envCols), cols)
		applyInt(fc.FrozenCols, unset("frozen-cols", envFrozenCols), frozenCols)
		applyInt(fc.ColWidth, unset("col-width", envColWidth), colWidth)
		applyString(fc.Divider, unset("divider", envDivider), divider)
		applyInt(fc.MinPane, unset("min-pane", envMinPane), minPane)
		applyString(fc.Sync, unset("sync", envSync), sync)
		applyString(fc.Clamp, unset("clamp", envClamp), clamp)
		applyString(fc.Data, unset("data", envData), data)
		if fc.Tasks != nil && unset("tasks", envTasks) {
			*tasks = strings.Join(fc.Tasks, ",")
		}
	}

	cfg := Config{
		App: app.Config{
			Width:      *width,
			Height:     *height,
			View:       *view,
			Rows:       *rows,
			Cols:       *cols,
			FrozenCols: *frozenCols,
			ColWidth:   *colWidth,
			Divider:    *divider,
			MinPane:    *minPane,
			Sync:       *sync,
			Clamp:      *clamp,
			Data:       *data,
			Tasks:      splitList(*tasks),
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: *file,
		Flags: map[string]string{
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
			"view":       *view,
			"rows":       strconv.Itoa(*rows),
			"cols":       strconv.Itoa(*cols),
			"frozenCols": strconv.Itoa(*frozenCols),
			"colWidth":   strconv.Itoa(*colWidth),
			"divider":    *divider,
			"minPane":    strconv.Itoa(*minPane),
			"sync":       *sync,
			"clamp":      *clamp,
			"data":       *data,
			"tasks":      *tasks,
			"config":     *file,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func readFile(path string) (fileConfig, error) {
	var fc fileConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(raw), &fc); err != nil {
			return fc, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return fc, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return fc, fmt.Errorf("config file %s: unsupported extension %q", path, filepath.Ext(path))
	}
	return fc, nil
}

func applyInt(v *int, ok bool, dst *int) {
	if v != nil && ok {
		*dst = *v
	}
}

func applyBool(v *bool, ok bool, dst *bool) {
	if v != nil && ok {
		*dst = *v
	}
}

func applyString(v *string, ok bool, dst *string) {
	if v != nil && ok {
		*dst = *v
	}
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate reports settings the grid cannot be built from.
func Validate(cfg Config) error {
	a := cfg.App
	if a.Width < 0 || a.Height < 0 {
		return fmt.Errorf("%w: negative viewport %dx%d", layout.ErrInvalidConfiguration, a.Width, a.Height)
	}
	if a.Data == "" {
		if a.Rows < 0 {
			return fmt.Errorf("%w: rows must be >= 0 (got %d)", layout.ErrInvalidConfiguration, a.Rows)
		}
		if a.Cols < 1 {
			return fmt.Errorf("%w: cols must be >= 1 (got %d)", layout.ErrInvalidConfiguration, a.Cols)
		}
		if a.FrozenCols > a.Cols {
			return fmt.Errorf("%w: frozen-cols %d exceeds cols %d", layout.ErrInvalidConfiguration, a.FrozenCols, a.Cols)
		}
	}
	if a.FrozenCols < 0 {
		return fmt.Errorf("%w: frozen-cols must be >= 0 (got %d)", layout.ErrInvalidConfiguration, a.FrozenCols)
	}
	if a.ColWidth < 2 {
		return fmt.Errorf("%w: col-width must be >= 2 (got %d)", layout.ErrInvalidConfiguration, a.ColWidth)
	}
	if a.MinPane < 0 {
		return fmt.Errorf("%w: min-pane must be >= 0 (got %d)", layout.ErrInvalidConfiguration, a.MinPane)
	}
	if _, err := app.ParseDivider(a.Divider); err != nil {
		return err
	}
	if _, err := layout.ParseAxes(a.Sync); err != nil {
		return err
	}
	if _, err := layout.ParseClampPolicy(a.Clamp); err != nil {
		return err
	}
	if _, err := ui.ParseView(a.View); err != nil {
		return err
	}
	return nil
}
