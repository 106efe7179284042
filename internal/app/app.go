package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/panesync/internal/grid"
	"github.com/atomicstack/panesync/internal/layout"
	"github.com/atomicstack/panesync/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width  int
	Height int
	// InitialWidth and InitialHeight seed the layout from the detected
	// terminal when Width or Height follow the terminal.
	InitialWidth  int
	InitialHeight int
	View          string
	Rows          int
	Cols          int
	FrozenCols    int
	ColWidth      int
	// Divider is an absolute cell position ("24") or a percentage of the
	// available width ("30%"). Empty places it after the frozen columns.
	Divider string
	MinPane int
	Sync    string
	Clamp   string
	Data    string
	Tasks   []string
}

// Divider is a parsed divider setting.
type Divider struct {
	Position int
	Percent  float64
}

// ParseDivider accepts "", "24" or "30%".
func ParseDivider(value string) (Divider, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Divider{}, nil
	}
	if pct, ok := strings.CutSuffix(value, "%"); ok {
		p, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil || p < 0 || p > 100 {
			return Divider{}, fmt.Errorf("%w: divider percentage %q", layout.ErrInvalidConfiguration, value)
		}
		return Divider{Percent: p}, nil
	}
	pos, err := strconv.Atoi(value)
	if err != nil || pos < 0 {
		return Divider{}, fmt.Errorf("%w: divider position %q", layout.ErrInvalidConfiguration, value)
	}
	return Divider{Position: pos}, nil
}

// Options resolves cfg into model options, loading the data source.
func Options(cfg Config) (ui.Options, error) {
	view, err := ui.ParseView(cfg.View)
	if err != nil {
		return ui.Options{}, err
	}
	sync, err := layout.ParseAxes(cfg.Sync)
	if err != nil {
		return ui.Options{}, err
	}
	clamp, err := layout.ParseClampPolicy(cfg.Clamp)
	if err != nil {
		return ui.Options{}, err
	}
	divider, err := ParseDivider(cfg.Divider)
	if err != nil {
		return ui.Options{}, err
	}
	var sheet grid.Sheet
	if cfg.Data != "" {
		if sheet, err = grid.LoadSheet(cfg.Data); err != nil {
			return ui.Options{}, fmt.Errorf("load %s: %w", cfg.Data, err)
		}
	} else {
		sheet = grid.DemoSheet(cfg.Rows, cfg.Cols)
	}
	frozen := min(cfg.FrozenCols, len(sheet.Columns))
	return ui.Options{
		Width:         cfg.Width,
		Height:        cfg.Height,
		InitialWidth:  cfg.InitialWidth,
		InitialHeight: cfg.InitialHeight,
		View:          view,
		Sheet:         sheet,
		Grid: grid.Config{
			FrozenColumns:   frozen,
			ColumnWidth:     cfg.ColWidth,
			DividerPercent:  divider.Percent,
			DividerPosition: divider.Position,
			MinPane:         cfg.MinPane,
			Sync:            sync,
			Clamp:           clamp,
		},
		Tasks: cfg.Tasks,
	}, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	opts, err := Options(cfg)
	if err != nil {
		return err
	}
	model, err := ui.NewModel(opts)
	if err != nil {
		return fmt.Errorf("build model: %w", err)
	}
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
