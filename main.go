package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/panesync/internal/app"
	"github.com/atomicstack/panesync/internal/config"
	"github.com/atomicstack/panesync/internal/logging"
	"github.com/atomicstack/panesync/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	tty := probeTerminal()
	seedSize(&runtimeCfg.App, tty)
	events.App.Start(startupTracePayload(runtimeCfg, tty))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// terminal is what the standard descriptors report about the controlling tty.
type terminal struct {
	Size   *terminalSize   `json:"size,omitempty"`
	Probes []terminalProbe `json:"probes"`
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type terminalProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// probeTerminal asks stdout first, since that is where the grid is drawn.
func probeTerminal() terminal {
	fds := []struct {
		name string
		fd   uintptr
	}{
		{"stdout", os.Stdout.Fd()},
		{"stdin", os.Stdin.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	var t terminal
	for _, d := range fds {
		probe := terminalProbe{Name: d.name}
		fd := int(d.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			probe.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				probe.Width, probe.Height = width, height
				if t.Size == nil && width > 0 && height > 0 {
					t.Size = &terminalSize{Source: d.name, Width: width, Height: height}
				}
			} else {
				probe.Error = err.Error()
			}
		}
		t.Probes = append(t.Probes, probe)
	}
	return t
}

// seedSize gives the unpinned dimensions of cfg the detected terminal size,
// so both splits start with the right total before Bubble Tea reports one.
func seedSize(cfg *app.Config, t terminal) bool {
	if t.Size == nil {
		return false
	}
	seeded := false
	if cfg.Width == 0 {
		cfg.InitialWidth = t.Size.Width
		seeded = true
	}
	if cfg.Height == 0 {
		cfg.InitialHeight = t.Size.Height
		seeded = true
	}
	if seeded {
		events.App.Seed(t.Size.Source, cfg.InitialWidth, cfg.InitialHeight)
	}
	return seeded
}

// startupTracePayload records how the layout was configured and sized.
func startupTracePayload(cfg config.Config, t terminal) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	a := cfg.App
	payload := map[string]interface{}{
		"argv":       cfg.Args,
		"configFile": cfg.File,
		"flags":      flags,
		"layout": map[string]interface{}{
			"width":         a.Width,
			"height":        a.Height,
			"initialWidth":  a.InitialWidth,
			"initialHeight": a.InitialHeight,
			"frozenCols":    a.FrozenCols,
			"divider":       a.Divider,
			"sync":          a.Sync,
			"clamp":         a.Clamp,
			"data":          a.Data,
		},
		"terminal": t,
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}
