package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/uvlist/internal/app"
	"github.com/atomicstack/uvlist/internal/config"
	"github.com/atomicstack/uvlist/internal/logging"
	"github.com/atomicstack/uvlist/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	if logging.TraceEnabled() {
		events.App.Start(newStartupInfo(cfg, os.Stdin, os.Stdout, os.Stderr))
	}

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupInfo is the payload of the app.start trace event.
type startupInfo struct {
	Argv       []string          `json:"argv"`
	Flags      map[string]string `json:"flags"`
	LogFile    string            `json:"log_file"`
	App        app.Config        `json:"app"`
	Executable string            `json:"executable,omitempty"`
	Cwd        string            `json:"cwd,omitempty"`
	Errors     []string          `json:"errors,omitempty"`
	Terminal   terminalInfo      `json:"terminal"`
}

type terminalInfo struct {
	Source      string       `json:"source,omitempty"`
	Width       int          `json:"width,omitempty"`
	Height      int          `json:"height,omitempty"`
	Descriptors []descriptor `json:"descriptors"`
}

type descriptor struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

func newStartupInfo(cfg config.Config, files ...*os.File) startupInfo {
	info := startupInfo{
		Argv:     cfg.Args,
		Flags:    cfg.Flags,
		LogFile:  logging.Path(),
		App:      cfg.App,
		Terminal: probeTerminal(files...),
	}
	if exe, err := os.Executable(); err == nil {
		info.Executable = exe
	} else {
		info.Errors = append(info.Errors, "executable: "+err.Error())
	}
	if cwd, err := os.Getwd(); err == nil {
		info.Cwd = cwd
	} else {
		info.Errors = append(info.Errors, "cwd: "+err.Error())
	}
	return info
}

// probeTerminal reports which files are terminals. The size of the first
// terminal found becomes the detected size.
func probeTerminal(files ...*os.File) terminalInfo {
	var info terminalInfo
	for _, f := range files {
		if f == nil {
			continue
		}
		d := descriptor{Name: f.Name()}
		fd := int(f.Fd())
		if fd >= 0 && term.IsTerminal(fd) {
			d.IsTerminal = true
			w, h, err := term.GetSize(fd)
			switch {
			case err != nil:
				d.Error = err.Error()
			case info.Source == "":
				info.Source, info.Width, info.Height = d.Name, w, h
				fallthrough
			default:
				d.Width, d.Height = w, h
			}
		}
		info.Descriptors = append(info.Descriptors, d)
	}
	return info
}
