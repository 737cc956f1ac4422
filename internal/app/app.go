package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/uvlist/internal/engine"
	"github.com/atomicstack/uvlist/internal/feed"
	"github.com/atomicstack/uvlist/internal/mock"
	"github.com/atomicstack/uvlist/internal/render"
	"github.com/atomicstack/uvlist/internal/tree"
	"github.com/atomicstack/uvlist/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	ShowStats  bool

	Engine      engine.Config
	NonBlocking bool

	Keyboard         bool
	KeyboardThrottle time.Duration
	Vim              bool

	Tree        bool
	TreeOptions tree.Options
	TreeDepth   int
	TreeFanout  int
	OpenPadding int

	Renderer     string
	Count        int
	PageSize     int
	MaxItems     int
	FeedInterval time.Duration
	Seed         int64
}

// Options turns cfg into the list host options. The returned feed is nil
// unless a feed interval is configured for a flat list.
func Options(cfg Config) (ui.Options, *feed.Feed, error) {
	if _, err := render.New(cfg.Renderer, 1); err != nil {
		return ui.Options{}, nil, fmt.Errorf("renderer: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := mock.New(seed)
	opts := ui.Options{
		Width:            cfg.Width,
		Height:           cfg.Height,
		ShowFooter:       cfg.ShowFooter,
		ShowStats:        cfg.ShowStats,
		Engine:           cfg.Engine,
		NonBlocking:      cfg.NonBlocking,
		Keyboard:         cfg.Keyboard,
		KeyboardThrottle: cfg.KeyboardThrottle,
		Vim:              cfg.Vim,
		Renderer:         cfg.Renderer,
		Tree:             cfg.Tree,
		TreeOptions:      cfg.TreeOptions,
		OpenPadding:      cfg.OpenPadding,
		MaxItems:         cfg.MaxItems,
	}
	if cfg.Tree {
		opts.Items = gen.Tree(treeRoots(cfg), max(1, cfg.TreeDepth), max(1, cfg.TreeFanout))
		return opts, nil, nil
	}
	opts.Items = gen.Items(cfg.Count)
	opts.Generator = gen
	opts.PageSize = cfg.PageSize
	var f *feed.Feed
	if cfg.FeedInterval > 0 {
		f = feed.New(gen, feed.Options{Interval: cfg.FeedInterval})
		opts.Feed = f
	}
	return opts, f, nil
}

// treeRoots spreads roughly Count nodes over complete subtrees.
func treeRoots(cfg Config) int {
	depth, fanout := max(1, cfg.TreeDepth), max(1, cfg.TreeFanout)
	perRoot, level := 0, 1
	for d := 0; d < depth; d++ {
		perRoot += level
		level *= fanout
	}
	return max(1, cfg.Count/perRoot)
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	opts, f, err := Options(cfg)
	if err != nil {
		return err
	}
	if f != nil {
		defer f.Stop()
	}
	model := ui.NewModel(opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
