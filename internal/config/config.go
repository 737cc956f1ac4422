package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/uvlist/internal/app"
	"github.com/atomicstack/uvlist/internal/engine"
	"github.com/atomicstack/uvlist/internal/tree"
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

const envPrefix = "UVLIST_"

// envName maps a flag name to its environment variable, e.g. page-size to
// UVLIST_PAGE_SIZE.
func envName(flagName string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	defaults := engine.DefaultConfig()

	fs := flag.NewFlagSet("uvlist", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	str := func(name, fallback, usage string) *string {
		return fs.String(name, envOrDefault(env, envName(name), fallback), usage)
	}
	num := func(name string, fallback int, usage string) *int {
		return fs.Int(name, envOrInt(env, envName(name), fallback), usage)
	}
	boolean := func(name string, fallback bool, usage string) *bool {
		return fs.Bool(name, envOrBool(env, envName(name), fallback), usage)
	}

	initialSize := num("initial-size", defaults.InitialSize, "rows assumed for items that were never measured")
	buffer := num("buffer", defaults.Buffer, "rows added on both edges of the viewport when locating the window")
	overscan := num("overscan", defaults.Overscan, "extra items kept on each side of the window")
	prepare := num("prepare", defaults.PrepareDistance, "items after the window measured before they scroll in")
	nonBlocking := boolean("non-blocking", false, "defer recomputes after data changes to the next update")
	keyboard := boolean("keyboard", true, "enable keyboard navigation")
	keyboardThrottle := num("keyboard-throttle", 0, "minimum milliseconds between cursor moves")
	vim := boolean("vim", false, "enable vim navigation keys")
	treeMode := boolean("tree", false, "show a tree instead of a flat list")
	trackShift := num("track-shift", 0, "depth of the nodes shown as roots")
	showDepth := num("show-depth", 0, "depth expanded before anything is toggled")
	treeDepth := num("tree-depth", 3, "levels of generated tree data")
	treeFanout := num("tree-fanout", 4, "children per generated tree node")
	openPadding := num("open-padding", 2, "indent cells per tree level")
	sortField := str("sort-field", "", "field used to order siblings (empty keeps input order)")
	searchMin := num("search-min", 1, "minimum query length before the tree is filtered")
	searchCase := boolean("search-case-sensitive", false, "match search queries case-sensitively")
	searchFields := str("search-fields", "label", "comma-separated fields matched by search")
	searchThrottle := num("search-throttle", 0, "milliseconds to wait after the last keystroke before searching")
	searchFuzzy := boolean("search-fuzzy", false, "use fuzzy matching for search")
	count := num("count", 1000, "number of generated items")
	pageSize := num("page-size", 0, "items loaded when the end is reached (0 disables)")
	maxItems := num("max-items", 0, "upper bound on loaded items (0 is unbounded)")
	feedInterval := num("feed-interval", 0, "milliseconds between generated data mutations (0 disables)")
	renderer := str("renderer", "plain", "item renderer: plain or markdown")
	width := num("width", 0, "desired viewport width in cells (0 uses terminal width)")
	height := num("height", 0, "desired viewport height in rows (0 uses terminal height)")
	footer := boolean("footer", false, "enable footer hint row")
	stats := boolean("stats", false, "show the engine stats panel")
	trace := boolean("trace", false, "enable verbose JSON trace logging")
	logFile := str("log-file", "", "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	nonNegative := []struct {
		name  string
		value int
	}{
		{"buffer", *buffer},
		{"overscan", *overscan},
		{"prepare", *prepare},
		{"keyboard-throttle", *keyboardThrottle},
		{"track-shift", *trackShift},
		{"show-depth", *showDepth},
		{"open-padding", *openPadding},
		{"search-min", *searchMin},
		{"search-throttle", *searchThrottle},
		{"count", *count},
		{"page-size", *pageSize},
		{"max-items", *maxItems},
		{"feed-interval", *feedInterval},
		{"width", *width},
		{"height", *height},
	}
	for _, opt := range nonNegative {
		if opt.value < 0 {
			return Config{}, fmt.Errorf("%s must be >= 0 (got %d)", opt.name, opt.value)
		}
	}
	if *initialSize < 1 {
		return Config{}, fmt.Errorf("initial-size must be >= 1 (got %d)", *initialSize)
	}
	if *treeDepth < 1 || *treeFanout < 1 {
		return Config{}, fmt.Errorf("tree-depth and tree-fanout must be >= 1 (got %d, %d)", *treeDepth, *treeFanout)
	}
	switch *renderer {
	case "plain", "markdown":
	default:
		return Config{}, fmt.Errorf("renderer must be plain or markdown (got %q)", *renderer)
	}

	cfg := Config{
		App: app.Config{
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			ShowStats:  *stats,
			Engine: engine.Config{
				InitialSize:     *initialSize,
				Buffer:          *buffer,
				Overscan:        *overscan,
				PrepareDistance: *prepare,
			},
			NonBlocking:      *nonBlocking,
			Keyboard:         *keyboard,
			KeyboardThrottle: millis(*keyboardThrottle),
			Vim:              *vim,
			Tree:             *treeMode,
			TreeOptions: tree.Options{
				Band:      tree.Band{TrackShift: *trackShift, ShowDepth: *showDepth},
				SortField: *sortField,
				Search: tree.SearchParams{
					MinimalQueryLength: *searchMin,
					CaseSensitive:      *searchCase,
					Fields:             splitList(*searchFields),
					Throttle:           millis(*searchThrottle),
					Fuzzy:              *searchFuzzy,
				},
			},
			TreeDepth:    *treeDepth,
			TreeFanout:   *treeFanout,
			OpenPadding:  *openPadding,
			Renderer:     *renderer,
			Count:        *count,
			PageSize:     *pageSize,
			MaxItems:     *maxItems,
			FeedInterval: millis(*feedInterval),
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{},
		Args:  append([]string(nil), args...),
	}
	fs.VisitAll(func(f *flag.Flag) {
		cfg.Flags[f.Name] = f.Value.String()
	})

	return cfg, nil
}

func millis(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
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

// Validate checks combinations that single-flag parsing cannot see.
func Validate(cfg Config) error {
	if cfg.App.MaxItems > 0 && cfg.App.Count > cfg.App.MaxItems {
		return fmt.Errorf("count %d exceeds max-items %d", cfg.App.Count, cfg.App.MaxItems)
	}
	return nil
}
