package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/uvlist/internal/data/dispatcher"
	"github.com/atomicstack/uvlist/internal/engine"
	"github.com/atomicstack/uvlist/internal/feed"
	"github.com/atomicstack/uvlist/internal/item"
	"github.com/atomicstack/uvlist/internal/logging"
	"github.com/atomicstack/uvlist/internal/mock"
	"github.com/atomicstack/uvlist/internal/render"
	"github.com/atomicstack/uvlist/internal/theme"
	"github.com/atomicstack/uvlist/internal/throttle"
	"github.com/atomicstack/uvlist/internal/tree"
	"github.com/atomicstack/uvlist/internal/ui/command"
	uistate "github.com/atomicstack/uvlist/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultFrameInterval = 16 * time.Millisecond
	defaultWidth         = 80
	defaultViewport      = 20
	maxMeasurePasses     = 3
	wheelStep            = 3
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the list host.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	ShowStats  bool

	Engine      engine.Config
	NonBlocking bool

	Keyboard         bool
	KeyboardThrottle time.Duration
	Vim              bool

	// Renderer names a render.New renderer; Render overrides it when set.
	Renderer string
	Render   func(width int) (render.Func, error)

	Tree        bool
	TreeOptions tree.Options
	OpenPadding int

	// Items is the initial collection, or the tree roots in tree mode.
	Items     []item.Item
	Generator *mock.Generator
	Feed      *feed.Feed
	PageSize  int
	MaxItems  int
}

// Model implements the Bubble Tea model hosting one virtualized list.
type Model struct {
	opts        Options
	engine      *engine.Engine
	tree        *tree.Tree
	source      []item.Item
	cursor      uistate.Cursor
	render      render.Func
	renderWidth int
	cache       map[int]renderedView

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	showStats   bool
	errMsg      string
	infoMsg     string
	selectedID  string

	keys        keyMap
	keyThrottle *throttle.Throttle
	search      textinput.Model
	searching   bool
	searchGen   int

	frameInterval  time.Duration
	frameScheduled bool
	reachedStart   bool
	reachedEnd     bool

	feed       *feed.Feed
	gen        *mock.Generator
	dispatcher *dispatcher.Dispatcher
	bus        *command.Bus

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the host and loads the initial collection.
func NewModel(opts Options) *Model {
	if opts.OpenPadding < 0 {
		opts.OpenPadding = 0
	}
	m := &Model{
		opts:          opts,
		engine:        engine.New(opts.Engine),
		source:        item.Clone(opts.Items),
		cache:         map[int]renderedView{},
		showFooter:    opts.ShowFooter,
		showStats:     opts.ShowStats,
		keys:          newKeyMap(opts.Vim, opts.Tree, opts.Keyboard),
		keyThrottle:   throttle.New(opts.KeyboardThrottle),
		frameInterval: defaultFrameInterval,
		feed:          opts.Feed,
		gen:           opts.Generator,
		dispatcher:    dispatcher.New(opts.MaxItems),
		bus:           command.New(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	if opts.Tree {
		m.tree = tree.New(opts.TreeOptions)
		m.tree.SetItems(m.source)
	}
	m.search = newSearchInput()
	if err := m.rebuildRenderer(); err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		m.render = render.Plain(m.renderWidth)
	}
	m.registerHandlers()
	m.noteFrame(m.engine.SetViewport(m.viewportRows()))
	m.loadNow()
	return m
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search"
	if styles.FilterPrompt != nil {
		ti.PromptStyle = *styles.FilterPrompt
	}
	if styles.Filter != nil {
		ti.TextStyle = *styles.Filter
	}
	if styles.FilterPlaceholder != nil {
		ti.PlaceholderStyle = *styles.FilterPlaceholder
	}
	if styles.Cursor != nil {
		ti.Cursor.Style = *styles.Cursor
	}
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.edgeCmds()}
	if m.feed != nil {
		cmds = append(cmds, waitForFeedEvent(m.feed))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):              m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):            m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):       m.handleWindowSizeMsg,
		reflect.TypeOf(frameMsg{}):                m.handleFrameMsg,
		reflect.TypeOf(flushMsg{}):                m.handleFlushMsg,
		reflect.TypeOf(searchMsg{}):               m.handleSearchMsg,
		reflect.TypeOf(feedEventMsg{}):            m.handleFeedEventMsg,
		reflect.TypeOf(feedDoneMsg{}):             m.handleFeedDoneMsg,
		reflect.TypeOf(command.SelectedMsg{}):     m.handleSelectedMsg,
		reflect.TypeOf(command.ReachedStartMsg{}): m.handleReachedStartMsg,
		reflect.TypeOf(command.ReachedEndMsg{}):   m.handleReachedEndMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Engine exposes the list engine.
func (m *Model) Engine() *engine.Engine {
	return m.engine
}

// Tree exposes the tree layer, or nil in list mode.
func (m *Model) Tree() *tree.Tree {
	return m.tree
}

// Source returns the collection the list was loaded from.
func (m *Model) Source() []item.Item {
	return m.source
}

// Cursor returns the highlighted index and id.
func (m *Model) Cursor() (int, string) {
	return m.cursor.Index, m.cursor.ID
}

// SelectedID returns the id of the last selected item.
func (m *Model) SelectedID() string {
	return m.selectedID
}
