package ui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/atomicstack/panesync/internal/grid"
	"github.com/atomicstack/panesync/internal/logging"
	"github.com/atomicstack/panesync/internal/logging/events"
	"github.com/atomicstack/panesync/internal/reorder"
	"github.com/atomicstack/panesync/internal/theme"
	"github.com/atomicstack/panesync/internal/ui/command"
	uistate "github.com/atomicstack/panesync/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// View selects which demo fills the content area.
type View int

const (
	ViewGrid View = iota
	ViewTasks
)

func (v View) String() string {
	if v == ViewTasks {
		return "tasks"
	}
	return "grid"
}

// ParseView accepts "grid" or "tasks".
func ParseView(value string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "grid":
		return ViewGrid, nil
	case "tasks", "list":
		return ViewTasks, nil
	}
	return ViewGrid, fmt.Errorf("unknown view %q", value)
}

const (
	tabsHeight   = 1
	footerHeight = 1
	contentTop   = tabsHeight
	wheelStep    = 3
)

// DefaultTasks seeds the reorderable list when none are configured.
var DefaultTasks = []string{
	"Write spec",
	"Review layout",
	"Fix scroll sync",
	"Ship release",
	"Update docs",
}

type msgHandler func(tea.Msg) tea.Cmd

type orderReportedMsg struct {
	order []string
}

// Options configures a Model.
type Options struct {
	// Width and Height pin the viewport; zero follows the terminal.
	Width  int
	Height int
	// InitialWidth and InitialHeight size an unpinned viewport until the
	// first tea.WindowSizeMsg arrives.
	InitialWidth  int
	InitialHeight int
	View          View
	Sheet         grid.Sheet
	Grid          grid.Config
	Tasks         []string
}

// Model implements the Bubble Tea model hosting the grid and task views.
type Model struct {
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	view        View
	styles      *theme.Styles
	keys        keyMap

	grid      *grid.Grid
	tasks     *uistate.List
	taskOrder *reorder.Controller[string]
	taskDrag  bool

	finder  textinput.Model
	finding bool

	infoMsg string
	errMsg  string

	bus      *command.Bus
	pending  []tea.Cmd
	handlers map[reflect.Type]msgHandler
}

// NewModel builds the grid and task list from opts.
func NewModel(opts Options) (*Model, error) {
	styles := opts.Grid.Styles
	if styles == nil {
		styles = theme.Default()
	}
	m := &Model{
		width:       firstPositive(opts.Width, opts.InitialWidth),
		height:      firstPositive(opts.Height, opts.InitialHeight),
		fixedWidth:  opts.Width > 0,
		fixedHeight: opts.Height > 0,
		view:        opts.View,
		styles:      styles,
		keys:        defaultKeyMap(),
		bus:         command.New(),
	}

	gcfg := opts.Grid
	gcfg.Styles = styles
	gcfg.Width = m.width
	gcfg.Height = m.contentHeight()
	g, err := grid.New(opts.Sheet, gcfg)
	if err != nil {
		return nil, err
	}
	m.grid = g

	tasks := opts.Tasks
	if len(tasks) == 0 {
		tasks = DefaultTasks
	}
	order, err := reorder.New(tasks, reorder.Config{ItemExtent: 1})
	if err != nil {
		return nil, err
	}
	order.OnReorder(func(from, to int) {
		events.Drag.Reorder("tasks", from, to)
	})
	order.OnComplete(func(items []string) {
		m.pending = append(m.pending, m.reportOrder(items))
	})
	m.taskOrder = order
	m.tasks = uistate.NewList("tasks", len(tasks), m.contentHeight())

	finder := textinput.New()
	finder.Prompt = "find column: "
	finder.Placeholder = "name"
	finder.PromptStyle = *styles.FinderPrompt
	finder.TextStyle = *styles.FinderText
	finder.PlaceholderStyle = *styles.FinderPlaceholder
	finder.Cursor.SetMode(cursor.CursorStatic)
	m.finder = finder

	m.registerHandlers()
	return m, nil
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	events.UI.View(m.view.String())
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.BlurMsg{}):       m.handleBlurMsg,
		reflect.TypeOf(orderReportedMsg{}):  m.handleOrderReportedMsg,
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

// finishUpdate folds in commands queued by layout observers during the
// update.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if len(m.pending) > 0 {
		cmds = append(cmds, m.pending...)
		m.pending = nil
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func (m *Model) contentHeight() int {
	if m.height <= 0 {
		return 0
	}
	return max(m.height-tabsHeight-footerHeight, 0)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	events.App.Resize(m.width, m.height)
	m.grid.Resize(m.width, m.contentHeight())
	m.tasks.SetVisible(m.contentHeight())
	m.finder.Width = max(m.width-len(m.finder.Prompt)-1, 1)
	return nil
}

func (m *Model) handleBlurMsg(tea.Msg) tea.Cmd {
	m.cancelDrags("focus lost")
	return nil
}

func (m *Model) handleOrderReportedMsg(msg tea.Msg) tea.Cmd {
	report := msg.(orderReportedMsg)
	m.errMsg = ""
	m.infoMsg = "order: " + strings.Join(report.order, ", ")
	return nil
}

// reportOrder logs the final task order off the update loop.
func (m *Model) reportOrder(items []string) tea.Cmd {
	order := append([]string(nil), items...)
	return m.bus.Execute(command.Request{
		ID:    "tasks:order",
		Label: "report task order",
		Handler: func() tea.Msg {
			events.Drag.Complete("tasks", order)
			logging.Infof("task order: %s", strings.Join(order, ", "))
			return orderReportedMsg{order: order}
		},
	})
}

func (m *Model) cancelDrags(reason string) bool {
	cancelled := m.grid.CancelDrag(reason)
	if m.taskOrder.Cancel() {
		events.Drag.Cancel("tasks", reason)
		cancelled = true
	}
	m.taskDrag = false
	return cancelled
}

func (m *Model) setView(v View) {
	if m.view == v {
		return
	}
	m.cancelDrags("view switch")
	m.view = v
	events.UI.View(v.String())
}

// Grid exposes the grid for tests and callers embedding the model.
func (m *Model) Grid() *grid.Grid { return m.grid }

// Tasks returns the current task order.
func (m *Model) Tasks() []string { return m.taskOrder.Items() }

// ActiveView returns the view currently shown.
func (m *Model) ActiveView() View { return m.view }
