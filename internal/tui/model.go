package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/nvaldez/daygrid/internal/config"
	"github.com/nvaldez/daygrid/internal/dateutil"
	"github.com/nvaldez/daygrid/internal/engine"
	"github.com/nvaldez/daygrid/internal/gesture"
	"github.com/nvaldez/daygrid/internal/timeblock"
	"github.com/nvaldez/daygrid/internal/tui/commands"
	"github.com/nvaldez/daygrid/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalEdit
	ModalConfirmDelete
)

// Zoom levels in minutes per terminal row.
var zoomLevels = []int{10, 15, 30}

// dragSession tracks an in-flight press-drag on a block.
type dragSession struct {
	active    bool
	blockID   int64
	onTop     bool // pressed on the block's top edge row
	onBottom  bool // pressed on the block's bottom edge row
	pressPx   int  // day pixel of the press
	lastPx    int  // day pixel of the latest motion
	pressCol  int  // terminal column of the press
	lastCol   int  // terminal column of the latest motion
	pressedAt time.Time
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	store  timeblock.Store
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	date    time.Time // day being shown
	state   engine.DayState
	mode    Mode
	loading bool

	// Catalog for the edit form
	categories []*timeblock.Category
	taskNames  []*timeblock.TaskName

	// Selection
	selected int // index into state.Blocks, -1 for none

	// Gestures
	press *gesture.PressDetector
	drag  dragSession

	// Modal state
	modalType      ModalType
	modalBlockID   int64 // block being edited or deleted
	formName       textinput.Model
	formStart      textinput.Model
	formEnd        textinput.Model
	formCategory   int // index into categories, -1 for none
	formFocus      int // 0=name, 1=start, 2=end, 3=category
	confirmMessage string

	// Terminal dimensions and layout
	width        int
	height       int
	zoom         int // index into zoomLevels
	scrollRow    int // first visible timeline row
	footerHeight int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message
	statusErr  bool

	// Injectable clock for tests
	nowFunc func() time.Time
}

// New creates a new TUI model.
func New(store timeblock.Store, cfg *config.Config) *Model {
	formName := textinput.New()
	formName.Placeholder = "Task name"
	formName.CharLimit = 256
	formName.Width = 32

	formStart := textinput.New()
	formStart.Placeholder = "9:00 AM"
	formStart.CharLimit = 8
	formStart.Width = 10

	formEnd := textinput.New()
	formEnd.Placeholder = "9:30 AM"
	formEnd.CharLimit = 8
	formEnd.Width = 10

	// Load theme from config, falling back to a theme matching the
	// terminal background when the configured one is unknown
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		fallback := "latte"
		if termenv.HasDarkBackground() {
			fallback = "mocha"
		}
		t, _ = theme.Load(fallback)
	}

	styles := NewStyles(t)
	for _, ti := range []*textinput.Model{&formName, &formStart, &formEnd} {
		ti.PlaceholderStyle = styles.ModalPlaceholderStyle
		ti.TextStyle = styles.ModalInputTextStyle
		ti.PromptStyle = styles.ModalInputTextStyle
		ti.Cursor.Style = styles.ModalInputCursorStyle
		ti.Cursor.TextStyle = styles.ModalInputTextStyle
	}

	window := time.Duration(cfg.Gesture.DoublePressMs) * time.Millisecond

	m := &Model{
		store:        store,
		config:       cfg,
		theme:        t,
		styles:       styles,
		date:         dateutil.TruncateToDay(time.Now()),
		mode:         ModeNormal,
		loading:      true,
		selected:     -1,
		press:        gesture.NewPressDetector(window, nil),
		formName:     formName,
		formStart:    formStart,
		formEnd:      formEnd,
		formCategory: -1,
		zoom:         1, // 15 minutes per row
		footerHeight: 2,
		nowFunc:      time.Now,
	}
	m.state = engine.DayState{DayKey: dateutil.DayKey(m.date)}

	return m
}

// DayKey returns the storage key of the day being shown.
func (m Model) DayKey() string {
	return dateutil.DayKey(m.date)
}

// minutesPerRow returns the current zoom in timeline minutes per terminal row.
func (m Model) minutesPerRow() int {
	return zoomLevels[m.zoom]
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		commands.LoadDay(m.store, m.DayKey()),
		commands.LoadCatalog(m.store),
	)
}

// Run starts the TUI.
func Run(store timeblock.Store, cfg *config.Config) error {
	return RunWithDebug(store, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(store timeblock.Store, cfg *config.Config, debug bool) error {
	return RunAt(store, cfg, dateutil.TruncateToDay(time.Now()), debug)
}

// RunAt starts the TUI opened on the given day.
func RunAt(store timeblock.Store, cfg *config.Config, date time.Time, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(store, cfg)
	model.date = dateutil.TruncateToDay(date)
	model.state = engine.DayState{DayKey: dateutil.DayKey(model.date)}
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
