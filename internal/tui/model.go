// Package tui is the terminal front end: it maps keys onto engine calls and
// renders the engine state with Lip Gloss.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"life-slots/internal/core"
	"life-slots/internal/engine"
	"life-slots/internal/slots"
	gridcore "life-slots/pkg/core"
)

// Occupancy reports which slots hold a snapshot.
type Occupancy interface {
	Occupancy(ctx context.Context) [slots.Count]bool
}

type stateMsg engine.State

// Model is the Bubble Tea model of the simulator screen.
type Model struct {
	ctx   context.Context
	eng   *engine.Engine
	slots Occupancy

	state    engine.State
	occupied [slots.Count]bool
	selected slots.ID

	cursorRow, cursorCol int
	rows, cols           int
	seed                 int64
	status               string
	statusErr            bool

	// sizeInput holds the typed "ROWSxCOLS" text while the size prompt is open.
	sizeInput   string
	editingSize bool
}

// New returns a model bound to eng. occ may be nil when no slot store exists.
func New(ctx context.Context, eng *engine.Engine, occ Occupancy, seed int64) Model {
	st := eng.State()
	m := Model{
		ctx:      ctx,
		eng:      eng,
		slots:    occ,
		state:    st,
		selected: 1,
		rows:     st.Grid.Rows(),
		cols:     st.Grid.Cols(),
		seed:     seed,
	}
	m.refreshOccupancy()
	return m
}

// Init starts listening for engine updates.
func (m Model) Init() tea.Cmd {
	return waitForState(m.eng.Updates())
}

func waitForState(ch <-chan engine.State) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-ch
		if !ok {
			return nil
		}
		return stateMsg(st)
	}
}

// Update handles engine updates and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.adopt(engine.State(msg))
		return m, waitForState(m.eng.Updates())
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editingSize {
		return m.handleSizeKey(msg)
	}
	switch msg.String() {
	case "q", "ctrl+c":
		m.eng.Stop()
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1, 0)
	case "down", "j":
		m.moveCursor(1, 0)
	case "left", "h":
		m.moveCursor(0, -1)
	case "right", "l":
		m.moveCursor(0, 1)
	case "x", "enter":
		m.report(m.eng.Toggle(m.cursorRow, m.cursorCol), "")
	case " ", "space":
		if m.state.Run == engine.Running {
			m.eng.Stop()
		} else {
			m.eng.Start()
		}
	case "n":
		m.eng.AdvanceOne()
	case "+", "=":
		m.nudgeInterval(1)
	case "-", "_":
		m.nudgeInterval(-1)
	case "]":
		m.resize(core.RowsControl().Nudge(m.rows, 1), m.cols)
	case "[":
		m.resize(core.RowsControl().Nudge(m.rows, -1), m.cols)
	case "}":
		m.resize(m.rows, core.ColsControl().Nudge(m.cols, 1))
	case "{":
		m.resize(m.rows, core.ColsControl().Nudge(m.cols, -1))
	case "z":
		m.editingSize, m.sizeInput = true, ""
	case "r":
		m.eng.Reset()
		m.report(nil, "reset")
	case "g":
		m.seed++
		m.report(m.eng.Randomize(m.seed), fmt.Sprintf("random fill (seed %d)", m.seed))
	case "1", "2", "3":
		m.selected = slots.ID(msg.String()[0] - '0')
		m.report(nil, fmt.Sprintf("slot %d selected", m.selected))
	case "s":
		m.eng.Stop()
		err := m.eng.Save(m.ctx, m.selected)
		m.refreshOccupancy()
		m.report(err, fmt.Sprintf("saved slot %d", m.selected))
	case "o":
		err := m.eng.Load(m.ctx, m.selected)
		if errors.Is(err, slots.ErrEmpty) {
			m.report(nil, fmt.Sprintf("slot %d is empty", m.selected))
			break
		}
		m.report(err, fmt.Sprintf("loaded slot %d", m.selected))
	default:
		return m, nil
	}
	m.adopt(m.eng.State())
	return m, nil
}

func (m Model) handleSizeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.eng.Stop()
		return m, tea.Quit
	case "esc":
		m.editingSize, m.sizeInput = false, ""
	case "backspace":
		if n := len(m.sizeInput); n > 0 {
			m.sizeInput = m.sizeInput[:n-1]
		}
	case "enter":
		m.editingSize = false
		rows, cols, err := parseSize(m.sizeInput)
		m.sizeInput = ""
		if err != nil {
			m.report(err, "")
			break
		}
		m.resize(rows, cols)
		m.adopt(m.eng.State())
	default:
		if msg.Type == tea.KeyRunes {
			m.sizeInput += string(msg.Runes)
		}
	}
	return m, nil
}

// parseSize reads "ROWSxCOLS"; both sides must be valid dimensions.
func parseSize(s string) (int, int, error) {
	r, c, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: want ROWSxCOLS, got %q", gridcore.ErrInvalidDimension, s)
	}
	rows, err := gridcore.ParseDimension(r)
	if err != nil {
		return 0, 0, err
	}
	cols, err := gridcore.ParseDimension(c)
	if err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

func (m *Model) adopt(st engine.State) {
	m.state = st
	m.rows, m.cols = st.Grid.Rows(), st.Grid.Cols()
	m.cursorRow = clampIndex(m.cursorRow, m.rows)
	m.cursorCol = clampIndex(m.cursorCol, m.cols)
}

func (m *Model) moveCursor(dr, dc int) {
	m.cursorRow = clampIndex(m.cursorRow+dr, m.rows)
	m.cursorCol = clampIndex(m.cursorCol+dc, m.cols)
}

func (m *Model) nudgeInterval(delta int) {
	ms := core.IntervalControl().Nudge(int(m.state.Interval/time.Millisecond), delta)
	m.report(m.eng.SetInterval(time.Duration(ms)*time.Millisecond), "")
}

func (m *Model) resize(rows, cols int) {
	if rows == m.rows && cols == m.cols {
		return
	}
	m.report(m.eng.Resize(rows, cols), fmt.Sprintf("grid %dx%d", rows, cols))
}

func (m *Model) refreshOccupancy() {
	if m.slots == nil {
		return
	}
	m.occupied = m.slots.Occupancy(m.ctx)
}

func (m *Model) report(err error, ok string) {
	if err != nil {
		m.status, m.statusErr = err.Error(), true
		return
	}
	if ok != "" {
		m.status, m.statusErr = ok, false
	}
}

func clampIndex(v, n int) int {
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// View renders the grid, the status line and the slot bar.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Game of Life"))
	b.WriteString("\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderSlots())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("space run/stop · n step · x toggle · +/- speed · [ ] rows · { } cols · z size · g random · r reset · 1-3 slot · s save · o load · q quit"))
	return b.String()
}

func (m Model) renderGrid() string {
	g := m.state.Grid
	if g.Empty() {
		return labelStyle.Render("(no grid)")
	}
	var b strings.Builder
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			cell := deadStyle.Render("·")
			if g.Alive(i, j) {
				cell = aliveStyle.Render("■")
			}
			if i == m.cursorRow && j == m.cursorCol {
				cell = cursorStyle.Render(cell)
			}
			b.WriteString(cell)
		}
		if i < g.Rows()-1 {
			b.WriteString("\n")
		}
	}
	return gridBorder.Render(b.String())
}

func (m Model) renderStatus() string {
	run := stopStyle.Render("stopped")
	if m.state.Run == engine.Running {
		run = runStyle.Render("running")
	}
	parts := []string{
		run,
		labelStyle.Render("turn ") + valueStyle.Render(fmt.Sprint(m.state.Turn)),
		labelStyle.Render("alive ") + valueStyle.Render(fmt.Sprint(m.state.Grid.Population())),
		labelStyle.Render("size ") + valueStyle.Render(fmt.Sprintf("%dx%d", m.rows, m.cols)),
		labelStyle.Render("interval ") + valueStyle.Render(m.state.Interval.String()),
	}
	line := strings.Join(parts, "  ")
	if m.editingSize {
		return line + "  " + labelStyle.Render("size (ROWSxCOLS): ") + valueStyle.Render(m.sizeInput+"_")
	}
	if m.status != "" {
		style := labelStyle
		if m.statusErr {
			style = errorStyle
		}
		line += "  " + style.Render(m.status)
	}
	return line
}

func (m Model) renderSlots() string {
	cells := make([]string, 0, slots.Count)
	for i, id := range slots.IDs() {
		label := fmt.Sprintf("%d empty", id)
		if m.occupied[i] {
			label = fmt.Sprintf("%d saved", id)
		}
		style := slotStyle
		if id == m.selected {
			style = slotSelectedStyle
		}
		cells = append(cells, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
