// Package preview displays a periodic table scene interactively in the
// terminal.
//
// Each cell is drawn with its fill as background and its border colour as
// foreground. Arrow keys or hjkl move the cursor between occupied cells; the
// footer shows the selected element's data. q or esc quits.
package preview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/ptable/pkg/element"
	"github.com/matzehuels/ptable/pkg/render/table"
	"github.com/matzehuels/ptable/pkg/render/table/styles"
)

const (
	columns  = 18
	rows     = 9
	cellWide = 4
)

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	dimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	keyStyle    = lipgloss.NewStyle().Foreground(colorGray).Width(24)
	cursorStyle = lipgloss.NewStyle().Reverse(true).Bold(true)
	footerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// Model is the bubbletea model of the preview.
type Model struct {
	Scene    *table.Scene
	Provider element.Provider
	Cursor   int // Atomic number of the selected cell
	Width    int
}

// New returns a model with the cursor on hydrogen.
func New(scene *table.Scene, p element.Provider) Model {
	if p == nil {
		p = element.Default()
	}
	return Model{Scene: scene, Provider: p, Cursor: 1}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.Cursor = m.step(-1, 0)
		case "right", "l":
			m.Cursor = m.step(1, 0)
		case "up", "k":
			m.Cursor = m.step(0, -1)
		case "down", "j":
			m.Cursor = m.step(0, 1)
		case "home":
			m.Cursor = 1
		case "end":
			m.Cursor = len(m.Scene.Cells)
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
	}
	return m, nil
}

// step moves from the cursor in direction (dg, dr) to the next occupied
// cell, keeping the cursor when the edge is reached. Vertical moves fall back
// to the nearest column in the target row.
func (m Model) step(dg, dr int) int {
	cur, ok := m.Scene.Cell(m.Cursor)
	if !ok {
		return 1
	}
	if dr == 0 {
		for g := cur.Group + dg; g >= 1 && g <= columns; g += dg {
			if c, ok := m.Scene.CellAt(g, cur.Row); ok {
				return c.Z
			}
		}
		return m.Cursor
	}
	for r := cur.Row + dr; r >= 1 && r <= rows; r += dr {
		for off := 0; off < columns; off++ {
			for _, g := range []int{cur.Group - off, cur.Group + off} {
				if c, ok := m.Scene.CellAt(g, r); ok {
					return c.Z
				}
			}
		}
	}
	return m.Cursor
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	if m.Scene.Title != nil {
		b.WriteString(titleStyle.Render(m.Scene.Title.Text))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("←/→/↑/↓ move  q quit"))
	b.WriteString("\n\n")
	b.WriteString(m.grid())
	b.WriteString("\n")
	if lg := m.legend(); lg != "" {
		b.WriteString(lg)
		b.WriteString("\n")
	}
	b.WriteString(m.footer())
	b.WriteString("\n")
	return b.String()
}

func (m Model) grid() string {
	var b strings.Builder
	blank := strings.Repeat(" ", cellWide)
	for r := 1; r <= rows; r++ {
		if r == 8 {
			b.WriteString("\n")
		}
		for g := 1; g <= columns; g++ {
			c, ok := m.Scene.CellAt(g, r)
			if !ok {
				b.WriteString(blank)
				continue
			}
			b.WriteString(m.cell(c))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) cell(c table.Cell) string {
	st := lipgloss.NewStyle().Width(cellWide).Align(lipgloss.Center)
	if hex, ok := styles.Hex(c.Face); ok {
		st = st.Background(lipgloss.Color(hex))
		if txt, ok := styles.Hex(styles.ContrastText(c.Face)); ok {
			st = st.Foreground(lipgloss.Color(txt))
		}
	} else if hex, ok := styles.Hex(c.Edge); ok {
		st = st.Foreground(lipgloss.Color(hex))
	}
	if c.Z == m.Cursor {
		st = st.Inherit(cursorStyle)
	}
	return st.Render(c.Symbol)
}

func (m Model) legend() string {
	lg := m.Scene.Legend
	if lg == nil {
		return ""
	}
	parts := make([]string, 0, len(lg.Entries))
	for _, e := range lg.Entries {
		c := e.Face
		if styles.IsNone(c) {
			c = e.Edge
		}
		sw := "  "
		if hex, ok := styles.Hex(c); ok {
			sw = lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
		}
		parts = append(parts, sw+" "+e.Text)
	}
	return strings.Join(parts, "   ")
}

func (m Model) footer() string {
	e, err := m.Provider.Lookup(element.Num(m.Cursor))
	if err != nil {
		return footerStyle.Render(err.Error())
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d  %s  %s", e.Z, e.Symbol, e.Name)))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(e.Category))
	for _, name := range m.Provider.Properties() {
		v := e.FormatValue(name)
		if v == "" {
			v = "—"
		}
		b.WriteString("\n")
		b.WriteString(keyStyle.Render(name))
		b.WriteString(v)
	}
	if c, ok := m.Scene.Cell(e.Z); ok {
		b.WriteString("\n")
		b.WriteString(keyStyle.Render("frame / fill"))
		b.WriteString(c.Edge + " / " + c.Face)
	}
	return footerStyle.Render(b.String())
}

// Show runs the preview until the user quits or ctx is cancelled.
func Show(ctx context.Context, scene *table.Scene, p element.Provider, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(New(scene, p), opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
