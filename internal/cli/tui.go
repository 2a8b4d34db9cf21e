package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/ptable/pkg/element"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Element Table
// =============================================================================

// elementRows returns one table row per element: identity columns followed
// by props. Missing values show as a dash.
func elementRows(elements []element.Element, props []string) [][]string {
	rows := make([][]string, 0, len(elements))
	for _, e := range elements {
		row := []string{strconv.Itoa(e.Z), e.Symbol, e.Name, e.Category}
		for _, p := range props {
			v := e.FormatValue(p)
			if v == "" {
				v = "—"
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return rows
}

func elementHeaders(props []string) []string {
	return append([]string{"Z", "Symbol", "Name", "Category"}, props...)
}

// renderElementTable renders elements as a bordered table.
func renderElementTable(elements []element.Element, props []string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(elementHeaders(props)...).
		Rows(elementRows(elements, props)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col == 1:
				return StyleHighlight
			case col >= 4:
				return StyleNumber
			}
			return listNormalStyle
		})
	return t.Render()
}

// =============================================================================
// ElementListModel - Interactive element browser
// =============================================================================

// ElementListModel is the bubbletea model for browsing element data.
type ElementListModel struct {
	Elements []element.Element
	Props    []string
	Cursor   int
	Selected *element.Element
	Height   int
	Offset   int
}

// NewElementListModel creates a new element list model.
func NewElementListModel(elements []element.Element, props []string) ElementListModel {
	return ElementListModel{
		Elements: elements,
		Props:    props,
		Height:   15,
	}
}

func (m ElementListModel) Init() tea.Cmd {
	return nil
}

func (m ElementListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Elements)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Elements) > 0 {
				e := m.Elements[m.Cursor]
				m.Selected = &e
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		// Leave room for the title, help line, borders and footer.
		if h := msg.Height - 8; h > 3 {
			m.Height = h
		}
	}
	return m, nil
}

func (m ElementListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Elements"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Elements))
	visible := m.Elements[m.Offset:end]
	rows := elementRows(visible, m.Props)
	for i := range rows {
		cursor := "  "
		if m.Offset+i == m.Cursor {
			cursor = "▸ "
		}
		rows[i] = append([]string{cursor}, rows[i]...)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(append([]string{""}, elementHeaders(m.Props)...)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col >= 5 {
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Elements))))

	return b.String()
}
