package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/ptable/pkg/element"
	"github.com/matzehuels/ptable/pkg/render/table"
	"github.com/matzehuels/ptable/pkg/render/table/styles"
)

func testModel(t *testing.T) Model {
	t.Helper()
	r, err := table.New(table.Config{
		Labels: []styles.LabelGroup{{Name: "Alkali", Elements: []element.Ref{element.Sym("Na")}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	s, err := r.Render(table.RenderOptions{Title: "Preview"})
	if err != nil {
		t.Fatal(err)
	}
	return New(s, r.Provider())
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want int
	}{
		{"start", nil, 1},
		{"right skips gap", []string{"right"}, 2},
		{"down from H", []string{"down"}, 3},
		{"down from He", []string{"l", "j"}, 10},
		{"left edge stays", []string{"left"}, 1},
		{"up edge stays", []string{"up"}, 1},
		{"down to Fr", []string{"j", "j", "j", "j", "j", "j"}, 87},
		{"down into f-block", []string{"j", "j", "j", "j", "j", "j", "j"}, 57},
		{"vim keys", []string{"j", "l"}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(testModel(t), tt.keys...)
			if m.Cursor != tt.want {
				t.Errorf("Cursor = %d, want %d", m.Cursor, tt.want)
			}
		})
	}
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		m := testModel(t)
		var msg tea.KeyMsg
		if k == "esc" {
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s: no command returned", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", k)
		}
	}
}

func TestView(t *testing.T) {
	m := press(testModel(t), "down", "down")
	out := m.View()
	for _, want := range []string{"Preview", "Na", "Lr", "Sodium", "alkali metal", "atomic_mass", "Alkali"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
