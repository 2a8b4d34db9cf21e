package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/ptable/pkg/element"
	"github.com/matzehuels/ptable/pkg/errors"
)

func TestRunElementsCSV(t *testing.T) {
	var buf bytes.Buffer
	err := (&CLI{}).runElements(context.Background(), &buf, elementsOpts{
		props:        "atomic_mass",
		excludeNoble: true,
		csv:          true,
	})
	if err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1+element.Count-6 {
		t.Errorf("got %d rows, want %d", len(rows), 1+element.Count-6)
	}
	for _, row := range rows[1:] {
		if row[1] == "He" || row[1] == "Rn" {
			t.Errorf("noble gas %s not excluded", row[1])
		}
	}
}

func TestRunElementsTable(t *testing.T) {
	var buf bytes.Buffer
	if err := (&CLI{}).runElements(context.Background(), &buf, elementsOpts{props: "electronegativity"}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Symbol", "electronegativity", "Hydrogen", "Lawrencium", "—"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q", want)
		}
	}
}

func TestRunElementsWithData(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "prices.json")
	if err := os.WriteFile(data, []byte(`{"Li": {"price": 85.6}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := (&CLI{}).runElements(context.Background(), &buf, elementsOpts{props: "price", data: data, csv: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "3,Li,Lithium,alkali metal,1,2,85.6") {
		t.Errorf("Li row missing price:\n%s", buf.String())
	}
}

func TestRunElementsUnknownProperty(t *testing.T) {
	err := (&CLI{}).runElements(context.Background(), &bytes.Buffer{}, elementsOpts{props: "colour"})
	if !errors.Is(err, errors.ErrCodeUnknownProperty) {
		t.Errorf("error = %v, want UNKNOWN_PROPERTY", err)
	}
}

func TestElementListModel(t *testing.T) {
	elements := element.Default().All()
	m := NewElementListModel(elements, []string{element.PropAtomicMass})
	m.Height = 5

	press := func(m ElementListModel, key tea.KeyMsg) (ElementListModel, tea.Cmd) {
		next, cmd := m.Update(key)
		return next.(ElementListModel), cmd
	}
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}

	m, _ = press(m, up)
	if m.Cursor != 0 {
		t.Errorf("cursor moved above first row: %d", m.Cursor)
	}
	for range 6 {
		m, _ = press(m, down)
	}
	if m.Cursor != 6 || m.Offset != 2 {
		t.Errorf("cursor=%d offset=%d, want 6 and 2", m.Cursor, m.Offset)
	}
	if !strings.Contains(m.View(), "Carbon") || strings.Contains(m.View(), "Hydrogen") {
		t.Error("view does not follow the scroll offset")
	}

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected == nil || m.Selected.Symbol != "N" {
		t.Errorf("selected = %+v, want N", m.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit")
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	if m.Cursor != 5 {
		t.Errorf("k should move up, cursor=%d", m.Cursor)
	}

	resized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	if resized.(ElementListModel).Height != 22 {
		t.Errorf("height = %d, want 22", resized.(ElementListModel).Height)
	}
}
