package viz

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/mechlab/internal/config"
	"github.com/san-kum/mechlab/internal/fem"
	"github.com/san-kum/mechlab/internal/gravity"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestCanvasSetAndProject(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Set(3, 6)
	if !c.IsSet(3, 6) {
		t.Error("expected dot to be set")
	}
	if c.IsSet(2, 6) {
		t.Error("unexpected neighbouring dot")
	}
	c.Set(-1, 0)
	c.Set(100, 100)

	px, py, ok := c.Project(0, 0, 1)
	if !ok || px != 10 || py != 10 {
		t.Errorf("origin projected to (%d, %d, %v)", px, py, ok)
	}
	if _, _, ok := c.Project(5, 0, 1); ok {
		t.Error("expected point beyond scale to be off canvas")
	}

	c.Clear()
	if c.IsSet(3, 6) {
		t.Error("expected clear canvas")
	}
	if lines := strings.Count(c.String(), "\n"); lines != 5 {
		t.Errorf("expected 5 rows, got %d", lines)
	}
}

func earthMoonModel(t *testing.T, frames int) OrbitModel {
	t.Helper()
	o := config.GetOrbitPreset("earth-moon")
	sys, err := o.System()
	if err != nil {
		t.Fatalf("system: %v", err)
	}
	return NewOrbitModel(sys, o.Params(), o.Scale(), frames, 60, "earth-moon")
}

func update(t *testing.T, m OrbitModel, msg tea.Msg) OrbitModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(OrbitModel)
}

func TestOrbitModelTicksStep(t *testing.T) {
	m := earthMoonModel(t, 3)

	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg{})
	}
	if m.System().Steps != 3 {
		t.Errorf("expected frame cap of 3 steps, got %d", m.System().Steps)
	}
	if m.Running() {
		t.Error("expected model to stop at the frame cap")
	}

	view := m.View()
	if !strings.Contains(view, "EARTH-MOON") || !strings.Contains(view, "moon") {
		t.Errorf("view missing title or bodies:\n%s", view)
	}
}

func TestOrbitModelKeys(t *testing.T) {
	m := earthMoonModel(t, 0)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.Running() {
		t.Fatal("expected space to pause")
	}
	m = update(t, m, TickMsg{})
	if m.System().Steps != 0 {
		t.Errorf("paused model stepped: %d", m.System().Steps)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if m.System().Steps != 2 {
		t.Errorf("expected 2 manual steps, got %d", m.System().Steps)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if m.System().Steps != 0 || m.System().Bodies[1].Pos.X != 384400000 {
		t.Errorf("reset did not restore the initial session: %+v", m.System().Bodies[1])
	}
	if !m.Running() {
		t.Error("expected reset to resume")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestOrbitModelHaltsOnError(t *testing.T) {
	sys, _ := gravity.NewSystem([]gravity.Body{
		{Name: "a", Mass: 1},
		{Name: "b", Mass: 1},
	}, nil)
	m := NewOrbitModel(sys, gravity.Params{G: 1, Dt: 1}, 1, 0, 30, "clash")

	m = update(t, m, TickMsg{})
	if !errors.Is(m.Err(), gravity.ErrCoincident) {
		t.Fatalf("expected ErrCoincident, got %v", m.Err())
	}
	if m.Running() {
		t.Error("expected model to halt")
	}
	if !strings.Contains(m.View(), "HALTED") {
		t.Error("expected halted status in view")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.Running() {
		t.Error("space must not resume a halted model")
	}
}

func TestBodiesTable(t *testing.T) {
	sys, _ := gravity.NewSystem(
		[]gravity.Body{{Name: "earth", Mass: 1, Pos: r2.Vec{X: 1500}}},
		[]gravity.Body{{Name: "probe", Vel: r2.Vec{Y: 1.23456}}},
	)
	out := Bodies(sys)
	for _, want := range []string{"earth", "1.5", "probe", "1.235"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestBeamTable(t *testing.T) {
	elements := []fem.Element{{Area: 1, Modulus: 1e9, Length: 1, Force: 100}}
	res, err := fem.Solve(elements)
	if err != nil {
		t.Fatal(err)
	}
	out := Beam(elements, res)
	for _, want := range []string{"DISPLACEMENTS", "1e-07", "reaction at wall: -100 N"} {
		if !strings.Contains(out, want) {
			t.Errorf("beam output missing %q:\n%s", want, out)
		}
	}
}
