package effects

import (
	"image/color"
	"testing"

	"golang.org/x/image/colornames"
)

func TestEmergencyLightAlternates(t *testing.T) {
	e := NewEmergencyLight(3, 2, true)
	e.Start()

	e.Update(0.125)
	want := []color.RGBA{colornames.Red, colornames.White, colornames.Red}
	for i, c := range e.Colors() {
		if c != want[i] {
			t.Fatalf("light %d: expected %v, got %v", i, want[i], c)
		}
	}

	// phase reaches 1 after half a second at flash speed 2
	for i := 0; i < 3; i++ {
		e.Update(0.125)
	}
	e.Update(0.125)
	want = []color.RGBA{colornames.White, colornames.Red, colornames.White}
	for i, c := range e.Colors() {
		if c != want[i] {
			t.Fatalf("after flip light %d: expected %v, got %v", i, want[i], c)
		}
	}
}

func TestEmergencyLightUnison(t *testing.T) {
	e := NewEmergencyLight(2, 1, false)
	e.Start()
	e.Update(0.1)
	for i, c := range e.Colors() {
		if c != colornames.Red {
			t.Fatalf("light %d: expected red, got %v", i, c)
		}
	}
	if got := e.Emission(); got.R != 255 || got.G != 0 {
		t.Fatalf("expected saturated red emission, got %v", got)
	}
}

func TestEmergencyLightStopIsDeferred(t *testing.T) {
	e := NewEmergencyLight(2, 2, true)
	e.Start()
	e.Update(0.1)

	e.Stop()
	if !e.Running() {
		t.Fatalf("stop must wait for the next update")
	}
	e.Update(0.1)
	if e.Running() {
		t.Fatalf("expected stopped after update")
	}
	for i, c := range e.Colors() {
		if c != colornames.White {
			t.Fatalf("light %d: expected white after stop, got %v", i, c)
		}
	}
	e.Update(1)
	if e.Colors()[0] != colornames.White {
		t.Fatalf("stopped lights must not flash")
	}
}

func TestIdleCycler(t *testing.T) {
	c := NewIdleCycler(nil, 0.5)
	if c.Current().Name != "Idle" || c.Hold() != 2.5 {
		t.Fatalf("unexpected start %+v hold %v", c.Current(), c.Hold())
	}
	names := []string{c.Next().Name, c.Next().Name, c.Next().Name}
	want := []string{"Dancing", "Greet", "Idle"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("step %d: expected %s, got %s", i, want[i], names[i])
		}
	}
	if c.Set(7) || !c.Set(2) || c.Current().Name != "Greet" {
		t.Fatalf("unexpected Set behavior")
	}
}
