package ecs

import (
	"testing"

	"github.com/milk9111/bunker/ecs/component"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestStaleHandleAfterRecycle(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	v := 7
	if err := Add(w, old, h, &v); err != nil {
		t.Fatalf("add: %v", err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() || fresh == old {
		t.Fatalf("expected slot reuse with a new generation, old=%s fresh=%s", old, fresh)
	}
	if _, ok := Get(w, old, h); ok {
		t.Fatalf("stale handle should not resolve")
	}
	if Has(w, fresh, h) {
		t.Fatalf("recycled entity must not inherit components")
	}
	if err := Add(w, old, h, &v); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestComponentsAndQueries(t *testing.T) {
	w := NewWorld()
	hInt := component.NewComponent[int]()
	hStr := component.NewComponent[string]()
	hFloat := component.NewComponent[float64]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	one, two := 1, 2
	name := "crate"
	f := 1.5
	for _, err := range []error{
		Add(w, e1, hInt, &one),
		Add(w, e2, hInt, &two),
		Add(w, e2, hStr, &name),
		Add(w, e3, hFloat, &f),
	} {
		if err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	tests := []struct {
		name  string
		kinds []component.Kind
		want  []Entity
	}{
		{"int", []component.Kind{hInt.Kind()}, []Entity{e1, e2}},
		{"int_string", []component.Kind{hInt.Kind(), hStr.Kind()}, []Entity{e2}},
		{"string_float", []component.Kind{hStr.Kind(), hFloat.Kind()}, nil},
		{"none", nil, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := toSet(w.Query(tc.kinds...))
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d entities, got %d", len(tc.want), len(got))
			}
			for _, e := range tc.want {
				if _, ok := got[e]; !ok {
					t.Fatalf("missing entity %s", e)
				}
			}
		})
	}

	p, ok := Get(w, e2, hInt)
	if !ok || *p != 2 {
		t.Fatalf("expected 2, got %v ok=%v", p, ok)
	}
	*p = 20
	if q, _ := Get(w, e2, hInt); *q != 20 {
		t.Fatalf("components should be mutable in place")
	}

	if !Remove(w, e2, hStr) || Has(w, e2, hStr) {
		t.Fatalf("remove should drop the component")
	}
	if Remove(w, e2, hStr) {
		t.Fatalf("second remove should report false")
	}
	if Count(w, hInt) != 2 {
		t.Fatalf("expected 2 ints, got %d", Count(w, hInt))
	}

	DestroyEntity(w, e1)
	if Count(w, hInt) != 1 {
		t.Fatalf("destroy should remove components, got %d", Count(w, hInt))
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	h := component.NewComponent[int]()

	if err := Add(w, e, h, nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	var zero component.ComponentHandle[int]
	v := 1
	if err := Add(w, e, zero, &v); err != component.ErrInvalidComponentKind {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestForEachVariants(t *testing.T) {
	w := NewWorld()
	hA := component.NewComponent[int]()
	hB := component.NewComponent[string]()
	hC := component.NewComponent[bool]()

	for i := 0; i < 4; i++ {
		e := CreateEntity(w)
		n := i
		_ = Add(w, e, hA, &n)
		if i%2 == 0 {
			s := "even"
			_ = Add(w, e, hB, &s)
		}
		if i == 0 {
			b := true
			_ = Add(w, e, hC, &b)
		}
	}

	sum := 0
	ForEach(w, hA, func(_ Entity, v *int) { sum += *v })
	if sum != 6 {
		t.Fatalf("expected sum 6, got %d", sum)
	}

	pairs := 0
	ForEach2(w, hA, hB, func(_ Entity, _ *int, s *string) {
		if *s != "even" {
			t.Fatalf("unexpected value %q", *s)
		}
		pairs++
	})
	if pairs != 2 {
		t.Fatalf("expected 2 pairs, got %d", pairs)
	}

	triples := 0
	ForEach3(w, hA, hB, hC, func(_ Entity, v *int, _ *string, _ *bool) {
		if *v != 0 {
			t.Fatalf("expected entity 0, got %d", *v)
		}
		triples++
	})
	if triples != 1 {
		t.Fatalf("expected 1 triple, got %d", triples)
	}

	// destroying during iteration is allowed
	ForEach(w, hA, func(e Entity, _ *int) { DestroyEntity(w, e) })
	if len(Entities(w)) != 0 {
		t.Fatalf("expected empty world, got %d", len(Entities(w)))
	}
}

type recordSystem struct {
	name  string
	order *[]string
	emit  EventType
}

func (s recordSystem) Update(w *World, _ float64) {
	*s.order = append(*s.order, s.name)
	if s.emit != "" {
		w.Emit(s.emit, s.name)
	}
}

func TestSchedulerRunsTimersSystemsThenEvents(t *testing.T) {
	w := NewWorld()
	var order []string
	w.Events().Subscribe(func(evt Event) {
		order = append(order, "event:"+string(evt.Type))
	})
	e := CreateEntity(w)
	w.After(e, "ping", 0.05, func() { order = append(order, "timer") })

	s := NewScheduler(
		recordSystem{name: "a", order: &order, emit: EventAudio},
		nil,
		recordSystem{name: "b", order: &order},
	)
	if len(s.Systems()) != 2 {
		t.Fatalf("nil systems should be skipped")
	}

	s.Update(w, 0.1)
	want := []string{"timer", "a", "b", "event:audio"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
	if len(w.Events().Pending()) != 0 {
		t.Fatalf("events should be flushed")
	}
	if w.Elapsed() != 0.1 {
		t.Fatalf("expected elapsed 0.1, got %f", w.Elapsed())
	}
}

func TestTimersCancelledWithEntity(t *testing.T) {
	w := NewWorld()
	s := NewScheduler()
	e := CreateEntity(w)
	other := CreateEntity(w)

	fired := map[string]int{}
	w.After(e, "restart", 0.5, func() { fired["restart"]++ })
	w.After(other, "open", 0.5, func() { fired["open"]++ })
	w.After(other, "open", 1.0, func() { fired["open_late"]++ })

	DestroyEntity(w, e)
	for i := 0; i < 12; i++ {
		s.Update(w, 0.1)
	}
	if fired["restart"] != 0 {
		t.Fatalf("timer of a destroyed entity fired")
	}
	if fired["open"] != 0 || fired["open_late"] != 1 {
		t.Fatalf("latest wait should win, got %v", fired)
	}
}

func TestEventsPushedDuringFlushAreDelivered(t *testing.T) {
	w := NewWorld()
	var seen []EventType
	w.Events().Subscribe(func(evt Event) {
		seen = append(seen, evt.Type)
		if evt.Type == EventDeath {
			w.Emit(EventAudio, "die")
		}
	})
	w.Emit(EventDeath, nil)
	NewScheduler().Update(w, 0)
	if len(seen) != 2 || seen[1] != EventAudio {
		t.Fatalf("expected death then audio, got %v", seen)
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}
