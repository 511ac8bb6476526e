package handles

import (
	"errors"
	"testing"
)

func TestBindReplacesPreviousHandle(t *testing.T) {
	a := NewArena()
	m := NewManager(a, PolicyLeak, nil)

	var installed []Handle
	install := func(h Handle) { installed = append(installed, h) }

	first := m.Bind(0x10, "clicked", "first", install)
	second := m.Bind(0x10, "clicked", "second", install)

	if len(installed) != 2 || installed[0] != first || installed[1] != second {
		t.Fatalf("install saw %v, want [%s %s]", installed, first, second)
	}
	if _, err := a.Lookup(first); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("replaced handle still resolves: %v", err)
	}
	if v, err := a.Lookup(second); err != nil || v != "second" {
		t.Errorf("Lookup(second) = %v, %v", v, err)
	}
	if h, ok := m.Bound(0x10, "clicked"); !ok || h != second {
		t.Errorf("Bound = %s, %v; want %s", h, ok, second)
	}
	if got := m.Len(); got != 1 {
		t.Errorf("Len = %d, want 1", got)
	}
}

func TestBindInstallsBeforeReleasing(t *testing.T) {
	a := NewArena()
	m := NewManager(a, PolicyLeak, nil)
	first := m.Bind(1, "changed", "a", func(Handle) {})

	m.Bind(1, "changed", "b", func(Handle) {
		// The toolkit still holds first until the new registration lands.
		if _, err := a.Lookup(first); err != nil {
			t.Errorf("previous handle released before install: %v", err)
		}
	})
}

func TestDestroyWidgetPolicies(t *testing.T) {
	tests := []struct {
		policy       Policy
		wantReleased int
		wantLive     int
	}{
		{PolicyLeak, 0, 2},
		{PolicyWidgetBound, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			a := NewArena()
			m := NewManager(a, tt.policy, nil)
			h1 := m.Bind(7, "clicked", 1, func(Handle) {})
			m.Bind(7, "closing", 2, func(Handle) {})

			if got := m.DestroyWidget(7); got != tt.wantReleased {
				t.Errorf("DestroyWidget released %d, want %d", got, tt.wantReleased)
			}
			if got := a.Count(); got != tt.wantLive {
				t.Errorf("live handles = %d, want %d", got, tt.wantLive)
			}

			_, err := a.Lookup(h1)
			if tt.policy == PolicyWidgetBound && !errors.Is(err, ErrStaleHandle) {
				t.Errorf("widget-bound handle survived destroy: %v", err)
			}
			if tt.policy == PolicyLeak && err != nil {
				t.Errorf("leaked handle no longer resolves: %v", err)
			}
		})
	}
}

func TestOwnAndRelease(t *testing.T) {
	a := NewArena()
	m := NewManager(a, PolicyLeak, nil)
	h := m.Own("task")
	if m.Len() != 1 {
		t.Fatalf("Len = %d, want 1", m.Len())
	}
	if err := m.Release(h); err != nil {
		t.Fatal(err)
	}
	if m.Len() != 0 || a.Count() != 0 {
		t.Errorf("Len = %d, Count = %d after Release", m.Len(), a.Count())
	}
}

func TestCloseReleasesEverything(t *testing.T) {
	a := NewArena()
	m := NewManager(a, PolicyLeak, nil)
	m.Bind(1, "clicked", 1, func(Handle) {})
	m.Bind(2, "clicked", 2, func(Handle) {})
	m.Own(3)

	if got := m.Close(); got != 3 {
		t.Errorf("Close released %d, want 3", got)
	}
	if a.Count() != 0 {
		t.Errorf("arena still holds %d handles", a.Count())
	}
	if _, ok := m.Bound(1, "clicked"); ok {
		t.Error("slot survived Close")
	}
}
