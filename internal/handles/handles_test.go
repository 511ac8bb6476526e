package handles

import (
	"errors"
	"sync"
	"testing"
)

func TestRegisterAndLookup(t *testing.T) {
	type testData struct {
		Name  string
		Value int
	}

	a := NewArena()
	data := &testData{Name: "test", Value: 42}
	handle := a.Register(data)

	if handle == 0 {
		t.Error("Register should return non-zero handle")
	}

	got, err := a.Lookup(handle)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	gotData, ok := got.(*testData)
	if !ok {
		t.Fatalf("Lookup returned wrong type: %T", got)
	}

	if gotData.Name != "test" || gotData.Value != 42 {
		t.Errorf("Lookup returned wrong data: %+v", gotData)
	}
}

func TestUnregister(t *testing.T) {
	a := NewArena()
	handle := a.Register("test string")

	if _, err := a.Lookup(handle); err != nil {
		t.Fatalf("Expected value before Unregister: %v", err)
	}

	if err := a.Unregister(handle); err != nil {
		t.Fatalf("Unregister: %v", err)
	}

	if _, err := a.Lookup(handle); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("Lookup after Unregister = %v, want ErrStaleHandle", err)
	}
	if err := a.Unregister(handle); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("double Unregister = %v, want ErrStaleHandle", err)
	}
}

func TestLookupInvalid(t *testing.T) {
	a := NewArena()
	if _, err := a.Lookup(0); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Lookup(0) = %v, want ErrInvalidHandle", err)
	}
	if _, err := a.Lookup(makeHandle(999999, 1)); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("Lookup of never-issued slot = %v, want ErrInvalidHandle", err)
	}
}

func TestSlotReuseBumpsGeneration(t *testing.T) {
	a := NewArena()
	old := a.Register("first")
	if err := a.Unregister(old); err != nil {
		t.Fatal(err)
	}
	fresh := a.Register("second")

	oldIdx, _ := old.index()
	freshIdx, _ := fresh.index()
	if oldIdx != freshIdx {
		t.Fatalf("slot not reused: %s then %s", old, fresh)
	}
	if old == fresh {
		t.Fatalf("reused slot kept generation: %s", fresh)
	}

	if _, err := a.Lookup(old); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("old handle resolved after reuse: %v", err)
	}
	v, err := a.Lookup(fresh)
	if err != nil || v != "second" {
		t.Errorf("Lookup(fresh) = %v, %v", v, err)
	}
}

func TestCount(t *testing.T) {
	a := NewArena()
	h1 := a.Register(1)
	a.Register(2)
	if got := a.Count(); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
	_ = a.Unregister(h1)
	if got := a.Count(); got != 1 {
		t.Errorf("Count = %d, want 1", got)
	}
}

func TestReentrantLookup(t *testing.T) {
	a := NewArena()
	var inner Handle
	outer := a.Register(func() {
		// A callback registering and resolving handles while it runs.
		inner = a.Register("nested")
		if _, err := a.Lookup(inner); err != nil {
			t.Errorf("nested Lookup: %v", err)
		}
	})

	v, err := a.Lookup(outer)
	if err != nil {
		t.Fatal(err)
	}
	v.(func())()
	if inner == 0 {
		t.Fatal("nested callback did not run")
	}
}

func TestConcurrentAccess(t *testing.T) {
	const numGoroutines = 100
	const numOps = 100

	a := NewArena()
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOps; j++ {
				data := struct {
					ID  int
					Seq int
				}{id, j}
				handle := a.Register(&data)
				if _, err := a.Lookup(handle); err != nil {
					t.Errorf("Lookup failed for handle %s: %v", handle, err)
				}
				if err := a.Unregister(handle); err != nil {
					t.Errorf("Unregister failed for handle %s: %v", handle, err)
				}
			}
		}(i)
	}

	wg.Wait()
	if got := a.Count(); got != 0 {
		t.Errorf("Count after concurrent churn = %d, want 0", got)
	}
}

func TestHandlesAreUnique(t *testing.T) {
	seen := make(map[Handle]bool)

	for i := 0; i < 1000; i++ {
		h := Register(i)
		if seen[h] {
			t.Errorf("Handle %s was returned twice", h)
		}
		seen[h] = true
	}

	for h := range seen {
		if err := Unregister(h); err != nil {
			t.Errorf("Unregister(%s): %v", h, err)
		}
	}
}
