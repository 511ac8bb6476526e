//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/obinnaokechukwu/uigo/internal/platform"
	"github.com/obinnaokechukwu/uigo/internal/uitest"
	"github.com/obinnaokechukwu/uigo/text"
)

// newTestUI initializes a UI over a fresh fake toolkit and closes it when
// the test ends.
func newTestUI(t *testing.T, opts Options) (*UI, *uitest.Toolkit) {
	t.Helper()
	tk := uitest.New()
	u, err := initWith(tk.Lib(), opts)
	if err != nil {
		t.Fatalf("initWith: %v", err)
	}
	t.Cleanup(func() {
		if !u.closed {
			_ = u.Close()
		}
	})
	return u, tk
}

func TestLineEndingsConvention(t *testing.T) {
	native := text.LF
	if platform.UsesCRLF {
		native = text.CRLF
	}
	tests := []struct {
		l    LineEndings
		want text.Convention
	}{
		{LineEndingsNative, native},
		{LineEndingsLF, text.LF},
		{LineEndingsCRLF, text.CRLF},
	}
	for _, tc := range tests {
		if got := tc.l.convention(); got != tc.want {
			t.Errorf("LineEndings(%d).convention() = %s, want %s", tc.l, got, tc.want)
		}
	}
}

func TestInitTwice(t *testing.T) {
	newTestUI(t, Options{})

	_, err := initWith(uitest.New().Lib(), Options{})
	if !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("second init: err = %v, want ErrAlreadyInitialized", err)
	}
	if !IsAlreadyInitialized(err) {
		t.Error("IsAlreadyInitialized = false")
	}

	// The public entry point must refuse before touching the library.
	_, err = Init(Options{LibraryPath: "/nonexistent/libui.so"})
	if !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("Init while live: err = %v, want ErrAlreadyInitialized", err)
	}
}

func TestInitFailure(t *testing.T) {
	tk := uitest.New()
	tk.InitError = "cannot open display"

	_, err := initWith(tk.Lib(), Options{})
	var ie *InitError
	if !errors.As(err, &ie) {
		t.Fatalf("err = %v, want *InitError", err)
	}
	if ie.Message != "cannot open display" {
		t.Errorf("Message = %q", ie.Message)
	}
	if tk.Outstanding() != 0 || len(tk.BadFrees()) != 0 {
		t.Errorf("init error not freed with uiFreeInitError: outstanding %d, bad %v", tk.Outstanding(), tk.BadFrees())
	}

	// A failed init does not hold the guard.
	newTestUI(t, Options{})
}

func TestInitMissingLibrary(t *testing.T) {
	_, err := Init(Options{LibraryPath: "/nonexistent/libui.so"})
	var ie *InitError
	if !errors.As(err, &ie) {
		t.Fatalf("err = %v, want *InitError", err)
	}
	if ie.Err == nil {
		t.Error("InitError.Err is nil for a load failure")
	}
}

func TestCloseReleasesAndAllowsReinit(t *testing.T) {
	tk := uitest.New()
	u, err := initWith(tk.Lib(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	b := u.NewButton("OK")
	b.OnClicked(func(*Button) {})
	u.OnShouldQuit(func() bool { return true })
	if u.Callbacks() != 2 {
		t.Fatalf("Callbacks = %d, want 2", u.Callbacks())
	}

	if err := u.Close(); err != nil {
		t.Fatal(err)
	}
	if u.Callbacks() != 0 {
		t.Errorf("Callbacks = %d after Close", u.Callbacks())
	}
	if tk.Initialized() || tk.Uninits() != 1 {
		t.Errorf("uiUninit not called once: initialized %v, uninits %d", tk.Initialized(), tk.Uninits())
	}
	if err := u.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close: err = %v, want ErrClosed", err)
	}

	newTestUI(t, Options{})
}

func TestQueueMainFromGoroutines(t *testing.T) {
	u, tk := newTestUI(t, Options{})

	const n = 20
	var mu sync.Mutex
	ran := 0
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := u.QueueMain(func() {
				mu.Lock()
				ran++
				mu.Unlock()
			}); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if got := tk.RunQueued(); got != n {
		t.Fatalf("RunQueued = %d, want %d", got, n)
	}
	if ran != n {
		t.Errorf("ran = %d, want %d", ran, n)
	}
	if u.Callbacks() != 0 {
		t.Errorf("%d task handles not released", u.Callbacks())
	}
}

func TestQueueMainAfterClose(t *testing.T) {
	u, _ := newTestUI(t, Options{})
	if err := u.Close(); err != nil {
		t.Fatal(err)
	}
	if err := u.QueueMain(func() {}); !errors.Is(err, ErrClosed) {
		t.Errorf("err = %v, want ErrClosed", err)
	}
}

func TestMainRunsUntilQuit(t *testing.T) {
	u, tk := newTestUI(t, Options{})
	var order []int
	_ = u.QueueMain(func() {
		order = append(order, 1)
		_ = u.QueueMain(func() {
			order = append(order, 2)
			u.Quit()
		})
	})
	u.Main()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v", order)
	}
	if !tk.Quitting() {
		t.Error("Quit did not reach the toolkit")
	}
}

func TestTimerStops(t *testing.T) {
	u, tk := newTestUI(t, Options{})
	ticks := 0
	u.Timer(10*time.Millisecond, func() bool {
		ticks++
		return ticks < 3
	})

	for i := 0; i < 5; i++ {
		tk.Tick()
	}
	if ticks != 3 {
		t.Errorf("ticks = %d, want 3", ticks)
	}
	if tk.Timers() != 0 || u.Callbacks() != 0 {
		t.Errorf("timers = %d, callbacks = %d after stop", tk.Timers(), u.Callbacks())
	}
}

func TestOnShouldQuit(t *testing.T) {
	u, tk := newTestUI(t, Options{})
	if tk.RequestQuit() {
		t.Fatal("quit allowed with no handler")
	}

	allow := false
	u.OnShouldQuit(func() bool { return allow })
	if tk.RequestQuit() {
		t.Error("quit allowed while handler refuses")
	}
	allow = true
	if !tk.RequestQuit() {
		t.Error("quit refused while handler allows")
	}
}

func TestDialogs(t *testing.T) {
	u, tk := newTestUI(t, Options{})
	w := u.NewWindow("main", 200, 100, false)

	u.MsgBox(w, "Hello", "World")
	u.MsgBoxError(nil, "Oops", "failed")
	if d := tk.Dialogs(); len(d) != 2 || d[0] != "Hello: World" || d[1] != "error Oops: failed" {
		t.Errorf("dialogs = %q", d)
	}

	if _, ok := u.OpenFile(w); ok {
		t.Error("cancelled OpenFile reported ok")
	}
	tk.FileResult = "/home/user/notes.txt"
	for _, open := range []func(*Window) (string, bool){u.OpenFile, u.SaveFile, u.OpenFolder} {
		p, ok := open(w)
		if !ok || p != "/home/user/notes.txt" {
			t.Errorf("dialog = %q, %v", p, ok)
		}
	}
	if tk.Outstanding() != 0 {
		t.Errorf("%d dialog results not freed", tk.Outstanding())
	}
}

func TestOpenFolderUnavailable(t *testing.T) {
	u, tk := newTestUI(t, Options{})
	tk.Lib().OpenFolder = nil
	tk.FileResult = "/tmp"
	if _, ok := u.OpenFolder(nil); ok {
		t.Error("OpenFolder succeeded without the symbol")
	}
}
