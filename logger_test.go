package gli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("key", "val")}).(nopHandler); !ok {
		t.Error("nopHandler.WithAttrs() did not return nopHandler")
	}
	if _, ok := h.WithGroup("group").(nopHandler); !ok {
		t.Error("nopHandler.WithGroup() did not return nopHandler")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSilentViewsSkipAttributes(t *testing.T) {
	if debugEnabled() {
		t.Fatal("debugEnabled() = true for the default logger")
	}
	tex, err := New2D(FormatRGBA8UnormPack8, Extent{Width: 4, Height: 4, Depth: 1}, 1)
	if err != nil {
		t.Fatalf("New2D() error = %v", err)
	}
	defer tex.Release()

	allocs := testing.AllocsPerRun(100, func() {
		v, err := ShareFrom(tex)
		if err != nil {
			t.Fatalf("ShareFrom() error = %v", err)
		}
		_ = v.Release()
	})
	if allocs > 1 {
		t.Errorf("ShareFrom() and Release() allocate %v times, want 1", allocs)
	}

	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	SetLogger(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})))
	if !debugEnabled() {
		t.Error("debugEnabled() = false for a debug logger")
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(custom)

	if Logger() != custom {
		t.Fatal("Logger() did not return the custom logger set via SetLogger")
	}

	tex, err := New2DArray(FormatRGBA8UnormPack8, Extent{Width: 4, Height: 4, Depth: 1}, 3, 1)
	if err != nil {
		t.Fatalf("New2DArray() error = %v", err)
	}
	layer, err := tex.Layer(1)
	if err != nil {
		t.Fatalf("Layer(1) error = %v", err)
	}
	_ = layer.Release()
	_ = tex.Release()
	_ = tex.Release()

	out := buf.String()
	for _, want := range []string{
		"gli: storage allocated",
		"gli: view derived",
		"texture.target=2D_ARRAY",
		"texture.layers=1",
		"refs=2",
		"gli: storage freed",
		"gli: texture released twice",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should set nop logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 50

	for range goroutines {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Logger().Debug("concurrent read")
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("message", "key", "value")
	}
}
