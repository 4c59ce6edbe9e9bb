package gli

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by gli.
// By default gli produces no log output. Pass nil to restore silence.
//
// Log levels used by gli:
//   - [slog.LevelDebug]: storage allocation and release, view derivation
//   - [slog.LevelInfo]: container load and save
//   - [slog.LevelWarn]: rejected container input, double release
//
// Example:
//
//	gli.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// textureAttrs groups the description of a view under "texture" so load,
// save and view records share one layout.
func textureAttrs(t *Texture) slog.Attr {
	return slog.Group("texture",
		"format", t.format,
		"target", t.target,
		"extent", t.Extent(0),
		"layers", t.Layers(),
		"faces", t.Faces(),
		"levels", t.Levels(),
	)
}

// debugEnabled reports whether debug records are kept. Allocation and view
// paths check it before building attributes.
func debugEnabled() bool {
	return Logger().Enabled(context.Background(), slog.LevelDebug)
}

// Logger returns the current logger used by gli.
// It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
