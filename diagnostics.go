package glottie

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/dhawalhost/glottie/internal/cursor"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so the caller skips message formatting entirely,
// making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger, accessed atomically so SetLogger can
// be called concurrently with a ParseFiles batch parsing on other
// goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger glottie uses for parse diagnostics. By
// default glottie produces no log output. Pass nil to restore the silent
// default.
//
// Log levels used by glottie:
//   - [slog.LevelWarn]: recoverable document defects the parser degrades
//     gracefully around (corrupted shape data, an unknown shape type, an
//     unresolved precomp reference)
//   - [slog.LevelDebug]: skipped unknown keys and other routine detail
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger currently in effect.
func Logger() *slog.Logger { return loggerPtr.Load() }

// DiagnosticKind discriminates the recoverable defects the parser can
// encounter without aborting the parse (spec §7).
type DiagnosticKind uint8

const (
	// DiagCorruptShape marks a shape path whose i/o/v arrays disagree in
	// length; the shape decodes to an empty point list.
	DiagCorruptShape DiagnosticKind = iota
	// DiagUnresolvedReference marks a precomp layer whose refId did not
	// match any asset id; the layer's PrecompLayers stays nil.
	DiagUnresolvedReference
	// DiagUnknownShapeType marks a shape-tree node whose "ty" discriminant
	// did not match any known builder; the node is skipped.
	DiagUnknownShapeType
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagCorruptShape:
		return "corrupt_shape"
	case DiagUnresolvedReference:
		return "unresolved_reference"
	case DiagUnknownShapeType:
		return "unknown_shape_type"
	default:
		return "unknown"
	}
}

func diagWarn(kind DiagnosticKind, msg string, args ...any) {
	args = append([]any{"kind", kind.String()}, args...)
	Logger().Warn(msg, args...)
}

func diagDebug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// skipUnknownKey drains the value following a key none of the schema
// walker's builders recognized, logging it at Debug level first. Every
// "default: cur.Skip(key)" fallthrough in the walker routes through here
// rather than calling cur.Skip directly, so an unrecognized key never
// passes through silently even though it is never an error.
func skipUnknownKey(cur *cursor.Cursor, key string) {
	diagDebug("skipping unknown key", "key", key)
	cur.Skip(key)
}
