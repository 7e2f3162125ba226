// Package obslog supplies the allocator's default discarding logger.
//
// Callers that want visibility into grow/split/coalesce events pass their
// own *slog.Logger to alloc.WithLogger; otherwise logging costs nothing.
package obslog

import (
	"io"
	"log/slog"
)

// Discard is a logger that drops everything written to it. It is the
// allocator's default until a caller supplies one via alloc.WithLogger.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
