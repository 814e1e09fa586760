package logging

import (
	"bytes"
	"context"
)

// NewTestContext returns a context carrying a logger that writes into the
// returned buffer, configured per flags. Tests use it to assert on the
// warnings emitted for skipped files.
func NewTestContext(flags Flags) (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	Configure(l, flags)
	return WithLogger(context.Background(), l), &buf
}
