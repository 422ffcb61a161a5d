package vm

import (
	"fmt"
	"io"
	"strings"
)

// tracer appends one disassembly-style line per executed instruction to an
// append-only sink. It is advisory: a write failure is swallowed rather
// than propagated as a fault, since tracing must never perturb machine
// state (spec §4.6).
type tracer struct {
	w       io.Writer
	opened  bool
	open    func() (io.WriteCloser, error)
	closer  io.WriteCloser
	enabled func() bool
}

func newTracer(open func() (io.WriteCloser, error), enabled func() bool) *tracer {
	return &tracer{open: open, enabled: enabled}
}

func (t *tracer) ensureOpen() {
	if t.opened {
		return
	}
	t.opened = true
	wc, err := t.open()
	if err != nil {
		// Tracing is advisory; a side-file we can't open just means trace
		// lines are dropped, per spec's "may be dropped under backpressure".
		return
	}
	t.closer = wc
	t.w = wc
}

func (t *tracer) Close() error {
	if t.closer != nil {
		return t.closer.Close()
	}
	return nil
}

// record formats one executed instruction as "mnemonic arg0 arg1 ...",
// resolving register operands to their "rN" form — grounded on
// original_source's per-opcode write!(self.logfile, "mnemonic ..."), here
// applied uniformly to every opcode rather than the subset the prototype
// happened to log.
func (t *tracer) record(op Opcode, operands []Word) {
	if !t.enabled() {
		return
	}
	t.ensureOpen()
	if t.w == nil {
		return
	}

	var b strings.Builder
	b.WriteString(op.String())
	for _, w := range operands {
		b.WriteByte(' ')
		if IsRegisterAddr(w) {
			fmt.Fprintf(&b, "r%d", w-regBase)
		} else {
			fmt.Fprintf(&b, "%d", w)
		}
	}
	b.WriteByte('\n')

	// Best-effort write; tracing must never fault the VM.
	_, _ = io.WriteString(t.w, b.String())
}
