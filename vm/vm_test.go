package vm

import (
	"bytes"
	"context"
	"fmt"
	"testing"
)

// assert mirrors KTStephano-GVM's vm_test.go helper: a small wrapper over
// t.Fatalf so literal-program test tables read as a flat list of assertions.
func assert(t *testing.T, cond bool, format string, args ...any) {
	t.Helper()
	if !cond {
		t.Fatalf(format, args...)
	}
}

// run builds a VM over words, runs it to completion with stdin wired to in
// and stdout captured, and returns the VM plus captured output.
func run(t *testing.T, words []uint16, in string) (*VM, string) {
	t.Helper()
	var out bytes.Buffer
	raw := make([]Word, len(words))
	for i, w := range words {
		raw[i] = Word(w)
	}

	machine, err := New(raw,
		WithTerminal(NewScannerSource(bytes.NewBufferString(in)), &out),
		WithImageBase(t.TempDir()+"/image"),
	)
	assert(t, err == nil, fmt.Sprintf("New: %v", err))

	_ = machine.Run(context.Background())
	return machine, out.String()
}
