package vm

import "fmt"

// kind classifies a fault so callers (chiefly cmd/synacorvm) can map it to
// a process exit code without string matching on the error text.
type kind int

const (
	kindDecode kind = iota
	kindAddressing
	kindArithmetic
	kindIO
	kindStack
	kindLoad
)

func (k kind) String() string {
	switch k {
	case kindDecode:
		return "decode fault"
	case kindAddressing:
		return "addressing fault"
	case kindArithmetic:
		return "arithmetic fault"
	case kindIO:
		return "io fault"
	case kindStack:
		return "stack fault"
	case kindLoad:
		return "load fault"
	default:
		return "fault"
	}
}

// fault is the single error type produced anywhere in the core. Handlers
// never panic; every terminal condition is returned as a *fault and the
// execution loop is the only place that turns one into a halt.
type fault struct {
	k   kind
	msg string
}

func (f *fault) Error() string {
	return fmt.Sprintf("%s: %s", f.k, f.msg)
}

func newFault(k kind, format string, args ...any) *fault {
	return &fault{k: k, msg: fmt.Sprintf(format, args...)}
}

func decodeFault(format string, args ...any) *fault {
	return newFault(kindDecode, format, args...)
}

func addressingFault(format string, args ...any) *fault {
	return newFault(kindAddressing, format, args...)
}

func arithmeticFault(format string, args ...any) *fault {
	return newFault(kindArithmetic, format, args...)
}

func ioFault(format string, args ...any) *fault {
	return newFault(kindIO, format, args...)
}

func stackFault(format string, args ...any) *fault {
	return newFault(kindStack, format, args...)
}

func loadFault(format string, args ...any) *fault {
	return newFault(kindLoad, format, args...)
}

// ExitCode maps any error produced by this package to a process exit code.
// Errors not produced by this package (should not happen in practice) get a
// generic nonzero code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	f, ok := err.(*fault)
	if !ok {
		return 1
	}
	switch f.k {
	case kindDecode:
		return 2
	case kindAddressing:
		return 3
	case kindArithmetic:
		return 4
	case kindIO:
		return 5
	case kindStack:
		return 6
	case kindLoad:
		return 7
	default:
		return 1
	}
}
