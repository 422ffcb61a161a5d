package vm

import (
	"io"
	"log/slog"
	"os"
)

// VM composes the five core components (address space, stack, program
// counter/cycle/halt state, plus the input/output and tracing
// collaborators) behind a single struct, following KTStephano-GVM's
// composition-by-value style: the execution loop, instruction handlers,
// and debugger all borrow *VM for the scope of one call; nothing holds a
// back-reference into them.
type VM struct {
	mem   *Memory
	stack *Stack

	pc     Word
	cycles uint64
	halted bool
	err    error

	source LineSource
	sink   OutputSink

	input inputBuffer

	logging bool
	trace   *tracer

	breakCycle        uint64
	breakCycleEnabled bool
	breakPC           Word
	breakPCEnabled    bool

	imageBase string // used to derive side-file paths
	logger    *slog.Logger
}

// Option configures a VM at construction time.
type Option func(*VM)

// WithBreakpoints arms the cycle-count and/or program-counter breakpoints.
// A zero value for either disables that breakpoint, matching spec's "absent
// / zero = disabled".
func WithBreakpoints(cycle uint64, pc Word) Option {
	return func(vm *VM) {
		if cycle != 0 {
			vm.breakCycle = cycle
			vm.breakCycleEnabled = true
		}
		if pc != 0 {
			vm.breakPC = pc
			vm.breakPCEnabled = true
		}
	}
}

// WithTerminal overrides the default stdin/stdout terminal collaborators —
// used by tests to script input and capture output.
func WithTerminal(source LineSource, sink OutputSink) Option {
	return func(vm *VM) {
		vm.source = source
		vm.sink = sink
	}
}

// WithImageBase sets the path stem used to derive the trace and memory-dump
// side-file names (<base>.trace.log, <base>.memdump.txt).
func WithImageBase(path string) Option {
	return func(vm *VM) {
		vm.imageBase = path
	}
}

// WithLogger overrides the structured logger used for fault diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(vm *VM) {
		vm.logger = logger
	}
}

// New constructs a VM with the given program image loaded at address 0.
func New(words []Word, opts ...Option) (*VM, error) {
	mem := NewMemory()
	if err := mem.Load(words); err != nil {
		return nil, err
	}

	vm := &VM{
		mem:       mem,
		stack:     NewStack(),
		source:    NewScannerSource(os.Stdin),
		sink:      os.Stdout,
		imageBase: "image",
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(vm)
	}
	vm.trace = newTracer(func() (io.WriteCloser, error) {
		return os.OpenFile(vm.tracePath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}, func() bool { return vm.logging })
	return vm, nil
}

func (vm *VM) tracePath() string {
	return vm.imageBase + ".trace.log"
}

func (vm *VM) dumpPath() string {
	return vm.imageBase + ".memdump.txt"
}

// Halted reports whether the VM has stopped executing.
func (vm *VM) Halted() bool {
	return vm.halted
}

// Err returns the error that halted the VM, if any (nil for a clean HALT or
// empty-stack RET).
func (vm *VM) Err() error {
	return vm.err
}

// Cycles returns the number of instructions executed so far.
func (vm *VM) Cycles() uint64 {
	return vm.cycles
}

// Close releases the VM's side-file handles and, if the terminal source is
// closeable (the interactive liner-backed source), restores terminal state.
func (vm *VM) Close() error {
	err := vm.trace.Close()
	if closer, ok := vm.source.(io.Closer); ok {
		if cerr := closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
