package vm

import "context"

// Run executes the loaded program to completion: HALT, an empty-stack RET,
// a breakpoint hit, or a fault. It returns the error that stopped execution
// (nil for a clean halt). Grounded on KTStephano-GVM's RunProgram /
// original_source's CPU::run, merged into one loop since this spec has no
// separate single-step debugger mode — only declarative breakpoints set
// once at start.
func (vm *VM) Run(ctx context.Context) error {
	for !vm.halted {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := vm.step(); err != nil {
			vm.halted = true
			vm.err = err
			vm.logger.Error("fault", "detail", vm.diagnosticDump(err.Error()))
			return err
		}
		vm.cycles++

		if vm.breakCycleEnabled && vm.cycles == vm.breakCycle {
			vm.halted = true
			vm.logger.Info(vm.diagnosticDump("breakpoint: cycle count reached"))
			return nil
		}
		if vm.breakPCEnabled && vm.pc == vm.breakPC {
			vm.halted = true
			vm.logger.Info(vm.diagnosticDump("breakpoint: program counter reached"))
			return nil
		}
	}
	return nil
}

// step fetches, decodes, and dispatches exactly one instruction.
func (vm *VM) step() error {
	opWord, err := vm.mem.Read(vm.pc)
	if err != nil {
		return err
	}
	op := Opcode(opWord)
	if !op.Valid() {
		return decodeFault("unrecognized opcode %d at address %d", opWord, vm.pc)
	}

	operandsStart := vm.pc + 1
	next, err := handlers[op](vm, operandsStart)
	if err != nil {
		return err
	}
	vm.pc = next
	return nil
}
