// Command synacorvm loads and runs a Synacor-architecture program image.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	applog "github.com/dnhp/synacor-vm/internal/log"
	"github.com/dnhp/synacor-vm/vm"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run())
}

func run() int {
	var breakCycle uint64
	var breakPC uint16

	root := &cobra.Command{
		Use:           "synacorvm <image>",
		Short:         "Run a Synacor-architecture program image",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImage(args[0], breakCycle, vm.Word(breakPC))
		},
	}
	root.Flags().Uint64Var(&breakCycle, "break-cycle", 0, "halt and dump once this many instructions have executed (0 = disabled)")
	root.Flags().Uint16Var(&breakPC, "break-pc", 0, "halt and dump once the program counter reaches this address (0 = disabled)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if lastExitCode != 0 {
			return lastExitCode
		}
		return 1
	}
	return lastExitCode
}

// lastExitCode carries the fault-derived exit code out of RunE, since
// cobra's Execute only reports success/failure, not our fault taxonomy.
var lastExitCode int

func runImage(path string, breakCycle uint64, breakPC vm.Word) error {
	logger := applog.New(os.Stderr, slog.LevelInfo)

	words, err := vm.LoadImage(path)
	if err != nil {
		lastExitCode = vm.ExitCode(err)
		return err
	}

	machine, err := vm.New(words,
		vm.WithBreakpoints(breakCycle, breakPC),
		vm.WithImageBase(path),
		vm.WithTerminal(vm.NewLinerSource(), os.Stdout),
		vm.WithLogger(logger),
	)
	if err != nil {
		lastExitCode = vm.ExitCode(err)
		return err
	}
	defer machine.Close()

	if err := machine.Run(context.Background()); err != nil {
		lastExitCode = vm.ExitCode(err)
		return err
	}
	lastExitCode = 0
	return nil
}
