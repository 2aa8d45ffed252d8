// Program riscv-illegals generates RISC-V instruction words that must raise
// an illegal-instruction trap, along with tools to inspect the encoding
// tables they are derived from.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "riscv-illegals",
		Short: "riscv-illegals generates illegal RISC-V instruction encodings.",
		Example: `  riscv-illegals generate --isa RV64IMAFD --out illegal.S
  riscv-illegals tree --isa RV32IM
  riscv-illegals decode --isa RV32I 0x00000073 0x02000033
  riscv-illegals walk --width 8 --ones 2 --invert`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(h))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log generation details to stderr")
	root.AddCommand(
		generateCommand(),
		dumpCommand(),
		treeCommand(),
		decodeCommand(),
		walkCommand(),
		twosCommand(),
	)
	return root
}
