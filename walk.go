package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/apparentlymart/riscv-illegals/numeric"
)

func walkCommand() *cobra.Command {
	var (
		width, ones      int
		invert, unsigned bool
	)
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Print a walking-ones (or walking-zeros) sequence.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := numeric.BitWalker(width, ones, invert, !unsigned)
			if err != nil {
				return err
			}
			for _, v := range vals {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 8, "pattern width in bits")
	cmd.Flags().IntVar(&ones, "ones", 1, "length of the run of set bits")
	cmd.Flags().BoolVar(&invert, "invert", false, "walk zeros instead of ones")
	cmd.Flags().BoolVar(&unsigned, "unsigned", false, "print patterns unsigned rather than as two's complement")
	return cmd
}

func twosCommand() *cobra.Command {
	var bits uint
	cmd := &cobra.Command{
		Use:   "twos LITERAL...",
		Short: "Read binary or 0x-prefixed hex literals as two's complement numbers.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				v, err := numeric.ParseTwos(arg, bits)
				if err != nil {
					return errors.Wrapf(err, "cannot read %q", arg)
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
	cmd.Flags().UintVar(&bits, "bits", 32, "width of each literal in bits")
	return cmd
}
