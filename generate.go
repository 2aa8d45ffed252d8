package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/apparentlymart/riscv-illegals/illegal"
	"github.com/apparentlymart/riscv-illegals/internal/config"
	"github.com/apparentlymart/riscv-illegals/isa"
)

func generateCommand() *cobra.Command {
	var (
		isaString  string
		configPath string
		outPath    string
		coverage   string
		label      string
		annotate   bool
		dropLegal  bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write illegal instruction words as assembly .word directives.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("isa") {
				cfg.ISA = isaString
			}
			if cmd.Flags().Changed("coverage") {
				cfg.Coverage = coverage
			}
			if cmd.Flags().Changed("label") {
				cfg.Label = label
			}
			if cmd.Flags().Changed("drop-legal") {
				cfg.DropLegal = dropLegal
			}

			opts, err := cfg.Options()
			if err != nil {
				return errors.Wrap(err, "invalid options")
			}
			opts = append(opts, illegal.WithLogger(slog.Default()))
			words, err := illegal.Generate(cfg.ISA, opts...)
			if err != nil {
				return errors.Wrapf(err, "failed to generate for %s", cfg.ISA)
			}

			if outPath == "" {
				return writeWordDirectives(cmd.OutOrStdout(), cfg.Label, words, annotate)
			}
			f, err := os.Create(outPath)
			if err != nil {
				return errors.Wrap(err, "failed to create output")
			}
			if err := writeWordDirectives(f, cfg.Label, words, annotate); err != nil {
				f.Close()
				return errors.Wrap(err, "failed to write output")
			}
			return errors.Wrap(f.Close(), "failed to close output")
		},
	}
	cmd.Flags().StringVar(&isaString, "isa", "", "ISA descriptor, e.g. RV64IMAFD (default from config)")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML file with generator settings")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to this file instead of stdout")
	cmd.Flags().StringVar(&coverage, "coverage", "", "pairwise or cartesian")
	cmd.Flags().StringVar(&label, "label", "", "label placed before the words")
	cmd.Flags().BoolVar(&annotate, "annotate", false, "append each word in binary as a comment")
	cmd.Flags().BoolVar(&dropLegal, "drop-legal", false, "omit words that still decode to an instruction, such as ecall")
	return cmd
}

// writeWordDirectives emits an aligned, labelled block of raw words that an
// assembler will place verbatim in the test image.
func writeWordDirectives(w io.Writer, label string, words []uint32, annotate bool) error {
	if _, err := fmt.Fprintf(w, ".align 4\n%s:\n", label); err != nil {
		return err
	}
	for _, word := range words {
		var err error
		if annotate {
			_, err = fmt.Fprintf(w, ".word 0x%08x # %s\n", word, isa.Word(word))
		} else {
			_, err = fmt.Fprintf(w, ".word 0x%08x\n", word)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
