package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/apparentlymart/riscv-illegals/illegal"
	"github.com/apparentlymart/riscv-illegals/isa"
)

func analyze(isaString string) (isa.Descriptor, *isa.ConstraintMap, error) {
	d, err := isa.ParseDescriptor(isaString)
	if err != nil {
		return isa.Descriptor{}, nil, err
	}
	m, err := illegal.Analyze(isa.DefaultRegistry(), d)
	if err != nil {
		return isa.Descriptor{}, nil, errors.Wrapf(err, "failed to analyze %s", isaString)
	}
	return d, m, nil
}

func dumpCommand() *cobra.Command {
	var isaString string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump the aggregated per-opcode constraints.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := analyze(isaString)
			if err != nil {
				return err
			}
			cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true}
			cfg.Fdump(cmd.OutOrStdout(), m.Entries())
			return nil
		},
	}
	cmd.Flags().StringVar(&isaString, "isa", "RV64IMAFD", "ISA descriptor")
	return cmd
}

func treeCommand() *cobra.Command {
	var isaString string
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Display opcodes, their constant fields and legal values as a tree.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, m, err := analyze(isaString)
			if err != nil {
				return err
			}
			tree := constraintTree(isa.DefaultRegistry(), d, m)
			fmt.Fprintln(cmd.OutOrStdout(), tree.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&isaString, "isa", "RV64IMAFD", "ISA descriptor")
	return cmd
}

func constraintTree(reg *isa.Registry, d isa.Descriptor, m *isa.ConstraintMap) treeprint.Tree {
	tree := treeprint.New()
	tree.SetValue(d.String())
	for _, e := range m.Entries() {
		opBranch := tree.AddMetaBranch(e.Opcode.String(), strings.Join(e.Mnemonics, " "))
		for _, f := range e.Fields {
			vals := make([]string, len(f.Legal))
			for i, v := range f.Legal {
				vals[i] = fmt.Sprintf("%#x", v)
			}
			opBranch.AddMetaNode(f.Range.String(), strings.Join(vals, " "))
		}
		insts := opBranch.AddBranch("operands")
		for _, mnemonic := range e.Mnemonics {
			spec, ok := reg.Lookup(d.Size, mnemonic)
			if !ok {
				continue
			}
			insts.AddMetaNode(mnemonic, fmt.Sprintf("0x%08x %s", spec.Word(), operandSummary(spec)))
		}
	}
	illegals := tree.AddBranch("unused")
	for _, w := range illegal.IllegalOpcodes(m) {
		illegals.AddNode(isa.Opcode(w).String())
	}
	return tree
}

// operandSummary lists the free operands of spec as name:kind pairs.
func operandSummary(spec isa.InstructionSpec) string {
	parts := make([]string, len(spec.Operands))
	for i, name := range spec.Operands {
		parts[i] = fmt.Sprintf("%s:%s", name, isa.OperandType(name))
	}
	return strings.Join(parts, " ")
}

func decodeCommand() *cobra.Command {
	var isaString string
	cmd := &cobra.Command{
		Use:   "decode WORD...",
		Short: "Report which instruction, if any, each word encodes.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, m, err := analyze(isaString)
			if err != nil {
				return err
			}
			reg := isa.DefaultRegistry()
			for _, arg := range args {
				v, err := strconv.ParseUint(arg, 0, 32)
				if err != nil {
					return errors.Wrapf(err, "invalid word %q", arg)
				}
				word := uint32(v)
				name := "illegal"
				if spec, ok := reg.Decode(d, word); ok {
					name = spec.Mnemonic
				} else if m.FullyLegal(word) {
					// every field is legal for some sibling, but no single
					// instruction has this combination
					name = "illegal (legal fields)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "0x%08x %s\n", word, name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&isaString, "isa", "RV64IMAFD", "ISA descriptor")
	return cmd
}
