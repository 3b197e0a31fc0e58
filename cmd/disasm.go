package cmd

import (
	"os"

	"vip8/emu/cpu"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm `path/ROM`",
	Short: "print an instruction listing of a ROM",
	Args:  cobra.ExactArgs(1),
	RunE:  Disasm,
}

func Disasm(cmd *cobra.Command, args []string) error {
	rom, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrap(err, "reading rom")
	}
	if len(rom) > cpu.MaxProgramSize {
		return errors.Wrapf(cpu.ErrProgramTooLarge, "%d bytes", len(rom))
	}
	return cpu.Disassemble(cmd.OutOrStdout(), rom)
}
