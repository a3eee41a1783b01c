package cmd

import (
	"fmt"

	"github.com/jsphweid/sfextract/sequence"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.mid>",
		Short: "Prints the events of a sequence file",
		Long:  `Prints every event of a midi file with its absolute tick, e.g. a temp_*.mid left behind by a failed render.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspect(cmd, args[0])
		},
	}
}

func inspect(cmd *cobra.Command, path string) error {
	s, err := sequence.ReadFile(path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "time format: %v\n", s.TimeFormat)
	for _, evt := range sequence.Describe(s) {
		fmt.Fprintln(out, evt)
	}
	return nil
}
