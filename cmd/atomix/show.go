package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show LEVELFILE [LEVEL]",
	Short: "Draw the start and target boards of a level",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPuzzle(cmd, args)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "\nSTARTING STATE:")
		fmt.Fprintln(w)
		fmt.Fprintln(w, p.Grid.RenderString(p.Start))
		fmt.Fprintln(w, "TARGET STATE:")
		fmt.Fprintln(w)
		fmt.Fprintln(w, p.Grid.RenderString(p.Target))
		return nil
	},
}
