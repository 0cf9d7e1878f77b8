package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slideworks/atomix/level"
)

var listCmd = &cobra.Command{
	Use:   "list LEVELFILE",
	Short: "List the levels in a level file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := level.LoadFile(args[0])
		if err != nil {
			return err
		}
		for i, name := range f.Names() {
			fmt.Fprintf(cmd.OutOrStdout(), "%3d. %s\n", i+1, name)
		}
		return nil
	},
}
