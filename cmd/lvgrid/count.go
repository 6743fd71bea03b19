package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count FILE",
		Short: "Print the total and filtered number of points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, space, filter, err := a.build(cmd, args[0])
			if err != nil {
				return err
			}
			matched, err := space.Count(filter)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "total: %d\n", space.Len())
			fmt.Fprintf(a.out, "matched: %d\n", matched)
			return nil
		},
	}
}
