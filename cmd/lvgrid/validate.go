package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check that a sweep definition parses and builds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, space, filter, err := a.build(cmd, args[0])
			if err != nil {
				return err
			}
			name := def.Name
			if name == "" {
				name = args[0]
			}
			fmt.Fprintf(a.out, "ok: %s (%d dimensions, %d points", name, space.Dims(), space.Len())
			if filter != nil {
				fmt.Fprintf(a.out, ", filter %q", filter)
			}
			fmt.Fprintln(a.out, ")")
			return nil
		},
	}
}
