package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newKindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the registered action kinds and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := a.codec.Registry()
			for _, k := range reg.Kinds() {
				d, err := reg.Resolve(k)
				if err != nil {
					return err
				}
				params := make([]string, len(d.Params))
				for i, p := range d.Params {
					params[i] = p.Wire
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", k, strings.Join(params, ", "))
			}
			return nil
		},
	}
}
