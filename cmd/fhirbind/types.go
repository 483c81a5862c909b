package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func typesCmd(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the types and value sets known to the registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			switch kind {
			case "resource":
				for _, name := range a.reg.ResourceNames() {
					fmt.Fprintln(out, name)
				}
			case "datatype":
				for _, name := range a.reg.ComplexTypeNames() {
					fmt.Fprintln(out, name)
				}
			case "valueset":
				for _, vs := range a.reg.ValueSets() {
					fmt.Fprintf(out, "%s\t%s\t%s\n", vs.Name, vs.URL, strings.Join(vs.CodeValues(), ","))
				}
			default:
				return errors.Errorf("unknown kind %q, use resource, datatype or valueset", kind)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "resource", "resource, datatype or valueset")
	return cmd
}
