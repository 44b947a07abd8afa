package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTypesCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported resource types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range root.newProvider(nil).TypeNames() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
