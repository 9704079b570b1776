package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/makery/pkg/makery"
)

const modulePath = "github.com/mesh-intelligence/makery"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the makery version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "makery v%s\nmodule: %s\n", makery.Version, modulePath)
			return nil
		},
	}
}
