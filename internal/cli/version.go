package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the optic CLI release version.
const Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/keypath"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the optic version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "optic v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
