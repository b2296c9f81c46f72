package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/keypath/pkg/keypath"
)

// kindRow describes one capability variant for the kinds table.
type kindRow struct {
	kind       keypath.Kind
	capability string
	operations string
}

// kindTable is the printed form of the capability table: which operations
// each variant supports directly.
var kindTable = []kindRow{
	{keypath.KindReadable, "total read", "Get, GetAll"},
	{keypath.KindWritable, "total read-write", "GetMut, GetAllMut"},
	{keypath.KindFailableReadable, "partial read", "Get, GetAll"},
	{keypath.KindFailableWritable, "partial read-write", "GetMut, GetAllMut"},
	{keypath.KindReadableEnum, "tagged-union read + construct", "Get, GetAll, Embed"},
	{keypath.KindWritableEnum, "tagged-union read-write + construct", "Get, GetMut, GetAllMut, Embed, EmbedMut"},
	{keypath.KindReferenceWritable, "total read-write (reference roots)", "GetMut, GetAllMut"},
	{keypath.KindOwned, "value-consuming read", "GetOwned, GetFailableOwned"},
	{keypath.KindFailableOwned, "value-consuming partial read", "GetFailableOwned"},
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "Print the keypath capability table",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tCAPABILITY\tOPERATIONS")
			for _, row := range kindTable {
				fmt.Fprintf(w, "%s\t%s\t%s\n", row.kind, row.capability, row.operations)
			}
			return w.Flush()
		},
	}
}
