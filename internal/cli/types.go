package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/laramig/internal/migration"
)

// TypesCmd returns the types command
func TypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported column types",
		Long:  `List every column type with the schema builder call it is rendered as. Columns of any other type are skipped.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			types := migration.DefaultTypeMap()
			bold := color.New(color.Bold)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, bold.Sprintf("%-20s %s", "TYPE", "CALL"))
			for _, typ := range types.Types() {
				call, _ := types.Lookup(typ)
				fmt.Fprintf(out, "%-20s $table->%s()\n", typ, call)
			}
			return nil
		},
	}
}
