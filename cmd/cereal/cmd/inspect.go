package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cerealize/cerealize-go/pkg/schemafile"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect TYPE",
	Short: "Print the per-field byte layout of a record type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadType(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s\n off  size  field        type\n", rt.Name())
		fmt.Print(schemafile.Layout(rt))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
