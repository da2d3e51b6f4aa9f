package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sizeCmd = &cobra.Command{
	Use:   "size TYPE",
	Short: "Print the fixed wire size of a record type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadType(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%d\n", rt.Size())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sizeCmd)
}
