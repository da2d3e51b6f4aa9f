package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cerealize/cerealize-go/pkg/cereal"
	"github.com/cerealize/cerealize-go/pkg/schemafile"
)

var valuesPath string

var encodeCmd = &cobra.Command{
	Use:   "encode TYPE",
	Short: "Encode a YAML value file into wire bytes (hex on stdout)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadType(args[0])
		if err != nil {
			return err
		}

		data, err := os.ReadFile(valuesPath)
		if err != nil {
			return errors.Wrap(err, "read values file")
		}
		var raw map[string]interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return errors.Wrap(err, "parse values yaml")
		}

		inst, err := schemafile.BindValues(rt, raw)
		if err != nil {
			return err
		}
		out, err := cereal.Encode(rt, inst)
		if err != nil {
			return err
		}
		log.Debug().Int("bytes", len(out)).Str("type", rt.Name()).Msg("encoded")
		fmt.Println(hex.EncodeToString(out))
		return nil
	},
}

func init() {
	encodeCmd.Flags().StringVarP(&valuesPath, "values", "v", "", "YAML file with field values")
	_ = encodeCmd.MarkFlagRequired("values")
	rootCmd.AddCommand(encodeCmd)
}
