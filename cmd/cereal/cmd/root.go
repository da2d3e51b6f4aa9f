package cmd

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cerealize/cerealize-go/pkg/cereal"
	"github.com/cerealize/cerealize-go/pkg/schemafile"
)

var (
	schemaPath string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cereal",
	Short: "Encode and decode fixed-layout binary records",
	Long: `cereal works with wire messages laid out as C-style packed structs:
big-endian integers, fixed-capacity zero-padded strings, fixed-length
arrays and nested records, with no framing between fields.

Record layouts are declared in a YAML schema file; see the schemafile
package documentation for the format.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&schemaPath, "schema", "s", "", "YAML schema definition file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	_ = rootCmd.MarkPersistentFlagRequired("schema")
}

// loadType loads the schema file into a fresh registry and resolves the
// named record type.
func loadType(name string) (*cereal.RecordType, error) {
	reg := cereal.NewRegistry()
	types, err := schemafile.Load(schemaPath, reg)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("types", len(types)).Str("file", schemaPath).Msg("schema loaded")

	rt, ok := reg.Lookup(name)
	if !ok {
		return nil, errors.Errorf("type %q not defined in %s (have: %s)",
			name, schemaPath, strings.Join(reg.Names(), ", "))
	}
	return rt, nil
}
