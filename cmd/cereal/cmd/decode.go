package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cerealize/cerealize-go/pkg/cereal"
	"github.com/cerealize/cerealize-go/pkg/schemafile"
)

var hexInput string

var decodeCmd = &cobra.Command{
	Use:   "decode TYPE",
	Short: "Decode wire bytes into YAML on stdout",
	Long: `Decode parses one record from the front of the given bytes and prints
its field values as YAML. Bytes are given as hex with --hex, or piped
raw on stdin. Leftover bytes beyond one record are reported on stderr,
matching the stream-chaining contract of the codec.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadType(args[0])
		if err != nil {
			return err
		}

		buf, err := inputBytes()
		if err != nil {
			return err
		}

		inst, rest, err := cereal.Decode(rt, buf)
		if err != nil {
			return err
		}
		if len(rest) > 0 {
			log.Warn().Int("bytes", len(rest)).Msg("leftover bytes after one record")
		}

		plain, err := schemafile.ExtractValues(rt, inst)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(plain)
		if err != nil {
			return errors.Wrap(err, "render yaml")
		}
		fmt.Print(string(out))
		return nil
	},
}

func inputBytes() ([]byte, error) {
	if hexInput != "" {
		clean := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\t' {
				return -1
			}
			return r
		}, hexInput)
		buf, err := hex.DecodeString(clean)
		if err != nil {
			return nil, errors.Wrap(err, "parse hex input")
		}
		return buf, nil
	}
	buf, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.Wrap(err, "read stdin")
	}
	return buf, nil
}

func init() {
	decodeCmd.Flags().StringVarP(&hexInput, "hex", "x", "", "Wire bytes as hex (defaults to raw stdin)")
	rootCmd.AddCommand(decodeCmd)
}
