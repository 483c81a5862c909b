// Command generate writes the typed views of model/gen from the FHIR
// definitions.
//
// Without --zip the definitions embedded in package schema are used.
package main

import (
	"os"
	"strings"

	"github.com/damedic/fhir-binding-go/internal/generate"
	"github.com/damedic/fhir-binding-go/internal/generate/json"
	"github.com/damedic/fhir-binding-go/schema"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newCommand().Execute(); err != nil {
		log.Fatal().Err(err).Msg("generation failed")
	}
}

func newCommand() *cobra.Command {
	var (
		zipPath string
		release string
		out     string
	)

	cmd := &cobra.Command{
		Use:           "generate",
		Short:         "Generate the typed views of a FHIR release",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				reg *schema.Registry
				err error
			)
			if zipPath != "" {
				reg, err = readRegistryFromZIP(zipPath)
			} else {
				reg, err = schema.R4()
			}
			if err != nil {
				return err
			}

			if out == "" {
				out = "model/gen/" + strings.ToLower(release)
			}
			log.Info().Str("release", release).Str("dir", out).
				Int("types", len(reg.Types())).
				Int("valueSets", len(reg.ValueSets())).
				Msg("generating")

			return generate.GenerateAll(reg, release, out,
				generate.ModelPkgDocGenerator{},
				generate.TypesGenerator{},
				generate.ImplElementGenerator{},
				generate.ImplResourceGenerator{},
				generate.BuilderGenerator{},
				json.MarshalGenerator{},
				json.UnmarshalGenerator{},
				generate.StringerGenerator{},
				generate.OperationOutcomeErrorGenerator{},
				generate.ValueSetsGenerator{},
			)
		},
	}

	cmd.Flags().StringVar(&zipPath, "zip", "", "path of the definitions.json.zip of the release")
	cmd.Flags().StringVar(&release, "release", "R4", "release name, also the package name in lower case")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (default model/gen/<release>)")
	return cmd
}
