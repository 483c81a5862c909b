package main

import (
	"fmt"

	"github.com/damedic/fhir-binding-go/fhirjson"
	"github.com/damedic/fhir-binding-go/internal/source"
	"github.com/damedic/fhir-binding-go/model/gen/r4"
	"github.com/damedic/fhir-binding-go/validate"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func validateCmd(a *app) *cobra.Command {
	var outcome bool

	cmd := &cobra.Command{
		Use:   "validate [path...]",
		Short: "Validate documents and report every issue",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zerolog.Ctx(cmd.Context())
			out := cmd.OutOrStdout()

			src := source.New(args...)
			results, err := validate.Batch(cmd.Context(), src.All(), a.cfg.ValidateOptions(a.reg)...)
			if err != nil {
				return errors.Wrap(err, "validating")
			}
			if err := src.Err(); err != nil {
				return err
			}

			invalid := 0
			for _, br := range results {
				if !br.Valid() {
					invalid++
				}
				if outcome {
					data, err := fhirjson.MarshalResource(r4.OperationOutcomeFromResult(br.Result))
					if err != nil {
						return errors.Wrapf(err, "encoding outcome of %s", br.Name)
					}
					fmt.Fprintf(out, "%s\n", data)
					continue
				}
				if len(br.Issues) == 0 {
					fmt.Fprintf(out, "%s: valid\n", br.Name)
					continue
				}
				for _, i := range br.Issues {
					fmt.Fprintf(out, "%s: %s\n", br.Name, i)
				}
			}

			log.Info().
				Int("documents", len(results)).
				Int("invalid", invalid).
				Msg("validation finished")
			if invalid > 0 {
				return errFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&outcome, "outcome", false, "print one OperationOutcome per document as NDJSON")
	return cmd
}
