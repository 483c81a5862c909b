package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/damedic/fhir-binding-go/element"
	"github.com/damedic/fhir-binding-go/fhirjson"
	"github.com/damedic/fhir-binding-go/internal/source"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func roundtripCmd(a *app) *cobra.Command {
	var printDocs bool

	cmd := &cobra.Command{
		Use:   "roundtrip [path...]",
		Short: "Decode and re-encode documents, reporting content that changed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zerolog.Ctx(cmd.Context())
			out := cmd.OutOrStdout()
			opts := []fhirjson.Option{
				fhirjson.WithRegistry(a.reg),
				fhirjson.WithPolicy(a.cfg.Policy()),
			}

			src := source.New(args...)
			total, failed := 0, 0
			for name, data := range src.All() {
				total++
				encoded, diff, err := roundtrip(data, opts)
				switch {
				case err != nil:
					failed++
					fmt.Fprintf(out, "%s: %v\n", name, err)
				case diff != "":
					failed++
					fmt.Fprintf(out, "%s: content changed (-input +output):\n%s", name, diff)
				case printDocs:
					fmt.Fprintf(out, "%s\n", encoded)
				default:
					fmt.Fprintf(out, "%s: ok\n", name)
				}
			}
			if err := src.Err(); err != nil {
				return err
			}

			log.Info().Int("documents", total).Int("failed", failed).Msg("roundtrip finished")
			if failed > 0 {
				return errFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&printDocs, "print", false, "print the re-encoded documents instead of a status line")
	return cmd
}

// roundtrip decodes data and encodes it again. diff is empty if both
// documents hold the same content.
func roundtrip(data []byte, opts []fhirjson.Option) (encoded []byte, diff string, err error) {
	obj, _, err := fhirjson.Decode(data, opts...)
	if err != nil {
		return nil, "", err
	}
	encoded, err = element.Marshal(obj)
	if err != nil {
		return nil, "", errors.Wrap(err, "encoding")
	}

	in, err := genericJSON(data)
	if err != nil {
		return nil, "", err
	}
	got, err := genericJSON(encoded)
	if err != nil {
		return nil, "", err
	}
	return encoded, cmp.Diff(in, got), nil
}

// genericJSON decodes data keeping numbers as their literal text, so a
// changed decimal precision shows up as a difference.
func genericJSON(data []byte) (any, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(err, "comparing")
	}
	return v, nil
}
