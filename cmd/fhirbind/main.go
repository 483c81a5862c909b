// Command fhirbind validates and normalizes FHIR JSON documents.
//
// Documents are read from files, directories, NDJSON files, ZIP archives or
// standard input ("-"). Settings come from flags, FHIRBIND_* environment
// variables and an optional .fhirbind.yaml.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/damedic/fhir-binding-go/internal/config"
	"github.com/damedic/fhir-binding-go/schema"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// errFailed is returned when documents were processed but some of them did
// not pass. The details are already printed.
var errFailed = errors.New("some documents failed")

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCommand().ExecuteContext(ctx)
	stop()

	if errors.Is(err, errFailed) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("fhirbind failed")
	}
}

// app is the state shared by the subcommands once the configuration is
// loaded.
type app struct {
	cfg *config.Config
	reg *schema.Registry
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "fhirbind",
		Short:         "Validate and normalize FHIR JSON documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			logger := cfg.Logger(cmd.ErrOrStderr())
			cmd.SetContext(logger.WithContext(cmd.Context()))

			reg, err := cfg.Registry()
			if err != nil {
				return err
			}
			logger.Debug().
				Int("types", len(reg.Types())).
				Int("workers", cfg.Workers).
				Bool("strict", cfg.Strict).
				Msg("configuration loaded")

			a.cfg, a.reg = cfg, reg
			return nil
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(validateCmd(a))
	root.AddCommand(roundtripCmd(a))
	root.AddCommand(typesCmd(a))
	root.AddCommand(versionCmd())
	return root
}
