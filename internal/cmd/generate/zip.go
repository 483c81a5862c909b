package main

import (
	"archive/zip"
	"bytes"
	"io"

	"github.com/damedic/fhir-binding-go/schema"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// definitionFiles are the bundles of the official definitions archive
// (definitions.json.zip) the registry is built from.
var definitionFiles = []string{
	"profiles-types.json",
	"profiles-resources.json",
	"valuesets.json",
}

func readRegistryFromZIP(path string) (*schema.Registry, error) {
	log.Info().Str("path", path).Msg("opening zip archive")
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening definitions archive")
	}
	defer archive.Close()

	readers := make([]io.Reader, 0, len(definitionFiles))
	for _, name := range definitionFiles {
		data, err := readFromZIP(&archive.Reader, name)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("file", name).Int("bytes", len(data)).Msg("read definitions")
		readers = append(readers, bytes.NewReader(data))
	}

	log.Info().Msg("building schema registry")
	return schema.Load(readers...)
}

func readFromZIP(archive *zip.Reader, name string) ([]byte, error) {
	file, err := archive.Open(name)
	if err != nil {
		file, err = archive.Open("definitions.json/" + name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", name)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return data, nil
}
