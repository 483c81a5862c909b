package model_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/damedic/fhir-binding-go/fhirjson"
	"github.com/damedic/fhir-binding-go/model"
	"github.com/damedic/fhir-binding-go/model/gen/r4"
	"github.com/damedic/fhir-binding-go/testdata"
	"github.com/damedic/fhir-binding-go/testdata/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundtripJSON(t *testing.T) {
	for name, jsonIn := range testdata.Examples() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r, err := r4.UnmarshalResource(jsonIn)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, fhirjson.Encode(&buf, r))
			assert.JSONEqual(t, string(jsonIn), buf.String())

			jsonOut, err := json.Marshal(r4.ContainedResource{Resource: r})
			require.NoError(t, err)
			assert.JSONEqual(t, string(jsonIn), string(jsonOut))
		})
	}
}

func TestRoundtripNDJSON(t *testing.T) {
	sc := bufio.NewScanner(bytes.NewReader(testdata.Fixture("observations.ndjson")))
	n := 0
	for sc.Scan() {
		n++
		r, err := r4.UnmarshalResource(sc.Bytes())
		require.NoError(t, err)
		require.Implements(t, (*model.Resource)(nil), r)
		require.Equal(t, "Observation", r.ResourceType())

		out, err := fhirjson.MarshalResource(r)
		require.NoError(t, err)
		assert.JSONEqual(t, sc.Text(), string(out))
	}
	require.NoError(t, sc.Err())
	require.Equal(t, 3, n)
}

func TestReleaseName(t *testing.T) {
	require.Equal(t, "R4", model.ReleaseName[model.R4]())
}
