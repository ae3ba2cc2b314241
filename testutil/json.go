package testutil

import (
	"io"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON marshals the provided interface to JSON fatally terminating the current test in the event of a failure.
func MarshalJSON(t *testing.T, data any) []byte {
	dJSON, err := json.Marshal(data)
	require.NoError(t, err)

	return dJSON
}

// UnmarshalJSON unmarshals the provide JSON data into the given interface fatally terminating the current test in the
// even of a failure.
func UnmarshalJSON(t *testing.T, dJSON []byte, data any) {
	require.NoError(t, json.Unmarshal(dJSON, data))
}

// DecodeJSON decodes data from the provided reader into the given interface fatally terminating the current test in the
// event of a failure.
func DecodeJSON(t *testing.T, reader io.Reader, data any) {
	require.NoError(t, json.NewDecoder(reader).Decode(data))
}
