package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/couchbase/tools-sum/internal/report"
	"github.com/couchbase/tools-sum/log"
)

func TestLoad(t *testing.T) {
	type test struct {
		name     string
		env      map[string]string
		expected Config
		err      bool
	}

	tests := []*test{
		{
			name:     "Defaults",
			expected: Default(),
		},
		{
			name:     "LogLevel",
			env:      map[string]string{EnvLogLevel: "debug"},
			expected: Config{LogLevel: log.LevelDebug, Format: report.FormatText},
		},
		{
			name:     "InvalidLogLevelIgnored",
			env:      map[string]string{EnvLogLevel: "loud"},
			expected: Default(),
		},
		{
			name:     "JSON",
			env:      map[string]string{EnvFormat: "JSON"},
			expected: Config{LogLevel: log.LevelWarning, Format: report.FormatJSON},
		},
		{
			name:     "EmptyFormat",
			env:      map[string]string{EnvFormat: ""},
			expected: Default(),
		},
		{
			name: "InvalidFormat",
			env:  map[string]string{EnvFormat: "xml"},
			err:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for k, v := range test.env {
				t.Setenv(k, v)
			}

			actual, err := Load()
			if test.err {
				require.ErrorContains(t, err, EnvFormat)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.expected, actual)
		})
	}
}
