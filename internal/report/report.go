// Package report renders the results of the demonstration reductions.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format is the output format for a 'Result'.
type Format int

const (
	// FormatText writes a single human readable line such as 'ints: 55, doubles: 6.1'.
	FormatText Format = iota

	// FormatJSON writes a single JSON object terminated by a newline.
	FormatJSON
)

// String returns the name used to select the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	}

	return fmt.Sprintf("Format(%d)", f)
}

// ParseFormat returns the format with the given (case-insensitive) name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}

	return 0, fmt.Errorf("unknown format %q", name)
}

// Result holds the sum of each sample array.
type Result struct {
	Ints    int     `json:"ints"`
	Doubles float64 `json:"doubles"`
	Strings string  `json:"strings"`
}

// Write renders the result in the given format followed by a newline.
func Write(w io.Writer, format Format, r Result) error {
	switch format {
	case FormatText:
		_, err := fmt.Fprintf(w, "ints: %d, doubles: %s\n", r.Ints, FormatDouble(r.Doubles))
		return err
	case FormatJSON:
		return json.NewEncoder(w).Encode(r)
	}

	return fmt.Errorf("unknown format %s", format)
}

// FormatDouble formats v with six significant digits, trailing zeros removed, like the C '%g' verb.
func FormatDouble(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
