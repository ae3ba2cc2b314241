package rational

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON encodes the fraction as its string form, for example "3/4", so that no precision is lost to JSON numbers.
func (r Rational) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes a fraction from its string form.
func (r *Rational) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to decode rational: %w", err)
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	*r = parsed

	return nil
}
