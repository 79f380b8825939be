package offsets

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"golang.org/x/exp/slices"
)

// Override corrects the offsets of icons authored
// at a different size or with an inverted vertical axis.
type Override struct {
	Codes  []string `json:"codes"`  // exact icon codes
	Factor float64  `json:"factor"` // applied to both offsets
	FlipY  bool     `json:"flip_y"` // negates the vertical scale
}

// Matches returns true if `code` is one of the codes of the rule.
func (o Override) Matches(code string) bool {
	return slices.Contains(o.Codes, code)
}

// Apply returns the record with the rule applied.
func (o Override) Apply(r Record) Record {
	r.OX *= o.Factor
	r.OY *= o.Factor
	if o.FlipY {
		r.SY = -r.SY
	}
	return r
}

// ApplyOverrides applies, in order, every rule matching `code`.
func ApplyOverrides(overrides []Override, code string, r Record) Record {
	for _, o := range overrides {
		if o.Matches(code) {
			r = o.Apply(r)
		}
	}
	return r
}

// DefaultOverrides returns the corrections needed by the standard icon set.
func DefaultOverrides() []Override {
	return []Override{
		{Codes: []string{"dd", "su", "cs", "yu"}, Factor: 10},
		{Codes: []string{"at"}, Factor: 5, FlipY: true},
		{Codes: []string{"_eu", "_as"}, Factor: 2. / 3},
		{Codes: []string{"_am"}, Factor: 1.666666},
	}
}

func (o Override) validate() error {
	if len(o.Codes) == 0 {
		return errors.New("override without codes")
	}
	if o.Factor == 0 || math.IsNaN(o.Factor) || math.IsInf(o.Factor, 0) {
		return fmt.Errorf("invalid factor %g for codes %v", o.Factor, o.Codes)
	}
	return nil
}

// LoadOverrides reads a JSON list of rules, such as
//
//	[{"codes": ["dd", "su"], "factor": 10}, {"codes": ["at"], "factor": 5, "flip_y": true}]
func LoadOverrides(r io.Reader) ([]Override, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var out []Override
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("invalid override table: %w", err)
	}
	for i, o := range out {
		if err := o.validate(); err != nil {
			return nil, fmt.Errorf("invalid override table: rule %d: %w", i, err)
		}
	}
	return out, nil
}
