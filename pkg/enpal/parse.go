package enpal

import (
	"regexp"
	"strconv"
)

// Reading is the parsed content of a single table cell: a numeric value and
// an optional unit label. Cells without a recognizable quantity produce a
// Reading with HasValue false and never enter a Snapshot.
type Reading struct {
	Value    float64 `json:"value"`
	Unit     string  `json:"unit,omitempty"`
	HasValue bool    `json:"-"`
}

// Snapshot maps a row name (the first-cell text of a table row) to its
// reading. It is rebuilt wholesale on every successful fetch, never merged.
type Snapshot map[string]Reading

// Value patterns seen on the deviceMessages page:
//
//	"18.52kWh"            => 18.52 kWh
//	"2366.35 W"           => 2366.35 W (space before unit allowed)
//	"On-grid mode (200)"  => 200, no unit
var (
	numberWithUnit = regexp.MustCompile(`^\s*([-+]?\d+(?:\.\d+)?)\s*([^\d\s]+)?.*$`)
	numberInParen  = regexp.MustCompile(`\(([-+]?\d+(?:\.\d+)?)\)\s*$`)
)

// ParseValue parses a trimmed cell string. A trailing parenthesized number
// takes priority and is unit-less; otherwise a leading number with an
// optional unit token is matched. Anything else carries no value.
func ParseValue(raw string) Reading {
	if m := numberInParen.FindStringSubmatch(raw); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Reading{}
		}
		return Reading{Value: value, HasValue: true}
	}

	if m := numberWithUnit.FindStringSubmatch(raw); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Reading{Unit: m[2]}
		}
		return Reading{Value: value, Unit: m[2], HasValue: true}
	}

	return Reading{}
}

// Normalize rewrites Wh readings as kWh. This is the only unit conversion
// performed on scraped values.
func Normalize(r Reading) Reading {
	if r.HasValue && r.Unit == "Wh" {
		r.Value = r.Value / 1000
		r.Unit = "kWh"
	}
	return r
}
