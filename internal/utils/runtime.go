package utils

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
)

var leadingIntegerRegexp = regexp.MustCompile(`^\s*(\d+)`)

// NormalizeRuntime converts a runtime value as received from a client into a
// non-negative number of minutes.
//
// Numbers are truncated to whole minutes. Strings are reduced to their
// leading integer ("142 min" -> 142). Missing, negative or unparsable values
// ("N/A", "", nil) normalize to 0.
func NormalizeRuntime(raw any) int {
	switch v := raw.(type) {
	case nil:
		return 0
	case int:
		return clampMinutes(float64(v))
	case int64:
		return clampMinutes(float64(v))
	case float64:
		return clampMinutes(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return clampMinutes(f)
	case string:
		return parseLeadingMinutes(v)
	default:
		return 0
	}
}

func parseLeadingMinutes(s string) int {
	match := leadingIntegerRegexp.FindStringSubmatch(s)
	if match == nil {
		return 0
	}

	minutes, err := strconv.Atoi(match[1])
	if err != nil {
		// only overflow can get here
		return 0
	}

	return clampMinutes(float64(minutes))
}

func clampMinutes(f float64) int {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= math.MaxInt32 {
		return math.MaxInt32
	}

	return int(f)
}
