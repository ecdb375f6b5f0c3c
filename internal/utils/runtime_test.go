package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRuntime(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want int
	}{
		{name: "text with unit", raw: "142 min", want: 142},
		{name: "plain number", raw: float64(142), want: 142},
		{name: "int", raw: 142, want: 142},
		{name: "int64", raw: int64(90), want: 90},
		{name: "json number", raw: json.Number("97"), want: 97},
		{name: "fractional number truncated", raw: 99.9, want: 99},
		{name: "numeric string", raw: "45", want: 45},
		{name: "leading spaces", raw: "  60 min", want: 60},
		{name: "N/A", raw: "N/A", want: 0},
		{name: "empty string", raw: "", want: 0},
		{name: "absent", raw: nil, want: 0},
		{name: "negative number", raw: float64(-5), want: 0},
		{name: "negative string", raw: "-5 min", want: 0},
		{name: "text before digits", raw: "about 90 min", want: 0},
		{name: "bool", raw: true, want: 0},
		{name: "invalid json number", raw: json.Number("abc"), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRuntime(tt.raw))
		})
	}
}

func TestNormalizeRuntime_DecodedJSON(t *testing.T) {
	var body struct {
		Runtime any `json:"runtime"`
	}

	for input, want := range map[string]int{
		`{"runtime":"142 min"}`: 142,
		`{"runtime":142}`:       142,
		`{"runtime":"N/A"}`:     0,
		`{}`:                    0,
	} {
		body.Runtime = nil
		if err := json.Unmarshal([]byte(input), &body); err != nil {
			t.Fatalf("unmarshal %s: %v", input, err)
		}
		assert.Equal(t, want, NormalizeRuntime(body.Runtime), input)
	}
}
