package preferences

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePositiveInt(t *testing.T) {
	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{input: "25", want: 25, ok: true},
		{input: "0", ok: false},
		{input: "-4", ok: false},
		{input: "ten", ok: false},
		{input: "", ok: false},
	}
	for _, tc := range cases {
		got, ok := parsePositiveInt(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}
