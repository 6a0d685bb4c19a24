package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":        "0",
		"950":      "950",
		"25000":    "25.000",
		"1000000":  "1.000.000",
		"-1250000": "-1.250.000",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(in), in)
	}
}
