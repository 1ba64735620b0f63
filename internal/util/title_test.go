package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	testCases := []struct {
		in     string
		expect string
	}{
		{"Example", "example"},
		{"  example ", "example"},
		{"NIGHTMARE  \t CITY", "nightmare city"},
		{"ÉTUDE", "étude"},
		{"ウラ・オモテ", "ウラ・オモテ"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expect, NormalizeTitle(tc.in), "normalize %q", tc.in)
	}
}

func TestNormalizeTitleCoalesces(t *testing.T) {
	// "example" proposed while "Example" exists must map to one key
	assert.Equal(t, NormalizeTitle("Example"), NormalizeTitle("example"))
}
