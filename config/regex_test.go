package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegexOptionsFlags(t *testing.T) {
	testCases := []struct {
		flags          string
		unicode, usets bool
	}{
		{flags: "", unicode: false, usets: false},
		{flags: "gim", unicode: false, usets: false},
		{flags: "u", unicode: true, usets: false},
		{flags: "v", unicode: true, usets: true},
		{flags: "giu", unicode: true, usets: false},
	}

	for _, testCase := range testCases {
		t.Run("flags "+testCase.flags, func(t *testing.T) {
			opts := RegexOptions{}.WithFlags(testCase.flags)
			assert.Equal(t, testCase.unicode, opts.UnicodeMode)
			assert.Equal(t, testCase.usets, opts.UnicodeSetsMode)
		})
	}
}

func TestRegexOptionsSpanOffset(t *testing.T) {
	opts := RegexOptions{}.WithSpanOffset(12).WithFlags("v")
	assert.Equal(t, uint32(12), opts.SpanOffset)
	assert.True(t, opts.UnicodeSetsMode)
}
