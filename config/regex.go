package config

import "strings"

// RegexOptions configures the regular-expression parser the checker
// delegates literal parsing to.
type RegexOptions struct {
	// SpanOffset adjusts span positions to fit the global source code.
	SpanOffset uint32
	// UnicodeMode is the `u` flag.
	UnicodeMode bool
	// UnicodeSetsMode is the `v` flag; it implies UnicodeMode.
	UnicodeSetsMode bool
}

func (o RegexOptions) WithSpanOffset(offset uint32) RegexOptions {
	o.SpanOffset = offset
	return o
}

// WithFlags derives modes from a literal's flag text, e.g. "gimu".
// Unknown flags are the caller's problem and are ignored here.
func (o RegexOptions) WithFlags(flags string) RegexOptions {
	o.UnicodeMode = strings.ContainsAny(flags, "uv")
	o.UnicodeSetsMode = strings.Contains(flags, "v")
	return o
}
