package natural

// NumericMode names the numeric policy compiled into this build: "decimal"
// by default, "integer" when built with the natural_integer tag. The mode is
// fixed for the process so every comparison in a sort agrees.
func NumericMode() string {
	return numericMode
}

// ParseNumber parses s as a whole under the active numeric mode.
func ParseNumber(s string) (Number, bool) {
	n, err := parseNumber(s)

	return n, err == nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
