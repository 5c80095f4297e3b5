package utils

import (
	"strconv"
	"strings"
)

// ToInt parses a numeric value out of a text-format field such as a VDF
// entry. Malformed or empty input yields zero.
func ToInt(val string) int {
	i, _ := strconv.Atoi(strings.TrimSpace(val))
	return i
}

// ToBool interprets the flag encodings seen in Steam's text formats, where
// true is written as "1" or "true".
func ToBool(val string) bool {
	val = strings.TrimSpace(val)
	return val == "1" || strings.EqualFold(val, "true")
}
