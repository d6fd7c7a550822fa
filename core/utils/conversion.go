package utils

import (
	"fmt"
	"strconv"
)

// ToString converts command argument values decoded from JSON or flags to string.
// nil becomes the empty string; whole float64 values (how JSON numbers decode)
// are printed without a fractional part.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
