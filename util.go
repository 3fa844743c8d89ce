package devcycle

import (
	"fmt"
	"time"
)

func defaultString(v, d string) string {
	if v == "" {
		return d
	}
	return v
}

func convertToString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Allows for overriding in tests
var now = time.Now
