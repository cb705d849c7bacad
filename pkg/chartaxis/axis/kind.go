package axis

import (
	"fmt"
	"strings"
)

// Kind determines how the numeric positions of an axis are interpreted.
type Kind int

const (
	// Category axes place one tick per category name.
	Category Kind = iota
	// Value axes span a continuous numeric range.
	Value
	// DateTime axes span a range of ordinals (milliseconds since the Unix epoch).
	DateTime
)

func (k Kind) String() string {
	switch k {
	case Category:
		return "category"
	case Value:
		return "value"
	case DateTime:
		return "datetime"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind parses an axis kind name as used in configuration files.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "category", "cat":
		return Category, nil
	case "value", "val", "":
		return Value, nil
	case "datetime", "time", "date":
		return DateTime, nil
	}
	return Value, fmt.Errorf("unknown axis kind: %q", s)
}
