package taxlot

import (
	"fmt"
	"strings"
)

// Method defines the order in which open lots are consumed by a disposal.
type Method int

const (
	// FIFO (First-In, First-Out) consumes the oldest lot first.
	FIFO Method = iota
	// LIFO (Last-In, First-Out) consumes the most recent lot first.
	LIFO
	// HIFO (Highest-In, First-Out) consumes the lot with the highest unit cost first.
	HIFO
	// AVCO (average cost) is accepted as an input but has no consumption order.
	AVCO
	// SPECID (specific identification) is accepted as an input but has no consumption order.
	SPECID
)

func (m Method) String() string {
	switch m {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	case HIFO:
		return "hifo"
	case AVCO:
		return "avco"
	case SPECID:
		return "specid"
	default:
		return "unknown"
	}
}

// Supported reports whether the method defines a lot consumption order.
func (m Method) Supported() bool {
	switch m {
	case FIFO, LIFO, HIFO:
		return true
	case AVCO, SPECID:
		return false
	default:
		return false
	}
}

// ParseMethod parses a string into a Method. It is case insensitive.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fifo":
		return FIFO, nil
	case "lifo":
		return LIFO, nil
	case "hifo":
		return HIFO, nil
	case "avco", "average":
		return AVCO, nil
	case "specid":
		return SPECID, nil
	default:
		return 0, fmt.Errorf("unknown cost basis method: %q", s)
	}
}

func (m Method) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}
