package dumpsplit

import "fmt"

// OutputKind defines how a section's accumulated lines are rendered on disk.
type OutputKind int

const (
	// Tabular sections are rendered as delimited rows (CSV).
	Tabular OutputKind = iota
	// Structured sections are rendered as pretty-printed hierarchical data (JSON).
	Structured
)

func (k OutputKind) String() string {
	switch k {
	case Tabular:
		return "tabular"
	case Structured:
		return "structured"
	default:
		return "unknown"
	}
}

// Ext returns the output file extension for this kind of rendering.
func (k OutputKind) Ext() string {
	if k == Structured {
		return ".json"
	}
	return ".csv"
}

// ParseOutputKind parses a string into an OutputKind.
func ParseOutputKind(s string) (OutputKind, error) {
	switch s {
	case "tabular":
		return Tabular, nil
	case "structured":
		return Structured, nil
	default:
		return 0, fmt.Errorf("unknown output kind: %q", s)
	}
}
