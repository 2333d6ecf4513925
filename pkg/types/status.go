package types

// Mode is the running inclusion state of a scan.
type Mode int

const (
	// ModeStop suppresses lines.
	ModeStop Mode = iota
	// ModeGo emits lines.
	ModeGo
)

func (m Mode) String() string {
	if m == ModeGo {
		return "go"
	}
	return "stop"
}

// Classification is the link state of a destination relative to its compiled file.
type Classification int

const (
	// Unlinked means nothing exists at the destination.
	Unlinked Classification = iota
	// Linked means the destination resolves to the compiled file.
	Linked
	// Problem means the destination exists but resolves elsewhere.
	Problem
)

// String returns the lowercase name used in JSON output and logs.
func (c Classification) String() string {
	switch c {
	case Unlinked:
		return "unlinked"
	case Linked:
		return "linked"
	case Problem:
		return "problem"
	default:
		return "unknown"
	}
}

// Marker returns the status column shown by `dotf status`.
func (c Classification) Marker() string {
	switch c {
	case Linked:
		return "[y]"
	case Problem:
		return "[!]"
	default:
		return "[ ]"
	}
}

// MarshalText lets classifications serialize as their names.
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
