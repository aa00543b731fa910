package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for optimization suggestions.
	SevInfo Severity = iota
	// SevWarning is for style violations.
	SevWarning
	// SevError is for parse failures and hard rule violations.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
