package diag

// Severity ranks a diagnostic. The lexer reports warnings for input it
// could recover from and errors where it had to skip bytes; extraction
// failures are always errors.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{"INFO", "WARNING", "ERROR"}

// String returns the upper-case label used in formatted output.
func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}
