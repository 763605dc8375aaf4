package errors

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E1xxx: Lexical and parse errors
//   - E2xxx: Semantic errors
//   - E3xxx: Runtime errors
type ErrorCode string

const (
	// Lexical and parse errors (E1xxx)
	E1001 ErrorCode = "E1001" // Unrecognized text
	E1002 ErrorCode = "E1002" // Invalid action
	E1003 ErrorCode = "E1003" // Invalid sensor
	E1004 ErrorCode = "E1004" // Missing block terminator
	E1005 ErrorCode = "E1005" // Unknown construct

	// Semantic errors (E2xxx)
	E2001 ErrorCode = "E2001" // Loop repeats too many times

	// Runtime errors (E3xxx)
	E3001 ErrorCode = "E3001" // Variable not declared
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E1001: "unrecognized text",
	E1002: "invalid action",
	E1003: "invalid sensor",
	E1004: "missing block terminator",
	E1005: "unknown construct",

	E2001: "loop repeats too many times",

	E3001: "variable not declared",
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Category returns the error category based on the code prefix.
func (c ErrorCode) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch c[1] {
	case '1':
		return "parse"
	case '2':
		return "semantic"
	case '3':
		return "runtime"
	default:
		return "unknown"
	}
}
