// Package oaserrors provides structured error types for the filtering
// engine and its surrounding CLI.
//
// This package enables programmatic error handling via [errors.Is] and
// [errors.As], allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Types
//
//   - [ParseError]: document decoding failures and structural issues
//   - [ConfigError]: invalid filter specification or CLI input
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	root, _, err := node.ParseBytes(data)
//	if errors.Is(err, oaserrors.ErrParse) {
//	    // Handle parse error
//	}
//
// Extract error details with errors.As():
//
//	var parseErr *oaserrors.ParseError
//	if errors.As(err, &parseErr) {
//	    fmt.Printf("failed to parse %s\n", parseErr.Path)
//	}
package oaserrors
