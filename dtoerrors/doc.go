// Package dtoerrors provides structured error types for dtogen.
//
// Import path: github.com/erraggy/dtogen/dtoerrors
//
// Every stage of the generation pipeline fails with one of these types, so
// callers can distinguish a missing input from a broken spec or a failed
// write via [errors.Is] and [errors.As].
//
// # Error Types
//
//   - [SpecNotFoundError]: the OpenAPI document does not exist at the resolved path
//   - [ParseError]: YAML/JSON decoding failures and structural issues
//   - [ReferenceError]: a $ref that is malformed or points at a missing schema
//   - [TranslationError]: the schema translator failed; wraps the underlying cause
//   - [WriteError]: an output artifact could not be written
//   - [ConfigError]: invalid configuration or generation options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrSpecNotFound]: Matches any [SpecNotFoundError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrTranslation]: Matches any [TranslationError]
//   - [ErrWrite]: Matches any [WriteError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	result, err := pipeline.Run(ctx, cfg)
//	if errors.Is(err, dtoerrors.ErrSpecNotFound) {
//	    // the user must supply a spec
//	}
//
//	var refErr *dtoerrors.ReferenceError
//	if errors.As(err, &refErr) {
//	    fmt.Printf("bad ref %s at %s\n", refErr.Ref, refErr.Location)
//	}
//
// # Error Chaining
//
// All error types support error chaining via the Cause field and Unwrap().
// A [TranslationError] usually wraps a [ParseError] or [ReferenceError], and a
// [WriteError] wraps the underlying *fs.PathError.
package dtoerrors
