// Package naming provides TypeScript naming helpers for dtogen.
//
// Functions include ToPascalCase for deriving declaration names from schema
// keys, IsIdentifier for deciding whether a property key can appear bare,
// and TypeName and PropertyKey which combine the two into emit-ready text.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
