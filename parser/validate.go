package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/erraggy/dtogen/dtoerrors"
)

// schemaResourceURL is the in-memory URL the document is registered under
// when compiling its schemas.
const schemaResourceURL = "file:///dtogen/spec.json"

// ValidateSchemas compiles every named schema of the parsed document as JSON
// Schema. OAS 2.0 and 3.0 schemas are compiled as draft-04, OAS 3.1+ as
// draft 2020-12. The first failing schema is reported as a *dtoerrors.ParseError.
func ValidateSchemas(result *ParseResult) error {
	if result == nil || result.Document == nil {
		return &dtoerrors.ParseError{Message: "no parsed document to validate"}
	}

	raw, err := json.Marshal(result.Data)
	if err != nil {
		return &dtoerrors.ParseError{Path: result.SourcePath, Message: "failed to encode document as JSON", Cause: err}
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft4
	if result.OASVersion.UsesTypeArrays() {
		compiler.Draft = jsonschema.Draft2020
	}
	if err := compiler.AddResource(schemaResourceURL, bytes.NewReader(raw)); err != nil {
		return &dtoerrors.ParseError{Path: result.SourcePath, Message: "failed to register document", Cause: err}
	}

	prefix := result.Document.SchemaRefPrefix()
	for _, name := range result.Document.SchemaNames() {
		if _, err := compiler.Compile(schemaResourceURL + prefix + escapePointer(name)); err != nil {
			return &dtoerrors.ParseError{
				Path:    result.SourcePath,
				Message: fmt.Sprintf("schema %q is not valid JSON Schema", name),
				Cause:   err,
			}
		}
	}
	return nil
}

// escapePointer encodes a JSON pointer token (RFC 6901).
func escapePointer(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		switch r {
		case '~':
			b.WriteString("~0")
		case '/':
			b.WriteString("~1")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
