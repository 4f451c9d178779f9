// Package parser decodes OpenAPI Specification documents into the typed subset
// that dtogen lowers into TypeScript declarations.
//
// The parser accepts OAS 2.0 (Swagger) and OAS 3.x documents in YAML or JSON.
// It is not a general-purpose OpenAPI model: it decodes schemas, paths,
// operations, parameters, request bodies, and responses, and ignores
// everything else (servers, security, callbacks, links, ...).
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(
//		parser.WithBytes(data),
//		parser.WithSourcePath("openapi/notes-api.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, name := range result.Document.SchemaNames() {
//		fmt.Println(name)
//	}
//
// # Property Order
//
// Object properties keep their source order (see [Properties]) so that
// generated declarations list fields the way the spec author wrote them.
//
// # Checks
//
// [ValidateSchemas] compiles every named schema as JSON Schema and reports
// failures as a *dtoerrors.ParseError. Reference checking lives in the walker
// package.
package parser
