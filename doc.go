// Package dtogen generates TypeScript DTO declarations from OpenAPI documents.
//
// dtogen runs a strictly linear pipeline, once per invocation:
//
//   - loader: read the OpenAPI document from a configured path
//   - translator: lower component schemas into TypeScript declarations
//   - composer: prefix a provenance banner (timestamp, generator version, eslint marker)
//   - materializer: write the models file and an index file re-exporting a fixed manifest of types
//
// The pipeline package wires the stages together behind a single entry point:
//
//	import "github.com/erraggy/dtogen/pipeline"
//
//	cfg := pipeline.DefaultConfig()
//	cfg.SpecPath = "openapi/notes-api.yaml"
//	result, err := pipeline.Run(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("wrote", result.ModelsPath)
//
// # Error Handling
//
// All failures are typed (see the dtoerrors package) and can be inspected with
// [errors.Is] and [errors.As]:
//
//	if errors.Is(err, dtoerrors.ErrSpecNotFound) {
//		// the configured spec path does not exist
//	}
//
// # Command Line
//
// The dtogen command exposes the pipeline:
//
//	dtogen generate --spec openapi/notes-api.yaml --models dist/models.ts --index dist/index.d.ts
//	dtogen version
//	dtogen mcp
package dtogen
