// Package translator lowers OpenAPI schemas into TypeScript declarations.
//
// The [Translator] interface takes the raw document text and a set of
// [GenerationOptions] and returns declaration text. [TypeScript] is the
// built-in implementation:
//
//	tr := translator.NewTypeScript(translator.WithSourceName("openapi/notes-api.yaml"))
//	decls, err := tr.Translate(ctx, specText, translator.DefaultOptions())
//
// Output starts with one exported declaration per named schema in name
// order, followed by `components`, `paths`, and `operations` interfaces in
// the layout used by openapi-typescript. The output for a given document and
// options is byte-for-byte deterministic.
//
// # Lowering
//
//   - string becomes `string`, or a literal union for enums
//   - integer and number become `number`
//   - date and date-time strings become `Date` or `string` (DateHandling)
//   - arrays become `T[]` or `readonly T[]` (ArrayRepresentation)
//   - allOf becomes an intersection; oneOf/anyOf a union (UnionSupport)
//   - nullable and `type: [T, "null"]` add `| null`
//   - objects become property blocks, with an index signature when open
//
// Every error is a *dtoerrors.TranslationError whose cause keeps the parse,
// reference, or configuration error that triggered it.
package translator
