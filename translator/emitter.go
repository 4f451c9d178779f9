package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/erraggy/dtogen/internal/naming"
	"github.com/erraggy/dtogen/internal/schemautil"
	"github.com/erraggy/dtogen/parser"
)

const indentUnit = "  "

// emitter accumulates declaration text for one document.
type emitter struct {
	ctx   context.Context
	doc   *parser.Document
	opts  GenerationOptions
	log   parser.Logger
	names map[string]string
	buf   strings.Builder
}

func newEmitter(ctx context.Context, doc *parser.Document, opts GenerationOptions, log parser.Logger) *emitter {
	return &emitter{ctx: ctx, doc: doc, opts: opts, log: log, names: TypeNames(doc)}
}

// LayoutTypes are the interfaces emitted after the schema declarations.
// No schema declaration is given one of these names.
var LayoutTypes = []string{"components", "paths", "operations"}

// TypeNames maps every named schema of doc to its declaration name.
func TypeNames(doc *parser.Document) map[string]string {
	return naming.TypeNames(doc.SchemaNames(), LayoutTypes...)
}

func (e *emitter) String() string {
	return e.buf.String()
}

func (e *emitter) printf(format string, args ...any) {
	fmt.Fprintf(&e.buf, format, args...)
}

// emitDocument writes named schema declarations, then the components,
// paths, and operations interfaces.
func (e *emitter) emitDocument(result *parser.ParseResult) error {
	schemas := e.doc.Schemas()
	names := e.doc.SchemaNames()
	for _, name := range names {
		if err := e.ctx.Err(); err != nil {
			return fmt.Errorf("canceled before schema %q: %w", name, err)
		}
		e.emitSchemaDeclaration(name, schemas[name])
		e.buf.WriteString("\n")
	}

	e.emitComponents(names)
	e.buf.WriteString("\n")
	return e.emitPathsAndOperations(result)
}

func (e *emitter) emitSchemaDeclaration(name string, s *parser.Schema) {
	typeName := e.names[name]
	e.buf.WriteString(jsDoc(s, ""))

	if !e.opts.ExportType && e.canBeInterface(s) {
		e.printf("export interface %s %s\n", typeName, e.objectExpr(s, ""))
		e.log.Debug("emitted interface", "schema", name, "type", typeName)
		return
	}
	e.printf("export type %s = %s;\n", typeName, e.typeExpr(s, ""))
	e.log.Debug("emitted type alias", "schema", name, "type", typeName)
}

// canBeInterface reports whether s lowers to a plain non-empty object shape.
func (e *emitter) canBeInterface(s *parser.Schema) bool {
	if s == nil || s.Ref != "" || len(s.Enum) > 0 || s.Const != nil {
		return false
	}
	if schemautil.IsComposition(s) || schemautil.IsNullable(s) || !schemautil.IsObject(s) {
		return false
	}
	_, open := e.indexSignature(s, "")
	return len(s.Properties) > 0 || open
}

func (e *emitter) emitComponents(names []string) {
	if len(names) == 0 {
		e.buf.WriteString("export interface components {\n" + indentUnit + "schemas: Record<string, never>;\n}\n")
		return
	}
	e.buf.WriteString("export interface components {\n")
	e.buf.WriteString(indentUnit + "schemas: {\n")
	for _, name := range names {
		e.printf("%s%s: %s;\n", indentUnit+indentUnit, naming.PropertyKey(name), e.names[name])
	}
	e.buf.WriteString(indentUnit + "};\n}\n")
}

// typeExpr lowers a schema into a TypeScript type expression. indent is the
// indentation of the line the expression starts on.
func (e *emitter) typeExpr(s *parser.Schema, indent string) string {
	if s == nil {
		return "unknown"
	}
	if s.Ref != "" {
		return e.refName(s.Ref)
	}

	base := e.baseExpr(s, indent)
	if schemautil.IsNullable(s) && base != "null" && base != "unknown" && !hasNullMember(base) {
		return base + " | null"
	}
	return base
}

func (e *emitter) baseExpr(s *parser.Schema, indent string) string {
	switch {
	case s.Const != nil:
		return literal(s.Const)
	case len(s.Enum) > 0:
		parts := make([]string, 0, len(s.Enum))
		for _, v := range s.Enum {
			parts = append(parts, literal(v))
		}
		return joinUnique(parts, " | ")
	case len(s.AllOf) > 0:
		return e.allOfExpr(s, indent)
	case len(s.OneOf) > 0 || len(s.AnyOf) > 0:
		if !e.opts.UnionSupport {
			return "unknown"
		}
		members := append(append([]*parser.Schema{}, s.OneOf...), s.AnyOf...)
		parts := make([]string, 0, len(members))
		for _, m := range members {
			parts = append(parts, wrapComposite(e.typeExpr(m, indent)))
		}
		return joinUnique(parts, " | ")
	}

	types := schemautil.NonNullTypes(s)
	if len(types) == 0 {
		if schemautil.HasType(s, "null") {
			return "null"
		}
		return "unknown"
	}
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, e.primitiveExpr(t, s, indent))
	}
	return joinUnique(parts, " | ")
}

func (e *emitter) primitiveExpr(t string, s *parser.Schema, indent string) string {
	switch t {
	case "string":
		if (s.Format == "date-time" || s.Format == "date") && e.opts.DateHandling == DateAsDate {
			return "Date"
		}
		if s.Format == "binary" {
			return "Blob"
		}
		return "string"
	case "integer", "number":
		return "number"
	case "boolean":
		return "boolean"
	case "null":
		return "null"
	case "file":
		return "Blob"
	case "array":
		return e.arrayExpr(s.Items, indent)
	case "object":
		return e.objectExpr(s, indent)
	}
	e.log.Warn("unknown schema type, emitting unknown", "type", t)
	return "unknown"
}

func (e *emitter) arrayExpr(items *parser.Schema, indent string) string {
	item := "unknown"
	if items != nil {
		item = wrapComposite(e.typeExpr(items, indent))
	}
	if strings.HasPrefix(item, "readonly ") {
		item = "(" + item + ")"
	}
	if e.opts.ArrayRepresentation == ArrayReadonly {
		return "readonly " + item + "[]"
	}
	return item + "[]"
}

func (e *emitter) allOfExpr(s *parser.Schema, indent string) string {
	parts := make([]string, 0, len(s.AllOf)+1)
	for _, m := range s.AllOf {
		parts = append(parts, wrapComposite(e.typeExpr(m, indent)))
	}
	if len(s.Properties) > 0 {
		parts = append(parts, e.objectExpr(s, indent))
	}
	return joinUnique(parts, " & ")
}

// indexSignature returns the value type of the object's index signature and
// whether it has one. An explicit additionalProperties keyword wins over
// the generation options.
func (e *emitter) indexSignature(s *parser.Schema, indent string) (string, bool) {
	if ap := s.AdditionalProperties; ap != nil {
		if ap.Schema != nil {
			return e.typeExpr(ap.Schema, indent), true
		}
		if ap.Allowed != nil {
			if *ap.Allowed {
				return "unknown", true
			}
			return "", false
		}
	}
	if e.opts.AdditionalProperties || e.opts.DefaultAdditionalPropertiesPolicy {
		return "unknown", true
	}
	return "", false
}

// objectExpr renders an object schema as a property block.
func (e *emitter) objectExpr(s *parser.Schema, indent string) string {
	inner := indent + indentUnit
	valueType, open := e.indexSignature(s, inner)

	if len(s.Properties) == 0 {
		if !open {
			return "Record<string, never>"
		}
		return "{ [key: string]: " + valueType + " }"
	}

	var b strings.Builder
	b.WriteString("{\n")
	for _, prop := range s.Properties {
		b.WriteString(jsDoc(prop.Schema, inner))
		b.WriteString(inner)
		if prop.Schema != nil && prop.Schema.ReadOnly {
			b.WriteString("readonly ")
		}
		b.WriteString(naming.PropertyKey(prop.Name))
		if !s.IsRequired(prop.Name) {
			b.WriteString("?")
		}
		b.WriteString(": ")
		b.WriteString(e.typeExpr(prop.Schema, inner))
		b.WriteString(";\n")
	}
	if open {
		fmt.Fprintf(&b, "%s[key: string]: %s;\n", inner, valueType)
	}
	b.WriteString(indent + "}")
	return b.String()
}

// refName returns the declaration name a local schema $ref points at.
// References are checked before emission, so unknown refs only occur when
// the emitter is driven directly.
func (e *emitter) refName(ref string) string {
	if name, ok := e.doc.SchemaNameFromRef(ref); ok {
		if typeName, ok := e.names[name]; ok {
			return typeName
		}
	}
	e.log.Warn("unresolvable reference, emitting unknown", "ref", ref)
	return "unknown"
}

// jsDoc renders the description, default, and deprecation of s as a JSDoc
// block at the given indentation. It returns "" when there is nothing to say.
func jsDoc(s *parser.Schema, indent string) string {
	if s == nil {
		return ""
	}
	var lines []string
	if text := strings.TrimSpace(s.Description); text != "" {
		lines = append(lines, strings.Split(text, "\n")...)
	} else if title := strings.TrimSpace(s.Title); title != "" {
		lines = append(lines, title)
	}
	if s.Default != nil {
		lines = append(lines, "@default "+defaultText(s.Default))
	}
	if s.Deprecated {
		lines = append(lines, "@deprecated")
	}
	if len(lines) == 0 {
		return ""
	}
	for i, l := range lines {
		lines[i] = strings.ReplaceAll(strings.TrimRight(l, " \t\r"), "*/", "*\\/")
	}
	if len(lines) == 1 {
		return indent + "/** " + lines[0] + " */\n"
	}
	var b strings.Builder
	b.WriteString(indent + "/**\n")
	for _, l := range lines {
		if l == "" {
			b.WriteString(indent + " *\n")
			continue
		}
		b.WriteString(indent + " * " + l + "\n")
	}
	b.WriteString(indent + " */\n")
	return b.String()
}

func defaultText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if data, err := json.Marshal(v); err == nil {
		return string(data)
	}
	return fmt.Sprint(v)
}

// literal renders an enum or const value as a TypeScript literal type.
func literal(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(t)
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return "unknown"
}

// wrapComposite parenthesizes expressions with a top-level union or
// intersection so they can be used as array items or union members.
func wrapComposite(expr string) string {
	if hasTopLevel(expr, " | ") || hasTopLevel(expr, " & ") {
		return "(" + expr + ")"
	}
	return expr
}

func hasNullMember(expr string) bool {
	return expr == "null" || hasTopLevelMember(expr, "null")
}

// hasTopLevel reports whether op appears outside brackets and string literals.
func hasTopLevel(expr, op string) bool {
	depth := 0
	inString := false
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case inString:
			if c == '\\' {
				i++
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '{' || c == '(' || c == '[' || c == '<':
			depth++
		case c == '}' || c == ')' || c == ']' || c == '>':
			depth--
		case depth == 0 && strings.HasPrefix(expr[i:], op):
			return true
		}
	}
	return false
}

func hasTopLevelMember(expr, member string) bool {
	for _, part := range strings.Split(expr, " | ") {
		if part == member {
			return hasTopLevel(expr, " | ") || expr == member
		}
	}
	return false
}

// joinUnique joins parts with sep, dropping duplicates and keeping order.
func joinUnique(parts []string, sep string) string {
	seen := make(map[string]bool, len(parts))
	out := parts[:0:0]
	for _, p := range parts {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

// sortedKeys returns the keys of m in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
