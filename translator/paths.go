package translator

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/erraggy/dtogen/internal/naming"
	"github.com/erraggy/dtogen/parser"
	"github.com/erraggy/dtogen/walker"
)

// parameterLocations lists parameter groups in emission order.
var parameterLocations = []string{"query", "header", "path", "cookie"}

// emitPathsAndOperations writes `export interface paths` and
// `export interface operations`. Operations with a unique operationId are
// declared once under operations and referenced from paths; the rest are
// inlined into paths.
func (e *emitter) emitPathsAndOperations(result *parser.ParseResult) error {
	ops, err := walker.CollectOperations(result)
	if err != nil {
		return err
	}

	named := make(map[*parser.Operation]bool)
	seen := make(map[string]bool)
	var declared []*walker.OperationInfo
	for _, info := range ops {
		id := info.Operation.OperationID
		if id == "" {
			continue
		}
		if seen[id] {
			e.log.Warn("duplicate operationId, inlining operation", "operationId", id, "path", info.PathTemplate, "method", info.Method)
			continue
		}
		seen[id] = true
		named[info.Operation] = true
		declared = append(declared, info)
	}

	if len(ops) == 0 {
		e.buf.WriteString("export type paths = Record<string, never>;\n\n")
	} else {
		e.buf.WriteString("export interface paths {\n")
		var current string
		for i, info := range ops {
			if err := e.ctx.Err(); err != nil {
				return fmt.Errorf("canceled before path %q: %w", info.PathTemplate, err)
			}
			if i == 0 || info.PathTemplate != current {
				if i > 0 {
					e.buf.WriteString(indentUnit + "};\n")
				}
				current = info.PathTemplate
				e.printf("%s%s: {\n", indentUnit, strconv.Quote(current))
			}
			inner := indentUnit + indentUnit
			if named[info.Operation] {
				e.printf("%s%s: operations[%s];\n", inner, info.Method, strconv.Quote(info.Operation.OperationID))
				continue
			}
			e.printf("%s%s: %s;\n", inner, info.Method, e.operationExpr(info, inner))
		}
		e.buf.WriteString(indentUnit + "};\n}\n\n")
	}

	if len(declared) == 0 {
		e.buf.WriteString("export type operations = Record<string, never>;\n")
		return nil
	}
	e.buf.WriteString("export interface operations {\n")
	for _, info := range declared {
		e.buf.WriteString(operationDoc(info.Operation, indentUnit))
		e.printf("%s%s: %s;\n", indentUnit, naming.PropertyKey(info.Operation.OperationID), e.operationExpr(info, indentUnit))
	}
	e.buf.WriteString("}\n")
	return nil
}

func operationDoc(op *parser.Operation, indent string) string {
	return jsDoc(&parser.Schema{Description: firstNonEmpty(op.Summary, op.Description), Deprecated: op.Deprecated}, indent)
}

// operationExpr renders the parameters, requestBody, and responses of an operation.
func (e *emitter) operationExpr(info *walker.OperationInfo, indent string) string {
	inner := indent + indentUnit
	var b strings.Builder
	b.WriteString("{\n")

	params, body := e.operationParameters(info)
	if block := e.parametersExpr(params, inner); block != "" {
		fmt.Fprintf(&b, "%sparameters: %s;\n", inner, block)
	}

	if rb := e.requestBody(info.Operation, body); rb != nil {
		opt := "?"
		if rb.Required {
			opt = ""
		}
		fmt.Fprintf(&b, "%srequestBody%s: %s;\n", inner, opt, e.contentExpr(rb.Content, inner))
	}

	fmt.Fprintf(&b, "%sresponses: %s;\n", inner, e.responsesExpr(info.Operation.Responses, inner))
	b.WriteString(indent + "}")
	return b.String()
}

// operationParameters merges path-level and operation-level parameters,
// operation-level ones overriding by name and location. An OAS 2.0 body
// parameter is returned separately.
func (e *emitter) operationParameters(info *walker.OperationInfo) ([]*parser.Parameter, *parser.Parameter) {
	var merged []*parser.Parameter
	index := make(map[string]int)
	var body *parser.Parameter

	add := func(list []*parser.Parameter) {
		for _, p := range list {
			p = e.resolveParameter(p)
			if p == nil {
				continue
			}
			switch p.In {
			case "body":
				body = p
				continue
			case "formData":
				e.log.Debug("skipping formData parameter", "name", p.Name)
				continue
			}
			key := p.In + "\x00" + p.Name
			if i, ok := index[key]; ok {
				merged[i] = p
				continue
			}
			index[key] = len(merged)
			merged = append(merged, p)
		}
	}
	if item := e.doc.Paths[info.PathTemplate]; item != nil {
		add(item.Parameters)
	}
	add(info.Operation.Parameters)
	return merged, body
}

func (e *emitter) resolveParameter(p *parser.Parameter) *parser.Parameter {
	if p == nil || p.Ref == "" {
		return p
	}
	resolved, ok := e.doc.LookupParameter(p.Ref)
	if !ok {
		return nil
	}
	return resolved
}

func (e *emitter) parametersExpr(params []*parser.Parameter, indent string) string {
	if len(params) == 0 {
		return ""
	}
	groups := make(map[string][]*parser.Parameter)
	for _, p := range params {
		groups[p.In] = append(groups[p.In], p)
	}

	inner := indent + indentUnit
	var b strings.Builder
	b.WriteString("{\n")
	for _, in := range parameterLocations {
		group := groups[in]
		if len(group) == 0 {
			continue
		}
		required := in == "path"
		for _, p := range group {
			required = required || p.Required
		}
		opt := "?"
		if required {
			opt = ""
		}
		fmt.Fprintf(&b, "%s%s%s: {\n", inner, in, opt)
		for _, p := range group {
			b.WriteString(jsDoc(&parser.Schema{Description: p.Description, Deprecated: p.Deprecated}, inner+indentUnit))
			popt := "?"
			if p.Required || in == "path" {
				popt = ""
			}
			fmt.Fprintf(&b, "%s%s%s: %s;\n", inner+indentUnit, naming.PropertyKey(p.Name), popt,
				e.typeExpr(p.EffectiveSchema(), inner+indentUnit))
		}
		b.WriteString(inner + "};\n")
	}
	b.WriteString(indent + "}")
	return b.String()
}

// requestBody returns the request body of op, synthesizing one from an
// OAS 2.0 body parameter.
func (e *emitter) requestBody(op *parser.Operation, body *parser.Parameter) *parser.RequestBody {
	if rb := op.RequestBody; rb != nil {
		if rb.Ref != "" {
			resolved, ok := e.doc.LookupRequestBody(rb.Ref)
			if !ok {
				return nil
			}
			return resolved
		}
		return rb
	}
	if body != nil {
		return &parser.RequestBody{
			Required: body.Required,
			Content:  map[string]*parser.MediaType{"application/json": {Schema: body.Schema}},
		}
	}
	return nil
}

func (e *emitter) contentExpr(content map[string]*parser.MediaType, indent string) string {
	inner := indent + indentUnit
	var b strings.Builder
	b.WriteString("{\n")
	if len(content) == 0 {
		fmt.Fprintf(&b, "%scontent: Record<string, never>;\n", inner)
	} else {
		fmt.Fprintf(&b, "%scontent: {\n", inner)
		for _, mt := range sortedKeys(content) {
			var schema *parser.Schema
			if media := content[mt]; media != nil {
				schema = media.Schema
			}
			fmt.Fprintf(&b, "%s%s: %s;\n", inner+indentUnit, strconv.Quote(mt), e.typeExpr(schema, inner+indentUnit))
		}
		fmt.Fprintf(&b, "%s};\n", inner)
	}
	b.WriteString(indent + "}")
	return b.String()
}

func (e *emitter) responsesExpr(responses map[string]*parser.Response, indent string) string {
	codes := make([]string, 0, len(responses))
	for code := range responses {
		if !parser.IsValidStatusCode(code) {
			e.log.Warn("skipping response with invalid status code", "code", code)
			continue
		}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return "never"
	}
	sort.Slice(codes, func(i, j int) bool {
		if codes[i] == "default" || codes[j] == "default" {
			return codes[j] == "default" && codes[i] != "default"
		}
		return codes[i] < codes[j]
	})

	inner := indent + indentUnit
	var b strings.Builder
	b.WriteString("{\n")
	for _, code := range codes {
		resp := e.resolveResponse(responses[code])
		key := code
		if strings.HasSuffix(code, "XX") {
			key = strconv.Quote(code)
		}
		if resp == nil {
			fmt.Fprintf(&b, "%s%s: unknown;\n", inner, key)
			continue
		}
		b.WriteString(jsDoc(&parser.Schema{Description: resp.Description}, inner))
		content := resp.Content
		if len(content) == 0 && resp.Schema != nil {
			content = map[string]*parser.MediaType{"application/json": {Schema: resp.Schema}}
		}
		if len(content) == 0 {
			fmt.Fprintf(&b, "%s%s: never;\n", inner, key)
			continue
		}
		fmt.Fprintf(&b, "%s%s: %s;\n", inner, key, e.contentExpr(content, inner))
	}
	b.WriteString(indent + "}")
	return b.String()
}

func (e *emitter) resolveResponse(resp *parser.Response) *parser.Response {
	if resp == nil || resp.Ref == "" {
		return resp
	}
	resolved, ok := e.doc.LookupResponse(resp.Ref)
	if !ok {
		return nil
	}
	return resolved
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
