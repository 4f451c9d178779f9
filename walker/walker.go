package walker

import (
	"context"
	"fmt"
	"sort"

	"github.com/erraggy/dtogen/parser"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// SchemaHandler is called for every schema, named or inline.
type SchemaHandler func(wc *WalkContext, schema *parser.Schema) Action

// OperationHandler is called for every operation under paths.
type OperationHandler func(wc *WalkContext, op *parser.Operation) Action

// DefaultMaxSchemaDepth bounds schema nesting during traversal.
const DefaultMaxSchemaDepth = 100

// Walker traverses a parsed document and calls handlers for each node type.
type Walker struct {
	onSchema    SchemaHandler
	onOperation OperationHandler
	onRef       RefHandler

	maxDepth int
	ctx      context.Context

	stopped bool
}

// Option configures the Walker.
type Option func(*Walker)

// WithSchemaHandler sets the handler for Schema objects.
func WithSchemaHandler(fn SchemaHandler) Option {
	return func(w *Walker) { w.onSchema = fn }
}

// WithOperationHandler sets the handler for Operation objects.
func WithOperationHandler(fn OperationHandler) Option {
	return func(w *Walker) { w.onOperation = fn }
}

// WithRefHandler sets the handler called for every $ref encountered.
func WithRefHandler(fn RefHandler) Option {
	return func(w *Walker) { w.onRef = fn }
}

// WithMaxSchemaDepth sets the maximum schema nesting depth.
// Values of zero or less keep the default.
func WithMaxSchemaDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}

// WithContext sets the context handed to handlers through WalkContext.
// The walk stops with the context's error once it is done.
func WithContext(ctx context.Context) Option {
	return func(w *Walker) { w.ctx = ctx }
}

// Walk traverses the document of result and calls the configured handlers.
func Walk(result *parser.ParseResult, opts ...Option) error {
	if result == nil || result.Document == nil {
		return fmt.Errorf("walker: nil parse result")
	}
	w := &Walker{maxDepth: DefaultMaxSchemaDepth, ctx: context.Background()}
	for _, opt := range opts {
		opt(w)
	}
	return w.walkDocument(result.Document)
}

func (w *Walker) walkDocument(doc *parser.Document) error {
	prefix := "$.components.schemas"
	if doc.OASVersion == parser.OASVersion20 {
		prefix = "$.definitions"
	}

	schemas := doc.Schemas()
	for _, name := range doc.SchemaNames() {
		if err := w.check(); err != nil || w.stopped {
			return err
		}
		wc := &WalkContext{
			JSONPath:    fmt.Sprintf("%s['%s']", prefix, name),
			Name:        name,
			IsComponent: true,
			ctx:         w.ctx,
		}
		w.walkSchema(schemas[name], wc, 0)
	}

	if err := w.walkComponents(doc); err != nil || w.stopped {
		return err
	}

	for _, tmpl := range sortedKeys(doc.Paths) {
		if err := w.check(); err != nil || w.stopped {
			return err
		}
		w.walkPathItem(tmpl, doc.Paths[tmpl])
	}
	return w.check()
}

// walkComponents visits reusable parameters, request bodies, and responses.
func (w *Walker) walkComponents(doc *parser.Document) error {
	var params map[string]*parser.Parameter
	var responses map[string]*parser.Response
	var bodies map[string]*parser.RequestBody
	base := "$.components"
	if doc.OASVersion == parser.OASVersion20 {
		params, responses, base = doc.Parameters, doc.Responses, "$"
	} else if doc.Components != nil {
		params, responses, bodies = doc.Components.Parameters, doc.Components.Responses, doc.Components.RequestBodies
	}

	for _, name := range sortedKeys(params) {
		w.walkParameter(params[name], &WalkContext{
			JSONPath: fmt.Sprintf("%s.parameters['%s']", base, name), Name: name, IsComponent: true, ctx: w.ctx,
		})
	}
	for _, name := range sortedKeys(bodies) {
		w.walkRequestBody(bodies[name], &WalkContext{
			JSONPath: fmt.Sprintf("%s.requestBodies['%s']", base, name), Name: name, IsComponent: true, ctx: w.ctx,
		})
	}
	for _, name := range sortedKeys(responses) {
		w.walkResponse(responses[name], &WalkContext{
			JSONPath: fmt.Sprintf("%s.responses['%s']", base, name), Name: name, IsComponent: true, ctx: w.ctx,
		})
	}
	return w.check()
}

func (w *Walker) walkPathItem(tmpl string, item *parser.PathItem) {
	if item == nil {
		return
	}
	base := fmt.Sprintf("$.paths['%s']", tmpl)
	if w.handleRef(item.Ref, RefNodePathItem, &WalkContext{JSONPath: base, PathTemplate: tmpl, ctx: w.ctx}) == Stop {
		return
	}
	for i, p := range item.Parameters {
		w.walkParameter(p, &WalkContext{
			JSONPath: fmt.Sprintf("%s.parameters[%d]", base, i), PathTemplate: tmpl, ctx: w.ctx,
		})
	}
	for _, mo := range item.Operations() {
		if w.stopped {
			return
		}
		wc := &WalkContext{
			JSONPath:     base + "." + mo.Method,
			PathTemplate: tmpl,
			Method:       mo.Method,
			ctx:          w.ctx,
		}
		w.walkOperation(mo.Operation, wc)
	}
}

func (w *Walker) walkOperation(op *parser.Operation, wc *WalkContext) {
	if w.onOperation != nil {
		if !w.handleAction(w.onOperation(wc, op)) {
			return
		}
	}
	for i, p := range op.Parameters {
		w.walkParameter(p, wc.child(fmt.Sprintf("%s.parameters[%d]", wc.JSONPath, i), ""))
	}
	if op.RequestBody != nil {
		w.walkRequestBody(op.RequestBody, wc.child(wc.JSONPath+".requestBody", ""))
	}
	for _, code := range sortedKeys(op.Responses) {
		rc := wc.child(fmt.Sprintf("%s.responses['%s']", wc.JSONPath, code), "")
		rc.StatusCode = code
		w.walkResponse(op.Responses[code], rc)
	}
}

func (w *Walker) walkParameter(p *parser.Parameter, wc *WalkContext) {
	if p == nil || w.stopped {
		return
	}
	if p.Ref != "" {
		w.handleRef(p.Ref, RefNodeParameter, wc)
		return
	}
	if s := p.Schema; s != nil {
		w.walkSchema(s, wc.child(wc.JSONPath+".schema", ""), 0)
	}
	if p.Items != nil {
		w.walkSchema(p.Items, wc.child(wc.JSONPath+".items", ""), 0)
	}
}

func (w *Walker) walkRequestBody(rb *parser.RequestBody, wc *WalkContext) {
	if rb == nil || w.stopped {
		return
	}
	if rb.Ref != "" {
		w.handleRef(rb.Ref, RefNodeRequestBody, wc)
		return
	}
	w.walkContent(rb.Content, wc)
}

func (w *Walker) walkResponse(resp *parser.Response, wc *WalkContext) {
	if resp == nil || w.stopped {
		return
	}
	if resp.Ref != "" {
		w.handleRef(resp.Ref, RefNodeResponse, wc)
		return
	}
	if resp.Schema != nil {
		w.walkSchema(resp.Schema, wc.child(wc.JSONPath+".schema", ""), 0)
	}
	w.walkContent(resp.Content, wc)
}

func (w *Walker) walkContent(content map[string]*parser.MediaType, wc *WalkContext) {
	for _, mt := range sortedKeys(content) {
		if media := content[mt]; media != nil && media.Schema != nil {
			w.walkSchema(media.Schema, wc.child(fmt.Sprintf("%s.content['%s'].schema", wc.JSONPath, mt), ""), 0)
		}
	}
}

// walkSchema walks a Schema and all its nested schemas.
func (w *Walker) walkSchema(schema *parser.Schema, wc *WalkContext, depth int) {
	if schema == nil || w.stopped || depth > w.maxDepth {
		return
	}

	if w.handleRef(schema.Ref, RefNodeSchema, wc) == Stop {
		return
	}

	if w.onSchema != nil {
		if !w.handleAction(w.onSchema(wc, schema)) {
			return
		}
	}

	for _, prop := range schema.Properties {
		w.walkSchema(prop.Schema, wc.child(fmt.Sprintf("%s.properties['%s']", wc.JSONPath, prop.Name), prop.Name), depth+1)
	}
	if ap := schema.AdditionalProperties; ap != nil && ap.Schema != nil {
		w.walkSchema(ap.Schema, wc.child(wc.JSONPath+".additionalProperties", ""), depth+1)
	}
	if schema.Items != nil {
		w.walkSchema(schema.Items, wc.child(wc.JSONPath+".items", ""), depth+1)
	}
	w.walkSchemaList("allOf", schema.AllOf, wc, depth)
	w.walkSchemaList("anyOf", schema.AnyOf, wc, depth)
	w.walkSchemaList("oneOf", schema.OneOf, wc, depth)
}

func (w *Walker) walkSchemaList(keyword string, list []*parser.Schema, wc *WalkContext, depth int) {
	for i, s := range list {
		w.walkSchema(s, wc.child(fmt.Sprintf("%s.%s[%d]", wc.JSONPath, keyword, i), ""), depth+1)
	}
}

// handleRef reports ref to the ref handler when both are set.
func (w *Walker) handleRef(ref string, nodeType RefNodeType, wc *WalkContext) Action {
	if ref == "" || w.onRef == nil || w.stopped {
		return Continue
	}
	action := w.onRef(wc, &RefInfo{Ref: ref, SourcePath: wc.JSONPath, NodeType: nodeType})
	if action == Stop {
		w.stopped = true
	}
	return action
}

// handleAction records Stop and reports whether children should be visited.
func (w *Walker) handleAction(a Action) bool {
	switch a {
	case Stop:
		w.stopped = true
		return false
	case SkipChildren:
		return false
	}
	return true
}

// check returns the context error once the walk context is done.
func (w *Walker) check() error {
	if err := w.ctx.Err(); err != nil {
		w.stopped = true
		return fmt.Errorf("walker: %w", err)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
