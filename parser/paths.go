package parser

// PathItem describes the operations available on a single path
type PathItem struct {
	Ref         string       `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Summary     string       `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Get         *Operation   `yaml:"get,omitempty" json:"get,omitempty"`
	Put         *Operation   `yaml:"put,omitempty" json:"put,omitempty"`
	Post        *Operation   `yaml:"post,omitempty" json:"post,omitempty"`
	Delete      *Operation   `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options     *Operation   `yaml:"options,omitempty" json:"options,omitempty"`
	Head        *Operation   `yaml:"head,omitempty" json:"head,omitempty"`
	Patch       *Operation   `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace       *Operation   `yaml:"trace,omitempty" json:"trace,omitempty"`
	Parameters  []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// MethodOperation pairs a lowercase HTTP method with its operation.
type MethodOperation struct {
	Method    string
	Operation *Operation
}

// Operations returns the defined operations of the path item in the
// canonical method order (get, put, post, delete, options, head, patch, trace).
func (p *PathItem) Operations() []MethodOperation {
	if p == nil {
		return nil
	}
	candidates := []MethodOperation{
		{"get", p.Get},
		{"put", p.Put},
		{"post", p.Post},
		{"delete", p.Delete},
		{"options", p.Options},
		{"head", p.Head},
		{"patch", p.Patch},
		{"trace", p.Trace},
	}
	ops := make([]MethodOperation, 0, len(candidates))
	for _, c := range candidates {
		if c.Operation != nil {
			ops = append(ops, c)
		}
	}
	return ops
}

// Operation describes a single API operation on a path
type Operation struct {
	OperationID string               `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Summary     string               `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string               `yaml:"description,omitempty" json:"description,omitempty"`
	Tags        []string             `yaml:"tags,omitempty" json:"tags,omitempty"`
	Deprecated  bool                 `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Parameters  []*Parameter         `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody         `yaml:"requestBody,omitempty" json:"requestBody,omitempty"` // OAS 3.0+
	Responses   map[string]*Response `yaml:"responses,omitempty" json:"responses,omitempty"`
}

// Parameter describes a single operation parameter
type Parameter struct {
	Ref         string  `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Name        string  `yaml:"name,omitempty" json:"name,omitempty"`
	In          string  `yaml:"in,omitempty" json:"in,omitempty"` // "query", "header", "path", "cookie", "body" (2.0), "formData" (2.0)
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool    `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool    `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`

	// OAS 2.0 non-body parameters carry their type inline
	Type   string  `yaml:"type,omitempty" json:"type,omitempty"`
	Format string  `yaml:"format,omitempty" json:"format,omitempty"`
	Items  *Schema `yaml:"items,omitempty" json:"items,omitempty"`
	Enum   []any   `yaml:"enum,omitempty" json:"enum,omitempty"`
}

// EffectiveSchema returns the schema describing the parameter value,
// synthesizing one from the inline OAS 2.0 type fields when needed.
func (p *Parameter) EffectiveSchema() *Schema {
	if p == nil {
		return nil
	}
	if p.Schema != nil {
		return p.Schema
	}
	if p.Type == "" {
		return nil
	}
	return &Schema{Type: p.Type, Format: p.Format, Items: p.Items, Enum: p.Enum}
}

// RequestBody describes a single request body (OAS 3.0+)
type RequestBody struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
}

// Response describes a single response from an API Operation
type Response struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"` // OAS 3.0+
	Schema      *Schema               `yaml:"schema,omitempty" json:"schema,omitempty"`   // OAS 2.0
}

// MediaType provides schema for a media type (OAS 3.0+)
type MediaType struct {
	Schema *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// IsValidStatusCode reports whether code is a response key the translator
// understands: "default", a numeric HTTP status, or a wildcard like "2XX".
func IsValidStatusCode(code string) bool {
	if code == "default" {
		return true
	}
	if len(code) != 3 || code[0] < '1' || code[0] > '5' {
		return false
	}
	if code[1:] == "XX" {
		return true
	}
	for _, c := range code[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
