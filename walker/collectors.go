package walker

import "github.com/erraggy/dtogen/parser"

// SchemaInfo contains information about a collected schema.
type SchemaInfo struct {
	// Schema is the collected schema.
	Schema *parser.Schema

	// Name is the schema name for named schemas.
	// Empty for inline schemas.
	Name string

	// JSONPath is the full JSON path to the schema.
	JSONPath string

	// IsComponent is true when the schema is defined in components/definitions.
	IsComponent bool
}

// SchemaCollector holds schemas collected during a walk.
type SchemaCollector struct {
	// All contains all schemas in traversal order.
	All []*SchemaInfo

	// Named contains only the top-level named schemas, in name order.
	Named []*SchemaInfo

	// ByPath provides lookup by JSON path.
	ByPath map[string]*SchemaInfo
}

// CollectSchemas walks the document and collects all schemas.
func CollectSchemas(result *parser.ParseResult) (*SchemaCollector, error) {
	collector := &SchemaCollector{
		All:    make([]*SchemaInfo, 0),
		Named:  make([]*SchemaInfo, 0),
		ByPath: make(map[string]*SchemaInfo),
	}
	named := make(map[*parser.Schema]bool)
	for _, s := range result.Document.Schemas() {
		named[s] = true
	}

	err := Walk(result,
		WithSchemaHandler(func(wc *WalkContext, schema *parser.Schema) Action {
			info := &SchemaInfo{
				Schema:      schema,
				Name:        wc.Name,
				JSONPath:    wc.JSONPath,
				IsComponent: wc.IsComponent,
			}
			collector.All = append(collector.All, info)
			collector.ByPath[wc.JSONPath] = info
			if named[schema] && wc.IsComponent && wc.PathTemplate == "" {
				collector.Named = append(collector.Named, info)
			}
			return Continue
		}),
	)
	if err != nil {
		return nil, err
	}
	return collector, nil
}

// OperationInfo contains information about a collected operation.
type OperationInfo struct {
	// Operation is the collected operation.
	Operation *parser.Operation

	// PathTemplate is the URL path template (e.g., "/notes/{id}").
	PathTemplate string

	// Method is the HTTP method (e.g., "get", "post").
	Method string

	// JSONPath is the full JSON path to the operation.
	JSONPath string
}

// CollectOperations walks the document and collects all operations in path
// template order, then canonical method order.
func CollectOperations(result *parser.ParseResult) ([]*OperationInfo, error) {
	var ops []*OperationInfo
	err := Walk(result,
		WithOperationHandler(func(wc *WalkContext, op *parser.Operation) Action {
			ops = append(ops, &OperationInfo{
				Operation:    op,
				PathTemplate: wc.PathTemplate,
				Method:       wc.Method,
				JSONPath:     wc.JSONPath,
			})
			return SkipChildren
		}),
	)
	if err != nil {
		return nil, err
	}
	return ops, nil
}

// CollectRefs walks the document and returns every $ref in traversal order.
func CollectRefs(result *parser.ParseResult) ([]*RefInfo, error) {
	var refs []*RefInfo
	err := Walk(result,
		WithRefHandler(func(_ *WalkContext, ref *RefInfo) Action {
			refs = append(refs, ref)
			return Continue
		}),
	)
	if err != nil {
		return nil, err
	}
	return refs, nil
}
