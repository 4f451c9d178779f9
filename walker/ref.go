package walker

// RefNodeType identifies the kind of node holding a $ref.
type RefNodeType string

const (
	RefNodeSchema      RefNodeType = "schema"
	RefNodeParameter   RefNodeType = "parameter"
	RefNodeRequestBody RefNodeType = "requestBody"
	RefNodeResponse    RefNodeType = "response"
	RefNodePathItem    RefNodeType = "pathItem"
)

// RefInfo contains information about a $ref encountered during traversal.
type RefInfo struct {
	// Ref is the $ref value (e.g., "#/components/schemas/Note")
	Ref string

	// SourcePath is the JSON path where the ref was encountered
	SourcePath string

	// NodeType is the type of node containing the ref
	NodeType RefNodeType
}

// RefHandler is called when a $ref is encountered during traversal.
// Return Stop to halt traversal, Continue to proceed.
type RefHandler func(wc *WalkContext, ref *RefInfo) Action
