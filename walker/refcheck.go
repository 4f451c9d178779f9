package walker

import (
	"context"
	"strings"

	"github.com/erraggy/dtogen/dtoerrors"
	"github.com/erraggy/dtogen/parser"
)

// CheckRefs verifies that every $ref in the document is local and resolves
// to an existing object of the expected kind. The first failure is returned
// as a *dtoerrors.ReferenceError.
func CheckRefs(ctx context.Context, result *parser.ParseResult) error {
	if result == nil || result.Document == nil {
		return &dtoerrors.ReferenceError{Message: "no parsed document"}
	}
	doc := result.Document

	var refErr *dtoerrors.ReferenceError
	err := Walk(result,
		WithContext(ctx),
		WithRefHandler(func(_ *WalkContext, ref *RefInfo) Action {
			if msg := resolveRef(doc, ref); msg != "" {
				refErr = &dtoerrors.ReferenceError{Ref: ref.Ref, Location: ref.SourcePath, Message: msg}
				return Stop
			}
			return Continue
		}),
	)
	if err != nil {
		return err
	}
	if refErr != nil {
		return refErr
	}
	return nil
}

// resolveRef returns an empty string when ref resolves, else the reason it does not.
func resolveRef(doc *parser.Document, ref *RefInfo) string {
	if !strings.HasPrefix(ref.Ref, "#/") {
		return "only local references are supported"
	}
	var ok bool
	switch ref.NodeType {
	case RefNodeSchema:
		_, ok = doc.LookupSchemaRef(ref.Ref)
	case RefNodeParameter:
		_, ok = doc.LookupParameter(ref.Ref)
	case RefNodeRequestBody:
		_, ok = doc.LookupRequestBody(ref.Ref)
	case RefNodeResponse:
		_, ok = doc.LookupResponse(ref.Ref)
	case RefNodePathItem:
		return "path item references are not supported"
	}
	if !ok {
		return "target does not exist"
	}
	return ""
}
