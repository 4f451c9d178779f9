// Package walker provides single-pass traversal of a parsed OpenAPI document.
//
// Handlers receive each node with a [WalkContext] describing where it sits in
// the document and return an [Action] to control traversal:
//
//   - [Continue]: continue traversing children and siblings normally
//   - [SkipChildren]: skip all children of the current node, continue with siblings
//   - [Stop]: stop the entire walk immediately
//
// Named schemas are visited first in name order, then paths in template order
// with operations in canonical method order. Maps are always walked in sorted
// key order so traversal is deterministic.
//
//	var names []string
//	err := walker.Walk(result,
//	    walker.WithSchemaHandler(func(wc *walker.WalkContext, s *parser.Schema) walker.Action {
//	        if wc.IsComponent && wc.Name != "" {
//	            names = append(names, wc.Name)
//	        }
//	        return walker.Continue
//	    }),
//	)
//
// [CheckRefs] builds on the walker to verify that every local $ref resolves.
package walker
