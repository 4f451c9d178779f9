// Package pipeline wires the loader, translator, composer, and materializer
// into a single generation run.
//
// A run is strictly linear and stops at the first failing stage. In
// particular the translator is never invoked when the spec cannot be loaded,
// and nothing is written unless translation succeeded.
//
//	res, err := pipeline.Run(ctx, pipeline.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	fmt.Println("wrote", res.ModelsPath)
//
// Concurrent runs against the same targets are not coordinated.
package pipeline
