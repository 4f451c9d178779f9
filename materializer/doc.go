// Package materializer writes the composed output to disk.
//
// Two files are produced: the models file, holding the composed output
// verbatim, and the index file, which starts with a re-export block for the
// types named in a [Manifest]:
//
//	// Re-exported named types for better DX
//	export type {
//	  Note,
//	  CreateNoteRequest
//	} from './models';
//
// In [IndexModeDuplicate] (the default) the composed output follows the
// header; in [IndexModeReExportOnly] the header stands alone.
//
// Parent directories are created as needed. With atomic writes enabled (the
// default) both files are staged as temporaries in their target directories
// and renamed into place once both are fully written, so a failed run leaves
// earlier outputs untouched.
package materializer
