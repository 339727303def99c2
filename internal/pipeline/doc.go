// Package pipeline turns command-line inputs into renamed files and a
// summary report.
//
// Flow:
//   - Expand each input (glob or literal) into a flat file list, walking
//     directories depth-first with an explicit stack. Inputs expand in
//     parallel.
//   - De-duplicate the combined list so each file is processed once, even
//     when inputs overlap.
//   - Dispatch files to a bounded errgroup of workers. Each worker runs a
//     rename.Processor; the only shared state is the naming.Guard.
//   - Collect one outcome per processed file, log it, and print the summary.
//
// Per-file failures never stop the run. Cancelling the context stops new
// files from being dispatched; renames already running finish.
package pipeline
