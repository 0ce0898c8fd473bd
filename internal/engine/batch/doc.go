// Package batch runs a fixed set of content generation tasks against an
// external generation service and tracks their progress.
//
// A run is built from an immutable Plan: the Cartesian product of the selected
// topics and the enabled content types, topics in the outer loop and content
// types in canonical order in the inner loop. Key properties:
//   - Tasks execute strictly one at a time, so at most one request is in flight
//   - A failing task is logged and counted but never aborts the run
//   - Progress is published after every task, before the next one starts
//   - Cancellation is cooperative and checked between tasks
//
// The orchestrator is generic over the result type; it never inspects what the
// request function returns.
package batch
