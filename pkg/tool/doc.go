// Package tool binds the figure geometry to a host's pointer events.
//
// A host (canvas editor, test harness, preview window) constructs a tool
// with the collaborators it owns, bundled in [Host], registers it, and
// dispatches pointer events to the functions in [Tool.Handlers]. The tool
// never owns the drawing surfaces: it draws previews and stamps on the
// transient layer the host handed it, and the host decides when to commit
// that layer to its history.
//
// Two tools ship:
//   - [Stamp] stamps a figure on press and previews on move.
//   - [Pose] exposes the same geometry with a keyframe pair and inert
//     handlers, for hosts that sequence poses themselves.
//
// Handlers run synchronously inside one host event callback and are not
// safe for concurrent use; hosts deliver one event at a time.
package tool
