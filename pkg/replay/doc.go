// Package replay drives a drawing tool through a scripted sequence of
// pointer events.
//
// A script names the tool, its pose, the drawing color and a list of steps:
//
//	{
//	  "tool": "template",
//	  "color": "#c0392b",
//	  "pose": {"left_arm": 30, "right_arm": 60},
//	  "steps": [
//	    {"kind": "move", "x": 100, "y": 200},
//	    {"kind": "press", "x": 100, "y": 200},
//	    {"kind": "release", "x": 100, "y": 200}
//	  ]
//	}
//
// The same shape is accepted as TOML, with steps as [[step]] tables.
//
// # Steps
//
// Each step has a kind (press, move, release or leave) and canvas
// coordinates. Steps may set "gate" to close the drawing gate and "drag" to
// pass an explicit drag anchor to a move. Without "drag", the runner keeps
// the anchor the way a host does: set on press, dropped on release.
//
// # Running
//
// [Run] builds a host from recording layers, dispatches every step and
// returns the transient layer after each one. The last frame is what a
// host would show on screen.
package replay
