// Package viz provides the bubbletea frontend and lipgloss output helpers.
//
// The package runs the same simulator as the tcell frame loop, driven by
// tick messages instead of a sleep:
//
//   - [Model]: bubbletea model stepping a [sim.Simulator] into a frame
//   - [FrameView]: colored rendering of an in-memory frame
//   - [Swatch]: palette preview for the palette command
//
// # Key Bindings
//
//	q      - Quit
//	Esc    - Quit
//	Ctrl+C - Quit
package viz
