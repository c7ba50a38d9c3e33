// Package viz renders a drift-diffusion session in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: run/clear loop with parameter sliders
//   - [Canvas]: Braille-based pixel canvas used for trajectories
//   - [RenderPaths]: boundaries plus the most recent trajectories
//   - [RenderHistogram]: mirrored decision time histogram, upper class above
//     the axis and lower class below
//
// # Key Bindings
//
//	r, space - run one trial
//	R        - run ten trials
//	c        - clear all trials
//	j/k      - select parameter
//	h/l      - adjust parameter by one slider step
//	t        - cycle color themes
//	q        - quit
package viz
