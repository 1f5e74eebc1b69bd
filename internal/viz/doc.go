// Package viz rasterizes the heart cloud into a terminal.
//
// Points are projected through a perspective [Camera] onto a Braille
// [Canvas], where each character cell holds 2x4 dots and the color of the
// nearest point that landed in it. Styling helpers build on lipgloss.
package viz
