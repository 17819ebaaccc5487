// Package core provides the terminal-facing primitives shared by the editor:
// a colored character screen buffer, the color palette and the runtime
// configuration. It has no Bubble Tea dependency so drawing code stays
// testable.
package core
