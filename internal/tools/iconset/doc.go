// Package iconset turns one source picture into the square PNG icons a
// browser extension manifest references.
//
// The pipeline is fixed: near-white pixels are keyed to transparent, the
// transparent margin is trimmed, and the result is scaled into each canvas
// size so that it fills at most 84% of the canvas, centered. The trimmed
// image is also written as icon_master.png.
package iconset
