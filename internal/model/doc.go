package model

// Package model defines the values exchanged between the caption session and
// its presentation layers: the (image, caption, status) pair, the clear
// result, and the status message catalogue. Values are plain structs meant to
// be rendered verbatim by the UI.
