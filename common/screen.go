package common

// Logical screen size; the window is scaled to it.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)
