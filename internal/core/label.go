package core

// Label is a line of text shown over a framebuffer by platforms that cannot
// mix text cells with pixels. X and Y are framebuffer pixels: the top-left
// corner, or the top center when Centered is set.
type Label struct {
	X, Y     int
	Text     string
	Color    Color
	Centered bool
}
