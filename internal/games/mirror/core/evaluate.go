package core

// Evaluate reports whether the selected frame is mirrored.
// It trusts the Match flag fixed at creation rather than anything rendered.
func Evaluate(f Frame) bool {
	return f.Match
}
