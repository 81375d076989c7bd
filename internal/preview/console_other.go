//go:build !linux

package preview

func setConsoleMode(graphics bool) error  { return nil }
func setCursorVisible(visible bool) error { return nil }
