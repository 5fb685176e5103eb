package statusbar

// GetHints returns the keybinding hints shown in the status bar
func GetHints() string {
	return "e: error toast  i: info toast  r: rebind  x: dismiss  q: quit"
}
