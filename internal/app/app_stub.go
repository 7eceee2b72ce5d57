//go:build !ebiten

package app

func runGUI(*Session) error {
	return ErrNoGUI
}
