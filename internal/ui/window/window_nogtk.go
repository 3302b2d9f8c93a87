//go:build !gtk

package window

// Available reports whether Show can open windows.
func Available() bool { return false }

// Show would open one window per image: without GTK support it only returns ErrUnavailable.
func Show(title string, imagePaths ...string) error {
	return ErrUnavailable
}
