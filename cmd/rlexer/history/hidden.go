//go:build !windows

package history

// setHidden is a no-op, the leading dot already hides the file.
func setHidden(path string) error {
	return nil
}
