package history

import (
	"io"
	"os"
	"path/filepath"
)

const historyFile = ".rlexer_history"

// Path returns the full path to the history file. RLEXER_HISTFILE overrides
// the default location in the user's home directory.
func Path() (string, error) {
	if p := os.Getenv("RLEXER_HISTFILE"); p != "" {
		return p, nil
	}
	hdir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(hdir, historyFile), nil
}

// Reader returns a reader of the history file, or nil if it cannot be opened.
func Reader() io.ReadCloser {
	p, err := Path()
	if err != nil {
		return nil
	}
	f, err := os.Open(p)
	if err != nil {
		return nil
	}
	return f
}

// Writer returns a writer for the history file, truncating any existing
// contents. Returns nil if the file cannot be created.
func Writer() io.WriteCloser {
	p, err := Path()
	if err != nil {
		return nil
	}
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return nil
	}
	setHidden(p) // best effort
	return f
}

// Delete deletes the history file.
func Delete() error {
	p, err := Path()
	if err != nil {
		return err
	}
	return os.Remove(p)
}
