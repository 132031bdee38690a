package programs

import (
	"io"
	"os"
)

// Output receives usages and shell replies.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

// lazyFile creates its file on the first write, so that failed parses leave
// nothing behind.
type lazyFile struct {
	path string
	file *os.File
}

func (l *lazyFile) Write(p []byte) (int, error) {
	if l.file == nil {
		f, err := os.Create(l.path)
		if err != nil {
			return 0, wrap(err)
		}
		l.file = f
	}
	return l.file.Write(p)
}

func (l *lazyFile) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
