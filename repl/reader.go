package repl

import (
	"bufio"
	"io"
	"strings"
)

// LineReader yields one line of input per call and returns io.EOF once the
// input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

type bufferedReader struct {
	reader *bufio.Reader
}

// NewLineReader reads newline terminated lines of any length from r. A final
// line without a newline is still returned.
func NewLineReader(r io.Reader) LineReader {
	return &bufferedReader{reader: bufio.NewReader(r)}
}

func (b *bufferedReader) ReadLine() (string, error) {
	line, err := b.reader.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}
