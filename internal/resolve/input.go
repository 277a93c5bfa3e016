package resolve

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// InputSource supplies operator responses one line at a time. Returning
// an error (io.EOF included) ends the session cleanly.
type InputSource interface {
	NextLine() (string, error)
}

// LineReader pulls whitespace-trimmed lines from a stream, typically
// stdin.
type LineReader struct {
	reader *bufio.Reader
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReader(r)}
}

func (l *LineReader) NextLine() (string, error) {
	line, err := l.reader.ReadString('\n')
	if err != nil {
		// A final line without a newline still counts as a response.
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Lines is a scripted InputSource for tests and non-interactive runs.
type Lines struct {
	lines []string
	next  int
}

func NewLines(lines ...string) *Lines {
	return &Lines{lines: lines}
}

func (s *Lines) NextLine() (string, error) {
	if s.next >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.next]
	s.next++
	return strings.TrimSpace(line), nil
}
