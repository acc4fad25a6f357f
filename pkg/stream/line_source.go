package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/barnettben/Datastream/pkg/codec"
)

// MaxLineLength bounds a single physical line. Longer lines fail with
// codec.ErrInvalidLength instead of being buffered.
const MaxLineLength = 64 * 1024

// LineSource reads raw lines from a text stream. An empty line ends the
// stream the same way the end of input does.
type LineSource struct {
	scanner *bufio.Scanner
	line    int
	done    bool
}

// NewLineSource creates a line source over r
func NewLineSource(r io.Reader) *LineSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineLength)
	return &LineSource{scanner: scanner}
}

// Next returns the next line without its terminator, or io.EOF
func (s *LineSource) Next() (string, error) {
	if s.done {
		return "", io.EOF
	}
	if !s.scanner.Scan() {
		s.done = true
		err := s.scanner.Err()
		if errors.Is(err, bufio.ErrTooLong) {
			cerr := codec.NewError(codec.CodeInvalidLength, "",
				"expected %d characters, found more than %d", codec.RecordLength, MaxLineLength)
			cerr.Line = s.line + 1
			return "", cerr
		}
		if err != nil {
			return "", fmt.Errorf("failed to read line %d: %w", s.line+1, err)
		}
		return "", io.EOF
	}
	s.line++
	text := strings.TrimRight(s.scanner.Text(), "\r")
	if text == "" {
		s.done = true
		return "", io.EOF
	}
	return text, nil
}

// Line returns the 1-based number of the last line returned
func (s *LineSource) Line() int {
	return s.line
}
