package scan

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

var (
	stdin     *Reader
	stdinOnce sync.Once
)

func NewReader(r io.Reader) *Reader {
	return &Reader{
		Reader: bufio.NewReader(r),
	}
}

// Stdin returns the reader shared by every caller consuming os.Stdin. Two
// buffered readers over the same descriptor would split lines between them.
func Stdin() *Reader {
	stdinOnce.Do(func() {
		stdin = NewReader(os.Stdin)
	})
	return stdin
}

func (r *Reader) SetLogger(logger Logger) {
	r.logger = logger
}

// Line reads up to and including the next '\n' and returns the text with the
// terminator and surrounding whitespace removed. A last line without a
// terminator is still returned; a stream with nothing left is EndOfInput.
func (r *Reader) Line() (string, error) {
	raw, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(raw) > 0) {
		if errors.Is(err, io.EOF) {
			err = errors.Wrap(err, "no line left to read")
		} else {
			err = errors.Wrap(err, "Line error reading from stream")
		}
		return "", &Error{
			Kind:  EndOfInput,
			Index: -1,
			Err:   err,
		}
	}
	if r.logger != nil {
		r.logger.Printf("read line %q", raw)
	}
	return strings.TrimSpace(raw), nil
}

func (r *Reader) mustLine() string {
	line, err := r.Line()
	if err != nil {
		panic(err)
	}
	return line
}
