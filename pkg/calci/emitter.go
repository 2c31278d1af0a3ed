package calci

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// emitter accumulates two ordered text buffers — header and body — and
// flushes their concatenation to a file. It has no syntactic awareness
// of C; correctness of the generated C is the Parser's responsibility.
// The header/body split exists because C requires declarations before
// use, while Calci declarations can appear anywhere in the source.
type emitter struct {
	header strings.Builder
	body   strings.Builder
	path   string
}

func newEmitter(path string) *emitter {
	return &emitter{path: path}
}

// emit appends text to the body buffer.
func (e *emitter) emit(text string) {
	e.body.WriteString(text)
}

// emitLine appends text then a newline to the body buffer.
func (e *emitter) emitLine(text string) {
	e.body.WriteString(text)
	e.body.WriteByte('\n')
}

// headerLine appends text then a newline to the header buffer.
func (e *emitter) headerLine(text string) {
	e.header.WriteString(text)
	e.header.WriteByte('\n')
}

// source returns header ++ body, the exact contents writeFile would
// produce, without touching disk. Used by tests to check golden output.
func (e *emitter) source() string {
	return e.header.String() + e.body.String()
}

// writeFile writes header concatenated with body to e.path in a single
// whole-file replacement. Only called after a successful parse — no
// partial output is ever flushed.
func (e *emitter) writeFile() error {
	if err := os.WriteFile(e.path, []byte(e.source()), 0o644); err != nil {
		return errors.Wrapf(err, "writing generated source to %s", e.path)
	}
	return nil
}
