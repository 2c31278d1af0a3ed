package calci

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// ErrorKind is one of the three fatal diagnostic kinds Calci can
// report. The set is closed.
type ErrorKind string

const (
	IOError    ErrorKind = "IOError"
	LexError   ErrorKind = "LexError"
	ParseError ErrorKind = "ParseError"
)

// phaseName returns the phase label used in the "Calci - <Phase> Error:"
// line.
func (k ErrorKind) phaseName() string {
	switch k {
	case IOError:
		return "IO"
	case LexError:
		return "Lex"
	case ParseError:
		return "Parse"
	default:
		return string(k)
	}
}

// Diagnostic is a fatal compiler error. It satisfies the error
// interface so it can be wrapped or inspected in tests, but production
// code never propagates it as an error: the Parser (for the Lexer's and
// its own diagnostics) and ReportIOError call Report on it, which
// terminates the process. There is no local recovery from a Diagnostic.
type Diagnostic struct {
	Kind       ErrorKind
	Message    string
	Line       int    // 1-based; zero for IOError, which has no source line.
	SourceLine string // empty for IOError.
	cause      error
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

func (d *Diagnostic) Unwrap() error {
	return d.cause
}

// Report writes the diagnostic to stderr and terminates the process
// with a nonzero status. It never returns.
func (d *Diagnostic) Report() {
	fmt.Fprintf(os.Stderr, "Calci - %s Error:\n", d.Kind.phaseName())
	fmt.Fprintf(os.Stderr, "\t%s : %s\n", d.Kind, d.Message)

	if d.Kind != IOError {
		fmt.Fprintln(os.Stderr, d.SourceLine)
		fmt.Fprintf(os.Stderr, "(line %d)\n", d.Line)
	}

	os.Exit(1)
}

// newIOError wraps an underlying I/O failure (typically from os.Open)
// into a Diagnostic. The cause is preserved via github.com/pkg/errors
// so callers that care can still inspect it.
func newIOError(message string, cause error) *Diagnostic {
	return &Diagnostic{
		Kind:    IOError,
		Message: errors.Wrap(cause, message).Error(),
		cause:   cause,
	}
}

// newLexError builds a LexError diagnostic for the given source line.
func newLexError(message string, line int, sourceLine string) *Diagnostic {
	return &Diagnostic{
		Kind:       LexError,
		Message:    message,
		Line:       line,
		SourceLine: sourceLine,
	}
}

// newParseError builds a ParseError diagnostic for the given source line.
func newParseError(message string, line int, sourceLine string) *Diagnostic {
	return &Diagnostic{
		Kind:       ParseError,
		Message:    message,
		Line:       line,
		SourceLine: sourceLine,
	}
}
