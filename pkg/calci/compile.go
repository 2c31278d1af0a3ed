package calci

import "fmt"

// Compile runs the full Lexer → Parser → Emitter pipeline over source
// and writes the resulting C translation unit to outPath. It returns
// only on success or on a non-diagnostic failure (such as being unable
// to write outPath) — any LexError or ParseError is fatal and reported
// directly to stderr by the Parser (which also reports the Lexer's
// diagnostics) before this function could return.
//
// Reading the Calci source file itself is the caller's job; callers
// pass the already-read source text.
func Compile(source, outPath string) error {
	lexer := NewLexer(source)
	em := newEmitter(outPath)
	parser := NewParser(lexer, em)

	parser.Program()

	return em.writeFile()
}

// ReportIOError reports a fatal IOError diagnostic and terminates the
// process. Used by the CLI when the source file cannot be opened.
func ReportIOError(message string, cause error) {
	newIOError(message, cause).Report()
}

// MissingFileMessage formats the standard "cannot open file" IOError
// message for path.
func MissingFileMessage(path string) string {
	return fmt.Sprintf("Cannot open file %s", path)
}
