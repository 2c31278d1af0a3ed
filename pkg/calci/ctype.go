package calci

// cType returns the C type used for a declaration site of the given
// TypeTag. STR maps to a fixed 100-byte buffer with no bounds
// enforcement at the Calci level — C itself enforces nothing further,
// so an INPUT of a string longer than 99 bytes plus NUL overruns
// the buffer. A length-checked alternative is future work.
func cType(tag TypeTag) string {
	switch tag {
	case TagNat:
		return "unsigned int"
	case TagInt:
		return "int"
	case TagReal:
		return "double"
	case TagStr:
		return "char[100]"
	default:
		return "int"
	}
}

// scanFormat returns the scanf format specifier used by an INPUT
// statement for the given TypeTag.
func scanFormat(tag TypeTag) string {
	switch tag {
	case TagNat, TagInt:
		return "%d"
	case TagReal:
		return "%lf"
	case TagStr:
		return `%[^\n]%*c`
	default:
		return "%d"
	}
}

// printFormatForToken derives the printf format specifier for a
// PRINT/PRINTLN of an expression from the *text of the token at
// the point of dispatch* — the first token of the expression — rather
// than from a type analysis. This is a bug-for-bug translation of the
// original format-derivation rule: PRINT 3.14 selects "%s" (the
// default branch), not "%lf", because "3.14" isn't one of the three
// recognized type-name spellings. Kept intentionally rather than
// "fixed" into a real type check.
func printFormatForToken(text string) string {
	switch text {
	case "nat", "int":
		return "%d"
	case "real":
		return "%lf"
	default:
		return "%s"
	}
}
