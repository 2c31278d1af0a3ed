// Package calcitest generates random but lexically valid Calci token
// streams for exercising the lexer's peek/advance invariants: a flat,
// semicolon-delimited list of valid surface tokens, sampled with
// replacement and joined by a caller-supplied separator.
package calcitest

import (
	"math/rand"
	"strings"
)

const validTokens = "let;var;if;then;elsif;else;end;while;repeat;for;to;by;do;" +
	"input;print;println;fprint;nat;int;real;str;" +
	"x;y;ctr;total;n;" +
	"123;0;42;3.14;" +
	"\"a string\";\"\";" +
	"+;-;*;/;%;:=;:;=;!=;<;<=;>;>=;" +
	"# a trailing comment\n;\n"

// GetRandomTokens returns size space-separated tokens drawn from
// Calci's surface vocabulary.
func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

// GetRandomTokensWithSep returns size tokens drawn from Calci's surface
// vocabulary, joined by sep.
func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, ";")

	toks := make([]string, 0, size)
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}
