package calci

import "fmt"

// Parser drives the Lexer with two-token lookahead, validates grammar,
// scoping and type rules, and instructs the Emitter. It owns the
// symbol table. There is no separate AST: every production calls the
// Emitter directly, since Calci's grammar maps one-to-one onto C
// emission and an intermediate tree would add nothing observable.
type Parser struct {
	lexer *Lexer
	em    *emitter
	syms  *symbolTable

	cur  Token
	peek Token
}

// NewParser constructs a Parser over lexer, emitting generated C into
// em. Two lexer reads prime cur and peek.
func NewParser(lexer *Lexer, em *emitter) *Parser {
	p := &Parser{lexer: lexer, em: em, syms: newSymbolTable()}
	p.cur = p.readToken()
	p.peek = p.readToken()
	return p
}

func (p *Parser) readToken() Token {
	tok, diag := p.lexer.Next()
	if diag != nil {
		diag.Report()
	}
	return tok
}

// advance shifts peek into cur and pulls a new peek from the lexer.
// If the token held in peek before the shift is a NEWLINE, the
// lexer's line counter is incremented first, so diagnostics raised
// against the newly-current token report the line it's on rather than
// the line after it.
func (p *Parser) advance() {
	if p.peek.Type == NEWLINE {
		p.lexer.IncLine()
	}
	p.cur = p.peek
	p.peek = p.readToken()
}

func (p *Parser) check(kind TokenType) bool {
	return p.cur.Type == kind
}

func (p *Parser) checkPeek(kind TokenType) bool {
	return p.peek.Type == kind
}

// match requires cur.Type == kind, aborting with a ParseError
// otherwise, then advances.
func (p *Parser) match(kind TokenType) Token {
	if !p.check(kind) {
		p.abort(fmt.Sprintf("Expected %s, got %s", kind, p.cur.Type))
	}
	tok := p.cur
	p.advance()
	return tok
}

func (p *Parser) abort(message string) {
	line := p.lexer.Line()
	newParseError(message, line, p.lexer.SourceLine(line)).Report()
}

func (p *Parser) isComparisonOp() bool {
	switch p.cur.Type {
	case GT, GTEQ, LT, LTEQ, EQ, NOTEQ:
		return true
	default:
		return false
	}
}

func (p *Parser) isType() bool {
	_, ok := typeTagFor(p.cur.Type)
	return ok
}

// requireDeclared aborts with a ParseError if name was never declared.
func (p *Parser) requireDeclared(name string) {
	if !p.syms.isDeclared(name) {
		p.abort(fmt.Sprintf("Referencing variable before declaration: %s", name))
	}
}

// Program drives the lexer to EOF, emitting a complete, compilable C
// translation unit into the Emitter. It terminates compilation with a
// diagnostic (which exits the process) on any rule violation; there is
// no recovery. Returns only on success.
func (p *Parser) Program() {
	p.em.headerLine("#include <stdio.h>")
	p.em.headerLine("int main(void){")

	for p.check(NEWLINE) {
		p.advance()
	}

	for !p.check(EOF) {
		p.statement()
	}

	p.em.emitLine("return 0;")
	p.em.emitLine("}")
}

// nl matches one or more NEWLINE tokens.
func (p *Parser) nl() {
	p.match(NEWLINE)
	for p.check(NEWLINE) {
		p.advance()
	}
}

func (p *Parser) statement() {
	switch p.cur.Type {
	case PRINT:
		p.printStmt(false)
	case PRINTLN:
		p.printStmt(true)
	case FPRINT:
		p.fprintStmt()
	case INPUT:
		p.inputStmt()
	case VAR:
		p.assignStmt()
	case LET:
		p.declStmt()
	case IF:
		p.ifStmt()
	case WHILE:
		p.whileStmt()
	case FOR:
		p.forStmt()
	default:
		p.abort(fmt.Sprintf("Invalid statement at %s (%s)", p.cur.Text, p.cur.Type))
	}

	p.nl()
}

// printStmt parses PRINT|PRINTLN ( STRING | expression ). When println
// is true an additional printf("\n"); is emitted.
func (p *Parser) printStmt(println bool) {
	p.advance() // PRINT or PRINTLN

	if p.check(STRING) {
		p.em.emitLine(fmt.Sprintf("printf(\"%s\");", p.cur.Text))
		p.advance()
	} else {
		// The format specifier is derived from the text of the token at
		// this point of dispatch, not from any type analysis — see
		// ctype.go's printFormatForToken.
		format := printFormatForToken(p.cur.Text)
		p.em.emit(fmt.Sprintf("printf(\"%s\",", format))
		p.expression()
		p.em.emitLine(");")
	}

	if println {
		p.em.emitLine(`printf("\n");`)
	}
}

// fprintStmt parses:
//
//	fprint_stmt = "FPRINT" , STRING , { IDENT } , NEWLINE
//
// Emits a printf call with the given format string followed by the
// trailing identifiers as its arguments, each of which must already be
// declared.
func (p *Parser) fprintStmt() {
	p.advance() // FPRINT

	format := p.match(STRING)
	p.em.emit(fmt.Sprintf("printf(\"%s\"", format.Text))

	for !p.check(NEWLINE) {
		name := p.cur.Text
		p.requireDeclared(name)
		p.match(IDENTIFIER)
		p.em.emit(fmt.Sprintf(", %s", name))
	}

	p.em.emitLine(");")
}

// inputStmt parses INPUT type_tag IDENT.
func (p *Parser) inputStmt() {
	p.advance() // INPUT

	if !p.isType() {
		p.abort(fmt.Sprintf("Expected type name at: %s", p.cur.Text))
	}
	tag, _ := typeTagFor(p.cur.Type)
	p.advance()

	name := p.cur.Text
	p.requireDeclared(name)
	p.match(IDENTIFIER)

	p.em.emitLine(fmt.Sprintf("scanf(\"%s\", &%s);", scanFormat(tag), name))
}

// assignStmt parses VAR IDENT := expression.
func (p *Parser) assignStmt() {
	p.advance() // VAR

	name := p.cur.Text
	p.requireDeclared(name)
	p.match(IDENTIFIER)
	p.match(COLONEQ)

	p.em.emit(name + " = ")
	p.expression()
	p.em.emitLine(";")
}

// declStmt parses LET IDENT { IDENT } : type_tag.
func (p *Parser) declStmt() {
	p.advance() // LET

	var names []string
	for !p.check(COLON) {
		name := p.cur.Text
		if !p.syms.declare(name) {
			p.abort(fmt.Sprintf("Redeclaring variable: %s", name))
		}
		names = append(names, name)
		p.match(IDENTIFIER)
	}
	if len(names) == 0 {
		p.abort(fmt.Sprintf("Expected an identifier, got %s", p.cur.Type))
	}
	p.match(COLON)

	if !p.isType() {
		p.abort(fmt.Sprintf("Expected type name at: %s", p.cur.Text))
	}
	tag, _ := typeTagFor(p.cur.Type)
	p.advance()

	vars := names[0]
	for _, n := range names[1:] {
		vars += "," + n
	}
	p.em.headerLine(fmt.Sprintf("%s %s;", cType(tag), vars))
}

// ifStmt parses:
//
//	if_stmt = "IF" , comparison , "THEN" , nl , { statement }
//	        , { "ELSIF" , comparison , "THEN" , nl , { statement } }
//	        , [ "ELSE" , nl , { statement } ] , "END"
//
// Each ELSIF recurses into another ifBranch call rather than looping,
// so the nesting of "}else if(...){" braces falls out of the call
// stack instead of being tracked explicitly.
func (p *Parser) ifStmt() {
	p.advance() // IF
	p.ifBranch()
	p.match(END)
	p.em.emitLine("}")
}

func (p *Parser) ifBranch() {
	p.em.emit("if(")
	p.comparison()
	p.match(THEN)
	p.nl()
	p.em.emitLine("){")

	for !p.check(ELSE) && !p.check(END) && !p.check(ELSIF) {
		p.statement()
	}

	if p.check(ELSIF) {
		p.advance()
		p.em.emit("}else ")
		p.ifBranch()
		return
	}

	if p.check(ELSE) {
		p.advance()
		p.em.emitLine("} else {")
		p.nl()
		for !p.check(END) {
			p.statement()
		}
	}
}

// whileStmt parses WHILE comparison REPEAT nl { statement } END.
func (p *Parser) whileStmt() {
	p.advance() // WHILE

	p.em.emit("while(")
	p.comparison()
	p.match(REPEAT)
	p.nl()
	p.em.emitLine("){")

	for !p.check(END) {
		p.statement()
	}
	p.match(END)
	p.em.emitLine("}")
}

// forStmt parses FOR IDENT := expression TO expression BY expression DO
// nl { statement } END. The counter must already be declared.
func (p *Parser) forStmt() {
	p.advance() // FOR

	ctr := p.cur.Text
	p.requireDeclared(ctr)
	p.match(IDENTIFIER)
	p.match(COLONEQ)

	p.em.emit(fmt.Sprintf("for(%s = ", ctr))
	p.expression()
	p.em.emit(";")

	p.match(TO)
	p.em.emit(ctr + "<")
	p.expression()
	p.em.emit(";")

	p.match(BY)
	p.em.emit(ctr + "+=")
	p.expression()
	p.match(DO)
	p.nl()
	p.em.emitLine("){")

	for !p.check(END) {
		p.statement()
	}
	p.match(END)
	p.em.emitLine("}")
}

// comparison parses expression cmp_op expression { cmp_op expression }.
// "=" is rewritten to "==" so C sees equality, not assignment.
func (p *Parser) comparison() {
	p.expression()
	if !p.isComparisonOp() {
		p.abort(fmt.Sprintf("Expected comparison operator at: %s", p.cur.Text))
	}
	p.emitComparisonOp()
	p.expression()

	for p.isComparisonOp() {
		p.emitComparisonOp()
		p.expression()
	}
}

func (p *Parser) emitComparisonOp() {
	if p.check(EQ) {
		p.em.emit("==")
	} else {
		p.em.emit(p.cur.Text)
	}
	p.advance()
}

// expression parses term { ("+"|"-"|"%") term }.
func (p *Parser) expression() {
	p.term()
	for p.check(PLUS) || p.check(MINUS) || p.check(MODSIGN) {
		p.em.emit(p.cur.Text)
		p.advance()
		p.term()
	}
}

// term parses unary { ("*"|"/") unary }.
func (p *Parser) term() {
	p.unary()
	for p.check(ASTERISK) || p.check(SLASH) {
		p.em.emit(p.cur.Text)
		p.advance()
		p.unary()
	}
}

// unary parses [ "+" | "-" ] primary.
func (p *Parser) unary() {
	if p.check(PLUS) || p.check(MINUS) {
		p.em.emit(p.cur.Text)
		p.advance()
	}
	p.primary()
}

// primary parses NUMBER | IDENT, where IDENT must already be declared.
func (p *Parser) primary() {
	switch p.cur.Type {
	case NUMBER:
		p.em.emit(p.cur.Text)
		p.advance()
	case IDENTIFIER:
		p.requireDeclared(p.cur.Text)
		p.em.emit(p.cur.Text)
		p.advance()
	default:
		p.abort(fmt.Sprintf("Unexpected token at %s", p.cur.Text))
	}
}
