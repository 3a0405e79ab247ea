// Package parser implements a hand-written recursive-descent parser (with
// Pratt-style precedence climbing for infix expressions) that turns Morel
// source text into the AST defined in internal/ast. There is no parser
// generator involved: the grammar is small enough to write by hand.
//
// Internally, parse failures are signaled by panicking with *ParseError;
// every exported entry point recovers and turns the panic back into a
// returned error, which keeps the body of each parse function free of
// error-threading boilerplate while still presenting ordinary Go error
// returns at the package boundary.
package parser

import (
	"github.com/morel-lang/morel/internal/ast"
	"github.com/morel-lang/morel/internal/lexer"
	"github.com/morel-lang/morel/internal/token"
)

// Parser holds a two-token lookahead buffer over a lexer.Lexer.
type Parser struct {
	lex *lexer.Lexer

	cur  token.Token
	peek token.Token
}

func New(input string) *Parser {
	p := &Parser{lex: lexer.New(input)}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	tok, err := p.lex.NextToken()
	if err != nil {
		panic(&ParseError{Pos: err.Pos, Msg: err.Msg})
	}
	p.peek = tok
}

func (p *Parser) at(k token.Kind) bool { return p.cur.Kind == k }

func (p *Parser) expect(k token.Kind) token.Token {
	if p.cur.Kind != k {
		panic(errorf(p.cur.Pos, "expected %s, found %s %q", k, p.cur.Kind, p.cur.Lexeme))
	}
	tok := p.cur
	p.next()
	return tok
}

func (p *Parser) fail(format string, args ...interface{}) {
	panic(errorf(p.cur.Pos, format, args...))
}

// recoverParse turns a panicked *ParseError into a returned error. Any
// other panic propagates, since it indicates an actual bug.
func recoverParse(errp *error) {
	if r := recover(); r != nil {
		if pe, ok := r.(*ParseError); ok {
			*errp = pe
			return
		}
		panic(r)
	}
}

// ParseStatement parses one top-level statement: a declaration, or a bare
// expression lifted into `val it = expr` (spec.md §4.1). The caller is
// responsible for splitting input on top-level ';' if driving a REPL; a
// single call consumes exactly one statement and any trailing ';'.
func ParseStatement(src string) (decl ast.Decl, err error) {
	defer recoverParse(&err)
	p := New(src)
	decl = p.parseStatement()
	if !p.at(token.EOF) {
		p.fail("unexpected trailing input after statement: %q", p.cur.Lexeme)
	}
	return decl, nil
}

// ParseProgram parses a whole source file as a sequence of top-level
// statements (each optionally ';'-terminated), for a driver that wants to
// submit a file's statements one at a time rather than re-tokenizing the
// file per statement.
func ParseProgram(src string) (decls []ast.Decl, err error) {
	defer recoverParse(&err)
	p := New(src)
	for !p.at(token.EOF) {
		decls = append(decls, p.parseStatement())
	}
	return decls, nil
}

// ParseDecl parses a single declaration (val/fun/datatype).
func ParseDecl(src string) (d ast.Decl, err error) {
	defer recoverParse(&err)
	p := New(src)
	d = p.parseDecl()
	if !p.at(token.EOF) && !p.at(token.SEMI) {
		p.fail("unexpected trailing input after declaration: %q", p.cur.Lexeme)
	}
	return d, nil
}

// ParseExpression parses a single standalone expression.
func ParseExpression(src string) (e ast.Expr, err error) {
	defer recoverParse(&err)
	p := New(src)
	e = p.parseExpr(precLowest)
	if !p.at(token.EOF) && !p.at(token.SEMI) {
		p.fail("unexpected trailing input after expression: %q", p.cur.Lexeme)
	}
	return e, nil
}

// ParseLiteral parses a single literal token into an ast.Literal.
func ParseLiteral(src string) (lit *ast.Literal, err error) {
	defer recoverParse(&err)
	p := New(src)
	e := p.parseAtom()
	l, ok := e.(*ast.Literal)
	if !ok {
		p.fail("expected a literal")
	}
	if !p.at(token.EOF) {
		p.fail("unexpected trailing input after literal")
	}
	return l, nil
}

func (p *Parser) parseStatement() ast.Decl {
	switch p.cur.Kind {
	case token.VAL, token.FUN, token.DATATYPE:
		d := p.parseDecl()
		if p.at(token.SEMI) {
			p.next()
		}
		return d
	default:
		pos := p.cur.Pos
		e := p.parseExpr(precLowest)
		if p.at(token.SEMI) {
			p.next()
		}
		return &ast.ValDecl{
			P: pos,
			Bindings: []ast.ValBind{
				{Pattern: &ast.PatIdent{P: pos, Name: "it"}, Expr: e},
			},
		}
	}
}
