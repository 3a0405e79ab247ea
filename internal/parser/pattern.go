package parser

import (
	"github.com/morel-lang/morel/internal/ast"
	"github.com/morel-lang/morel/internal/token"
)

// parsePattern parses a full pattern: a cons-chain of applied patterns,
// optionally layered with `as`. Constructor application (`SOME x`) is
// unambiguous at parse time (only a constructor can apply to a pattern, a
// bound variable cannot), so it is built here directly; whether a bare,
// unapplied identifier denotes a fresh binding or a nullary constructor
// reference is left for internal/infer to resolve against the environment
// (spec.md §4.3 step 3), since only the type environment knows which names
// are constructors.
func (p *Parser) parsePattern(minPrec int) ast.Pattern {
	left := p.parseAppPattern()
	for p.at(token.SYMBOLIC) && p.cur.Lexeme == "::" {
		pos := p.cur.Pos
		p.next()
		right := p.parsePattern(minPrec)
		left = &ast.PatCons{P: token.Span(pos, right.Pos()), Head: left, Tail: right}
	}
	if p.at(token.AS) {
		ident, ok := left.(*ast.PatIdent)
		if !ok {
			p.fail("'as' must follow a simple variable pattern")
		}
		p.next()
		right := p.parsePattern(minPrec)
		left = &ast.PatLayered{P: token.Span(ident.P, right.Pos()), Name: ident.Name, Pattern: right}
	}
	return left
}

func (p *Parser) canStartAtomPattern() bool {
	switch p.cur.Kind {
	case token.WILDCARD, token.IDENT, token.INT, token.REAL, token.STRING,
		token.CHAR, token.TRUE, token.FALSE, token.LPAREN, token.LBRACKET, token.LBRACE:
		return true
	}
	return false
}

func (p *Parser) parseAppPattern() ast.Pattern {
	atom := p.parseAtomPattern()
	if ident, ok := atom.(*ast.PatIdent); ok && p.canStartAtomPattern() {
		arg := p.parseAtomPattern()
		return &ast.PatCon{P: token.Span(ident.P, arg.Pos()), Name: ident.Name, Arg: arg}
	}
	return atom
}

func (p *Parser) parseAtomPattern() ast.Pattern {
	switch p.cur.Kind {
	case token.WILDCARD:
		tok := p.cur
		p.next()
		return &ast.PatWildcard{P: tok.Pos}
	case token.IDENT:
		tok := p.cur
		p.next()
		return &ast.PatIdent{P: tok.Pos, Name: tok.Lexeme}
	case token.INT:
		e := p.parseIntLiteral().(*ast.Literal)
		return &ast.PatLiteral{P: e.P, Kind: e.Kind, Value: e.Value}
	case token.REAL:
		e := p.parseRealLiteral().(*ast.Literal)
		return &ast.PatLiteral{P: e.P, Kind: e.Kind, Value: e.Value}
	case token.STRING:
		tok := p.cur
		p.next()
		return &ast.PatLiteral{P: tok.Pos, Kind: ast.LitString, Value: tok.Lexeme}
	case token.CHAR:
		tok := p.cur
		p.next()
		r := []rune(tok.Lexeme)
		return &ast.PatLiteral{P: tok.Pos, Kind: ast.LitChar, Value: r[0]}
	case token.TRUE:
		tok := p.cur
		p.next()
		return &ast.PatLiteral{P: tok.Pos, Kind: ast.LitBool, Value: true}
	case token.FALSE:
		tok := p.cur
		p.next()
		return &ast.PatLiteral{P: tok.Pos, Kind: ast.LitBool, Value: false}
	case token.LPAREN:
		return p.parseParenPattern()
	case token.LBRACKET:
		return p.parseListPattern()
	case token.LBRACE:
		return p.parseRecordPattern()
	default:
		p.fail("unexpected token %s %q in pattern", p.cur.Kind, p.cur.Lexeme)
		panic("unreachable")
	}
}

func (p *Parser) parseParenPattern() ast.Pattern {
	start := p.cur.Pos
	p.next()
	if p.at(token.RPAREN) {
		end := p.cur.Pos
		p.next()
		return &ast.PatRecord{P: token.Span(start, end)}
	}
	first := p.parsePattern(precLowest)
	if p.at(token.COLON) {
		p.next()
		ty := p.parseType()
		end := p.expect(token.RPAREN).Pos
		return &ast.PatAnnotated{P: token.Span(start, end), Pattern: first, Type: ty}
	}
	if p.at(token.COMMA) {
		elts := []ast.Pattern{first}
		for p.at(token.COMMA) {
			p.next()
			elts = append(elts, p.parsePattern(precLowest))
		}
		end := p.expect(token.RPAREN).Pos
		return &ast.PatTuple{P: token.Span(start, end), Elts: elts}
	}
	p.expect(token.RPAREN)
	return first
}

func (p *Parser) parseListPattern() ast.Pattern {
	start := p.expect(token.LBRACKET).Pos
	var elts []ast.Pattern
	if !p.at(token.RBRACKET) {
		elts = append(elts, p.parsePattern(precLowest))
		for p.at(token.COMMA) {
			p.next()
			elts = append(elts, p.parsePattern(precLowest))
		}
	}
	end := p.expect(token.RBRACKET).Pos
	return &ast.PatList{P: token.Span(start, end), Elts: elts}
}

func (p *Parser) parseRecordPattern() ast.Pattern {
	start := p.expect(token.LBRACE).Pos
	var fields []ast.PatRecordField
	ellipsis := false
	if !p.at(token.RBRACE) {
		for {
			if p.at(token.ELLIPSIS) {
				ellipsis = true
				p.next()
				break
			}
			fields = append(fields, p.parseRecordFieldPattern())
			if p.at(token.COMMA) {
				p.next()
				continue
			}
			break
		}
	}
	end := p.expect(token.RBRACE).Pos
	p.checkNoZeroLabelPat(start, fields)
	return ast.NewPatRecord(token.Span(start, end), fields, ellipsis)
}

func (p *Parser) checkNoZeroLabelPat(pos token.Position, fields []ast.PatRecordField) {
	for _, f := range fields {
		if f.Label == "0" {
			panic(errorf(pos, "record label '0' is not allowed"))
		}
	}
}

func (p *Parser) parseRecordFieldPattern() ast.PatRecordField {
	label := p.parseLabel()
	if p.at(token.EQUALS) {
		p.next()
		return ast.PatRecordField{Label: label, Pattern: p.parsePattern(precLowest)}
	}
	// Field-punning shorthand `{a, b}` == `{a=a, b=b}`.
	return ast.PatRecordField{Label: label, Pattern: &ast.PatIdent{Name: label}}
}
