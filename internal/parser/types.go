package parser

import (
	"github.com/morel-lang/morel/internal/ast"
	"github.com/morel-lang/morel/internal/token"
)

// parseType parses a full type expression: `dom -> cod` (right-assoc,
// lowest), `ty * ty * ...` (left-assoc tuple), then applied/atomic types.
func (p *Parser) parseType() ast.TypeExpr {
	return p.parseFuncType()
}

func (p *Parser) parseFuncType() ast.TypeExpr {
	left := p.parseTupleType()
	if p.at(token.ARROW) {
		p.next()
		right := p.parseFuncType()
		return &ast.TyFunc{P: token.Span(left.Pos(), right.Pos()), Domain: left, Codomain: right}
	}
	return left
}

func (p *Parser) parseTupleType() ast.TypeExpr {
	left := p.parseAppliedType()
	if p.at(token.SYMBOLIC) && p.cur.Lexeme == "*" {
		elts := []ast.TypeExpr{left}
		for p.at(token.SYMBOLIC) && p.cur.Lexeme == "*" {
			p.next()
			elts = append(elts, p.parseAppliedType())
		}
		return &ast.TyTuple{P: token.Span(left.Pos(), elts[len(elts)-1].Pos()), Elts: elts}
	}
	return left
}

// parseAppliedType handles the SML postfix convention: `ty name` applies
// the single argument ty to the named constructor (`int list`), chained
// arbitrarily (`int list list`).
func (p *Parser) parseAppliedType() ast.TypeExpr {
	base := p.parseAtomType()
	for p.at(token.IDENT) {
		tok := p.cur
		p.next()
		base = &ast.TyNamed{P: token.Span(base.Pos(), tok.Pos), Name: tok.Lexeme, Args: []ast.TypeExpr{base}}
	}
	return base
}

func (p *Parser) parseAtomType() ast.TypeExpr {
	switch p.cur.Kind {
	case token.TYVAR:
		tok := p.cur
		p.next()
		return &ast.TyVar{P: tok.Pos, Name: tok.Lexeme}
	case token.IDENT:
		tok := p.cur
		p.next()
		return &ast.TyNamed{P: tok.Pos, Name: tok.Lexeme}
	case token.LPAREN:
		start := p.cur.Pos
		p.next()
		first := p.parseType()
		if p.at(token.COMMA) {
			args := []ast.TypeExpr{first}
			for p.at(token.COMMA) {
				p.next()
				args = append(args, p.parseType())
			}
			p.expect(token.RPAREN)
			nameTok := p.expect(token.IDENT)
			return &ast.TyNamed{P: token.Span(start, nameTok.Pos), Name: nameTok.Lexeme, Args: args}
		}
		p.expect(token.RPAREN)
		return first
	case token.LBRACE:
		return p.parseRecordType()
	default:
		p.fail("unexpected token %s %q in type expression", p.cur.Kind, p.cur.Lexeme)
		panic("unreachable")
	}
}

func (p *Parser) parseRecordType() ast.TypeExpr {
	start := p.expect(token.LBRACE).Pos
	var fields []ast.TyRecordField
	if !p.at(token.RBRACE) {
		fields = append(fields, p.parseRecordTypeField())
		for p.at(token.COMMA) {
			p.next()
			fields = append(fields, p.parseRecordTypeField())
		}
	}
	end := p.expect(token.RBRACE).Pos
	sortTyRecordFields(fields)
	return &ast.TyRecord{P: token.Span(start, end), Fields: fields}
}

func (p *Parser) parseRecordTypeField() ast.TyRecordField {
	label := p.parseLabel()
	p.expect(token.COLON)
	ty := p.parseType()
	return ast.TyRecordField{Label: label, Type: ty}
}

func sortTyRecordFields(fields []ast.TyRecordField) {
	for i := 1; i < len(fields); i++ {
		for j := i; j > 0 && fields[j-1].Label > fields[j].Label; j-- {
			fields[j-1], fields[j] = fields[j], fields[j-1]
		}
	}
}
