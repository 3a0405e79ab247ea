package parser

import (
	"github.com/morel-lang/morel/internal/ast"
	"github.com/morel-lang/morel/internal/token"
)

func (p *Parser) parseDecl() ast.Decl {
	switch p.cur.Kind {
	case token.VAL:
		return p.parseValDecl()
	case token.FUN:
		return p.parseFunDecl()
	case token.DATATYPE:
		return p.parseDatatypeDecl()
	default:
		p.fail("expected a declaration (val, fun, or datatype), found %s %q", p.cur.Kind, p.cur.Lexeme)
		panic("unreachable")
	}
}

func (p *Parser) parseValDecl() ast.Decl {
	start := p.expect(token.VAL).Pos
	bindings := []ast.ValBind{p.parseValBind()}
	for p.at(token.AND) {
		p.next()
		bindings = append(bindings, p.parseValBind())
	}
	end := bindings[len(bindings)-1].Expr.Pos()
	return &ast.ValDecl{P: token.Span(start, end), Bindings: bindings}
}

func (p *Parser) parseValBind() ast.ValBind {
	rec := false
	if p.at(token.REC) {
		rec = true
		p.next()
	}
	pat := p.parsePattern(precLowest)
	p.expect(token.EQUALS)
	e := p.parseExpr(precLowest)
	return ast.ValBind{Rec: rec, Pattern: pat, Expr: e}
}

func (p *Parser) parseFunDecl() ast.Decl {
	start := p.expect(token.FUN).Pos
	binds := []ast.FunBind{p.parseFunBind()}
	for p.at(token.AND) {
		p.next()
		binds = append(binds, p.parseFunBind())
	}
	last := binds[len(binds)-1]
	end := last.Clauses[len(last.Clauses)-1].Body.Pos()
	return &ast.FunDecl{P: token.Span(start, end), Binds: binds}
}

func (p *Parser) parseFunBind() ast.FunBind {
	first := p.parseFunClause()
	clauses := []ast.FunClause{first.clause}
	name := first.name
	for p.at(token.BAR) {
		p.next()
		c := p.parseFunClause()
		if c.name != name {
			p.fail("all clauses of a function binding must share one name: expected %q, found %q", name, c.name)
		}
		clauses = append(clauses, c.clause)
	}
	return ast.FunBind{Name: name, Clauses: clauses}
}

type namedClause struct {
	name   string
	clause ast.FunClause
}

func (p *Parser) parseFunClause() namedClause {
	nameTok := p.expect(token.IDENT)
	var pats []ast.Pattern
	for p.canStartAtomPattern() {
		pats = append(pats, p.parseAtomPattern())
	}
	if len(pats) == 0 {
		p.fail("function clause for %q needs at least one parameter pattern", nameTok.Lexeme)
	}
	p.expect(token.EQUALS)
	body := p.parseExpr(precLowest)
	return namedClause{
		name: nameTok.Lexeme,
		clause: ast.FunClause{
			P:        token.Span(nameTok.Pos, body.Pos()),
			Patterns: pats,
			Body:     body,
		},
	}
}

func (p *Parser) parseDatatypeDecl() ast.Decl {
	start := p.expect(token.DATATYPE).Pos
	binds := []ast.DatBind{p.parseDatBind()}
	for p.at(token.AND) {
		p.next()
		binds = append(binds, p.parseDatBind())
	}
	return &ast.DatatypeDecl{P: start, Binds: binds}
}

func (p *Parser) parseDatBind() ast.DatBind {
	tyvars := p.parseOptTypeVars()
	name := p.expect(token.IDENT).Lexeme
	p.expect(token.EQUALS)
	ctors := []ast.CtorDecl{p.parseCtorDecl()}
	for p.at(token.BAR) {
		p.next()
		ctors = append(ctors, p.parseCtorDecl())
	}
	return ast.DatBind{TypeVars: tyvars, Name: name, Ctors: ctors}
}

func (p *Parser) parseOptTypeVars() []string {
	if p.at(token.TYVAR) {
		tok := p.cur
		p.next()
		return []string{tok.Lexeme}
	}
	if p.at(token.LPAREN) {
		p.next()
		vars := []string{p.expect(token.TYVAR).Lexeme}
		for p.at(token.COMMA) {
			p.next()
			vars = append(vars, p.expect(token.TYVAR).Lexeme)
		}
		p.expect(token.RPAREN)
		return vars
	}
	return nil
}

func (p *Parser) parseCtorDecl() ast.CtorDecl {
	name := p.expect(token.IDENT).Lexeme
	if p.at(token.OF) {
		p.next()
		ty := p.parseType()
		return ast.CtorDecl{Name: name, Arg: ty}
	}
	return ast.CtorDecl{Name: name}
}
