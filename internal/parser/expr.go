package parser

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/morel-lang/morel/internal/ast"
	"github.com/morel-lang/morel/internal/token"
)

func (p *Parser) parseExpr(minPrec int) ast.Expr {
	left := p.parseUnary()
	for {
		op, info, ok := p.infixOperatorAt()
		if !ok || info.prec < minPrec {
			return left
		}
		opTok := p.cur
		p.next()
		nextMin := info.prec + 1
		if info.rightAssoc {
			nextMin = info.prec
		}
		right := p.parseExpr(nextMin)
		left = &ast.Infix{P: token.Span(left.Pos(), right.Pos()), Op: op, A: left, B: right}
		_ = opTok
	}
}

func (p *Parser) parseUnary() ast.Expr {
	if p.cur.Kind == token.SYMBOLIC && p.cur.Lexeme == "~" {
		pos := p.cur.Pos
		p.next()
		operand := p.parseUnary()
		return &ast.Prefix{P: token.Span(pos, operand.Pos()), Op: "~", A: operand}
	}
	return p.parseApp()
}

func (p *Parser) parseApp() ast.Expr {
	left := p.parseAtom()
	for p.canStartAtom() {
		arg := p.parseAtom()
		left = &ast.Application{P: token.Span(left.Pos(), arg.Pos()), Fn: left, Arg: arg}
	}
	return left
}

func (p *Parser) canStartAtom() bool {
	switch p.cur.Kind {
	case token.IDENT, token.INT, token.REAL, token.STRING, token.CHAR,
		token.RECORDSEL, token.LPAREN, token.LBRACKET, token.LBRACE,
		token.LET, token.IF, token.CASE, token.FN, token.FROM,
		token.TRUE, token.FALSE, token.OP:
		return true
	}
	return false
}

func (p *Parser) parseAtom() ast.Expr {
	switch p.cur.Kind {
	case token.INT:
		return p.parseIntLiteral()
	case token.REAL:
		return p.parseRealLiteral()
	case token.STRING:
		tok := p.cur
		p.next()
		return &ast.Literal{P: tok.Pos, Kind: ast.LitString, Value: tok.Lexeme}
	case token.CHAR:
		tok := p.cur
		p.next()
		r := []rune(tok.Lexeme)
		if len(r) != 1 {
			panic(errorf(tok.Pos, "character literal must contain exactly one character, found %q", tok.Lexeme))
		}
		return &ast.Literal{P: tok.Pos, Kind: ast.LitChar, Value: r[0]}
	case token.TRUE:
		tok := p.cur
		p.next()
		return &ast.Literal{P: tok.Pos, Kind: ast.LitBool, Value: true}
	case token.FALSE:
		tok := p.cur
		p.next()
		return &ast.Literal{P: tok.Pos, Kind: ast.LitBool, Value: false}
	case token.RECORDSEL:
		tok := p.cur
		p.next()
		return &ast.RecordSelector{P: tok.Pos, Label: tok.Lexeme, Slot: -1}
	case token.IDENT:
		tok := p.cur
		p.next()
		return &ast.Ident{P: tok.Pos, Name: tok.Lexeme}
	case token.OP:
		p.next()
		tok := p.cur
		p.next()
		return &ast.Ident{P: tok.Pos, Name: tok.Lexeme}
	case token.LPAREN:
		return p.parseParenOrTupleOrUnit()
	case token.LBRACKET:
		return p.parseListExpr()
	case token.LBRACE:
		return p.parseRecordExpr()
	case token.LET:
		return p.parseLetExpr()
	case token.IF:
		return p.parseIfExpr()
	case token.CASE:
		return p.parseCaseExpr()
	case token.FN:
		return p.parseFnExpr()
	case token.FROM:
		return p.parseFromExpr()
	default:
		p.fail("unexpected token %s %q in expression", p.cur.Kind, p.cur.Lexeme)
		panic("unreachable")
	}
}

func (p *Parser) parseIntLiteral() ast.Expr {
	tok := p.cur
	p.next()
	lit := tok.Lexeme
	neg := strings.HasPrefix(lit, "~")
	if neg {
		lit = lit[1:]
	}
	var v *big.Int
	if strings.HasPrefix(lit, "0x") || strings.HasPrefix(lit, "0X") {
		v, _ = new(big.Int).SetString(lit[2:], 16)
	} else {
		v, _ = new(big.Int).SetString(lit, 10)
	}
	if v == nil {
		panic(errorf(tok.Pos, "malformed integer literal %q", tok.Lexeme))
	}
	if neg {
		v.Neg(v)
	}
	return &ast.Literal{P: tok.Pos, Kind: ast.LitInt, Value: v}
}

func (p *Parser) parseRealLiteral() ast.Expr {
	tok := p.cur
	p.next()
	lit := tok.Lexeme
	neg := strings.HasPrefix(lit, "~")
	if neg {
		lit = lit[1:]
	}
	lit = strings.Replace(lit, "~", "-", 1) // exponent may carry its own ~
	f, _, err := big.ParseFloat(lit, 10, 200, big.ToNearestEven)
	if err != nil {
		panic(errorf(tok.Pos, "malformed real literal %q", tok.Lexeme))
	}
	if neg {
		f.Neg(f)
	}
	return &ast.Literal{P: tok.Pos, Kind: ast.LitReal, Value: f}
}

// parseParenOrTupleOrUnit handles `()`, `(e)`, `(e : ty)`, and `(e1, e2, ...)`.
func (p *Parser) parseParenOrTupleOrUnit() ast.Expr {
	start := p.cur.Pos
	p.next() // consume '('
	if p.at(token.RPAREN) {
		end := p.cur.Pos
		p.next()
		return &ast.Record{P: token.Span(start, end)}
	}
	first := p.parseExpr(precLowest)
	if p.at(token.COLON) {
		p.next()
		ty := p.parseType()
		end := p.expect(token.RPAREN).Pos
		return &ast.Annotated{P: token.Span(start, end), Expr: first, Type: ty}
	}
	if p.at(token.COMMA) {
		elts := []ast.Expr{first}
		for p.at(token.COMMA) {
			p.next()
			elts = append(elts, p.parseExpr(precLowest))
		}
		end := p.expect(token.RPAREN).Pos
		return &ast.Tuple{P: token.Span(start, end), Elts: elts}
	}
	end := p.expect(token.RPAREN).Pos
	_ = end
	return first
}

func (p *Parser) parseListExpr() ast.Expr {
	start := p.expect(token.LBRACKET).Pos
	var elts []ast.Expr
	if !p.at(token.RBRACKET) {
		elts = append(elts, p.parseExpr(precLowest))
		for p.at(token.COMMA) {
			p.next()
			elts = append(elts, p.parseExpr(precLowest))
		}
	}
	end := p.expect(token.RBRACKET).Pos
	return &ast.List{P: token.Span(start, end), Elts: elts}
}

func (p *Parser) parseRecordExpr() ast.Expr {
	start := p.expect(token.LBRACE).Pos
	var fields []ast.RecordField
	if !p.at(token.RBRACE) {
		fields = append(fields, p.parseRecordFieldExpr())
		for p.at(token.COMMA) {
			p.next()
			fields = append(fields, p.parseRecordFieldExpr())
		}
	}
	end := p.expect(token.RBRACE).Pos
	p.checkNoZeroLabel(start, fields)
	return ast.NewRecord(token.Span(start, end), fields)
}

func (p *Parser) checkNoZeroLabel(pos token.Position, fields []ast.RecordField) {
	for _, f := range fields {
		if f.Label == "0" {
			panic(errorf(pos, "record label '0' is not allowed"))
		}
	}
}

func (p *Parser) parseRecordFieldExpr() ast.RecordField {
	label := p.parseLabel()
	p.expect(token.EQUALS)
	val := p.parseExpr(precLowest)
	return ast.RecordField{Label: label, Value: val}
}

func (p *Parser) parseLabel() string {
	switch p.cur.Kind {
	case token.IDENT:
		tok := p.cur
		p.next()
		return tok.Lexeme
	case token.INT:
		tok := p.cur
		p.next()
		if strings.HasPrefix(tok.Lexeme, "~") {
			panic(errorf(tok.Pos, "record label must be a positive integer"))
		}
		if len(tok.Lexeme) > 1 && tok.Lexeme[0] == '0' {
			panic(errorf(tok.Pos, "record label may not start with '0'"))
		}
		if _, err := strconv.Atoi(tok.Lexeme); err != nil {
			panic(errorf(tok.Pos, "malformed record label %q", tok.Lexeme))
		}
		return tok.Lexeme
	default:
		p.fail("expected a record label, found %s %q", p.cur.Kind, p.cur.Lexeme)
		panic("unreachable")
	}
}

func (p *Parser) parseLetExpr() ast.Expr {
	start := p.expect(token.LET).Pos
	var decls []ast.Decl
	for !p.at(token.IN) {
		decls = append(decls, p.parseDecl())
		if p.at(token.SEMI) {
			p.next()
		}
	}
	p.expect(token.IN)
	body := p.parseExpr(precLowest)
	end := p.expect(token.END).Pos
	return &ast.Let{P: token.Span(start, end), Decls: decls, Body: body}
}

func (p *Parser) parseIfExpr() ast.Expr {
	start := p.expect(token.IF).Pos
	cond := p.parseExpr(precLowest)
	p.expect(token.THEN)
	then := p.parseExpr(precLowest)
	p.expect(token.ELSE)
	els := p.parseExpr(precLowest)
	return &ast.If{P: token.Span(start, els.Pos()), Cond: cond, Then: then, Else: els}
}

func (p *Parser) parseCaseExpr() ast.Expr {
	start := p.expect(token.CASE).Pos
	scrutinee := p.parseExpr(precLowest)
	p.expect(token.OF)
	matches := p.parseMatches()
	end := matches[len(matches)-1].Body.Pos()
	return &ast.Case{P: token.Span(start, end), Scrutinee: scrutinee, Matches: matches}
}

func (p *Parser) parseFnExpr() ast.Expr {
	start := p.expect(token.FN).Pos
	matches := p.parseMatches()
	if len(matches) == 1 {
		return &ast.Fn{P: token.Span(start, matches[0].Body.Pos()), Match: matches[0]}
	}
	// Multiple matches in a bare `fn`: desugar to `fn x => case x of ...`,
	// the same transform applied to multi-clause `fun` (spec.md §4.3).
	synthPos := token.Zero
	argName := "%fnarg"
	caseNode := &ast.Case{
		P:         synthPos,
		Scrutinee: &ast.Ident{P: synthPos, Name: argName},
		Matches:   matches,
	}
	return &ast.Fn{
		P: token.Span(start, matches[len(matches)-1].Body.Pos()),
		Match: ast.Match{
			Pattern: &ast.PatIdent{P: synthPos, Name: argName},
			Body:    caseNode,
		},
	}
}

// parseMatches parses `p1 => e1 | p2 => e2 | ...`.
func (p *Parser) parseMatches() []ast.Match {
	var matches []ast.Match
	for {
		pat := p.parsePattern(precLowest)
		p.expect(token.DARROW)
		body := p.parseExpr(precLowest)
		matches = append(matches, ast.Match{Pattern: pat, Body: body})
		if p.at(token.BAR) {
			p.next()
			continue
		}
		break
	}
	return matches
}

func (p *Parser) parseFromExpr() ast.Expr {
	start := p.expect(token.FROM).Pos
	var sources []ast.FromSource
	sources = append(sources, p.parseFromSource())
	for p.at(token.COMMA) {
		p.next()
		sources = append(sources, p.parseFromSource())
	}
	f := &ast.From{P: start, Sources: sources}
	if p.at(token.WHERE) {
		p.next()
		f.Where = p.parseExpr(precLowest)
	}
	if p.at(token.GROUP) {
		p.next()
		f.Group = append(f.Group, p.parseGroupExpr())
		for p.at(token.COMMA) {
			p.next()
			f.Group = append(f.Group, p.parseGroupExpr())
		}
		if p.at(token.IDENT) && p.cur.Lexeme == "compute" {
			p.next()
			f.Aggregates = append(f.Aggregates, p.parseAggExpr())
			for p.at(token.COMMA) {
				p.next()
				f.Aggregates = append(f.Aggregates, p.parseAggExpr())
			}
		}
	}
	end := f.Pos()
	if p.at(token.YIELD) {
		p.next()
		f.Yield = p.parseExpr(precLowest)
		end = f.Yield.Pos()
	}
	f.P = token.Span(start, end)
	return f
}

func (p *Parser) parseFromSource() ast.FromSource {
	name := p.expect(token.IDENT).Lexeme
	p.expect(token.IN)
	e := p.parseExpr(precCompare + 1) // binds tighter than `where`/`,` at the from level
	return ast.FromSource{Var: name, Expr: e}
}

func (p *Parser) parseGroupExpr() ast.GroupExpr {
	name := p.expect(token.IDENT).Lexeme
	p.expect(token.EQUALS)
	e := p.parseExpr(precCompare + 1)
	return ast.GroupExpr{Key: name, Expr: e}
}

func (p *Parser) parseAggExpr() ast.AggExpr {
	name := p.expect(token.IDENT).Lexeme
	p.expect(token.EQUALS)
	fn := p.expect(token.IDENT).Lexeme
	if !(p.at(token.IDENT) && p.cur.Lexeme == "of") {
		p.fail("expected 'of' in compute clause")
	}
	p.next()
	of := p.parseExpr(precCompare + 1)
	return ast.AggExpr{Name: name, Func: fn, Of: of}
}
