// Package printer renders an internal/ast tree back to Morel source text.
// It exists for the round-trip property (every well-formed expression
// satisfies parse(print(e)) = e, modulo the grammar's own parenthesization
// rules): the precedence table below mirrors internal/parser/precedence.go
// so that a left-associative chain like `a - b - c` prints without the
// redundant parens a naive "always parenthesize" printer would add, while a
// right-associative one like `a :: b :: c` still omits them on the right.
// Grounded on the teacher's prettyprinter.CodePrinter: an operator-table
// driven printer that decides parenthesization from precedence and
// associativity rather than carrying it in the AST.
package printer

import (
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/morel-lang/morel/internal/ast"
)

// Precedence levels, mirroring internal/parser/precedence.go exactly (that
// table is unexported, so the printer keeps its own copy rather than import
// a parser-internal).
const (
	precLowest = iota
	precOrElse
	precAndAlso
	precAssignO
	precCompare
	precConsAppend
	precAddSub
	precMulDiv
	precApp  // function application: left-assoc, binds tighter than any infix operator
	precAtom // literals, idents, and every self-delimiting bracketed/keyworded form
)

type opInfo struct {
	prec       int
	rightAssoc bool
}

var infixOps = map[string]opInfo{
	"orelse":    {precOrElse, true},
	"andalso":   {precAndAlso, true},
	":=":        {precAssignO, false},
	"o":         {precAssignO, false},
	"<":         {precCompare, false},
	">":         {precCompare, false},
	"<=":        {precCompare, false},
	">=":        {precCompare, false},
	"=":         {precCompare, false},
	"<>":        {precCompare, false},
	"::":        {precConsAppend, true},
	"@":         {precConsAppend, true},
	"+":         {precAddSub, false},
	"-":         {precAddSub, false},
	"^":         {precAddSub, false},
	"union":     {precAddSub, false},
	"except":    {precAddSub, false},
	"*":         {precMulDiv, false},
	"/":         {precMulDiv, false},
	"div":       {precMulDiv, false},
	"mod":       {precMulDiv, false},
	"intersect": {precMulDiv, false},
}

func infoFor(op string) opInfo {
	if info, ok := infixOps[op]; ok {
		return info
	}
	return opInfo{prec: precCompare, rightAssoc: false}
}

// Expr renders e as a parse-stable source fragment.
func Expr(e ast.Expr) string { return exprAt(e, precLowest) }

// exprAt renders e, wrapping it in parens iff its own precedence is lower
// than minPrec (i.e. iff leaving it bare would change how the surrounding
// operator parses it).
func exprAt(e ast.Expr, minPrec int) string {
	prec, s := render(e)
	if prec < minPrec {
		return "(" + s + ")"
	}
	return s
}

// render returns e's own precedence together with its rendering at that
// level. Literals, idents, and every bracketed or end-terminated form
// (tuple/list/record/let) get precAtom: parser.parseAtom accepts them
// directly, so they never need parens, including as a bare
// function-application argument. if/fn/case/from, by contrast, have no
// terminator of their own — their final branch or body is parsed by a
// greedy parseExpr(precLowest) that happily absorbs whatever follows — so
// each gets precLowest instead: safe bare as a whole statement or as a
// tuple/list/record element (both contexts parse their contents at
// precLowest too), but parenthesized the moment it is nested anywhere
// tighter (an infix operand, an application's function or argument
// position), where an unparenthesized one would swallow the following
// token into its own body instead of ending where intended. Application
// and Prefix sit one tier below the true atoms (precApp): each needs
// parens only when nested as another Application's argument, since
// parseApp's argument position is parseAtom, not parseApp — it cannot
// reabsorb a further unparenthesized application or prefix expression.
// Infix sits at its own operator's precedence, the ordinary case.
func render(e ast.Expr) (int, string) {
	switch x := e.(type) {
	case *ast.Literal:
		return precAtom, literal(x.Kind, x.Value)
	case *ast.Ident:
		return precAtom, x.Name
	case *ast.RecordSelector:
		return precAtom, "#" + x.Label
	case *ast.Tuple:
		return precAtom, "(" + joinExprs(x.Elts) + ")"
	case *ast.List:
		return precAtom, "[" + joinExprs(x.Elts) + "]"
	case *ast.Record:
		return precAtom, recordLit(x.Fields)
	case *ast.Let:
		return precAtom, "let " + declsStr(x.Decls) + " in " + Expr(x.Body) + " end"
	case *ast.If:
		return precLowest, "if " + Expr(x.Cond) + " then " + Expr(x.Then) + " else " + Expr(x.Else)
	case *ast.Fn:
		return precLowest, "fn " + matchStr(x.Match)
	case *ast.Case:
		return precLowest, "case " + Expr(x.Scrutinee) + " of " + matchesStr(x.Matches)
	case *ast.From:
		return precLowest, fromStr(x)
	case *ast.Annotated:
		return precAtom, "(" + Expr(x.Expr) + " : " + TypeExpr(x.Type) + ")"
	case *ast.Application:
		return precApp, exprAt(x.Fn, precApp) + " " + exprAt(x.Arg, precAtom)
	case *ast.Prefix:
		// parser.parseUnary's operand is itself parseUnary (so nested ~ and
		// a bare Application both parse fine unparenthesized); only
		// something looser than application (an Infix) needs parens here.
		return precApp, x.Op + exprAt(x.A, precApp)
	case *ast.Infix:
		info := infoFor(x.Op)
		leftMin, rightMin := info.prec, info.prec+1
		if info.rightAssoc {
			leftMin, rightMin = info.prec+1, info.prec
		}
		return info.prec, exprAt(x.A, leftMin) + " " + x.Op + " " + exprAt(x.B, rightMin)
	}
	panic("printer: unknown Expr implementation")
}

func joinExprs(elts []ast.Expr) string {
	parts := make([]string, len(elts))
	for i, e := range elts {
		parts[i] = Expr(e)
	}
	return strings.Join(parts, ", ")
}

// recordLit prints a record's fields in sorted-label order — ast.NewRecord
// already stores them that way, so this is just a direct render, but the
// sort here is the textual witness of spec.md's "records with permuted
// labels print in sorted order" property.
func recordLit(fields []ast.RecordField) string {
	sorted := make([]ast.RecordField, len(fields))
	copy(sorted, fields)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Label < sorted[j].Label })
	parts := make([]string, len(sorted))
	for i, f := range sorted {
		parts[i] = f.Label + "=" + Expr(f.Value)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func matchStr(m ast.Match) string {
	return Pattern(m.Pattern) + " => " + Expr(m.Body)
}

func matchesStr(ms []ast.Match) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = matchStr(m)
	}
	return strings.Join(parts, " | ")
}

func declsStr(decls []ast.Decl) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = Decl(d)
	}
	return strings.Join(parts, " ")
}

func fromStr(x *ast.From) string {
	var b strings.Builder
	b.WriteString("from ")
	for i, s := range x.Sources {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.Var + " in " + Expr(s.Expr))
	}
	if x.Where != nil {
		b.WriteString(" where " + Expr(x.Where))
	}
	for i, g := range x.Group {
		sep := ", "
		if i == 0 {
			sep = " group "
		}
		b.WriteString(sep + g.Key + " = " + exprAt(g.Expr, precCompare+1))
	}
	for i, a := range x.Aggregates {
		sep := ", "
		if i == 0 {
			sep = " compute "
		}
		b.WriteString(sep + a.Name + " = " + a.Func + " of " + exprAt(a.Of, precCompare+1))
	}
	if x.Yield != nil {
		b.WriteString(" yield " + Expr(x.Yield))
	}
	return b.String()
}

// literal renders kind/value the way the lexer must be able to read it back:
// negation spelled "~", reals always keeping a '.' or exponent marker, and
// char literals double-quoted (unlike eval.Value.Inspect's REPL-display
// single-quote convention) since that's the grammar's own #"c" syntax.
func literal(kind ast.LitKind, value interface{}) string {
	switch kind {
	case ast.LitInt:
		n := value.(*big.Int)
		if n.Sign() < 0 {
			return "~" + new(big.Int).Neg(n).String()
		}
		return n.String()
	case ast.LitReal:
		f := value.(*big.Float)
		s := f.Text('g', -1)
		s = strings.ReplaceAll(s, "e+", "e")
		s = strings.ReplaceAll(s, "-", "~")
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case ast.LitString:
		return strconv.Quote(value.(string))
	case ast.LitChar:
		return "#" + strconv.Quote(string(value.(rune)))
	case ast.LitBool:
		if value.(bool) {
			return "true"
		}
		return "false"
	case ast.LitUnit:
		return "()"
	}
	panic("printer: unknown literal kind")
}

// Pattern renders p as source text.
func Pattern(p ast.Pattern) string {
	switch x := p.(type) {
	case *ast.PatWildcard:
		return "_"
	case *ast.PatIdent:
		return x.Name
	case *ast.PatLiteral:
		return literal(x.Kind, x.Value)
	case *ast.PatTuple:
		parts := make([]string, len(x.Elts))
		for i, e := range x.Elts {
			parts[i] = Pattern(e)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case *ast.PatList:
		parts := make([]string, len(x.Elts))
		for i, e := range x.Elts {
			parts[i] = Pattern(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *ast.PatRecord:
		sorted := make([]ast.PatRecordField, len(x.Fields))
		copy(sorted, x.Fields)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Label < sorted[j].Label })
		parts := make([]string, 0, len(sorted)+1)
		for _, f := range sorted {
			parts = append(parts, f.Label+"="+Pattern(f.Pattern))
		}
		if x.Ellipsis {
			parts = append(parts, "...")
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *ast.PatCon:
		if x.Arg == nil {
			return x.Name
		}
		return x.Name + " " + Pattern(x.Arg)
	case *ast.PatCons:
		return Pattern(x.Head) + " :: " + Pattern(x.Tail)
	case *ast.PatInfix:
		return Pattern(x.A) + " " + x.Op + " " + Pattern(x.B)
	case *ast.PatLayered:
		return x.Name + " as " + Pattern(x.Pattern)
	case *ast.PatAnnotated:
		return "(" + Pattern(x.Pattern) + " : " + TypeExpr(x.Type) + ")"
	}
	panic("printer: unknown Pattern implementation")
}

// Decl renders one declaration; only the forms internal/compiler accepts
// (val and datatype; fun is always desugared before this would be reached)
// need to round-trip, so that's all this supports.
func Decl(d ast.Decl) string {
	switch x := d.(type) {
	case *ast.ValDecl:
		parts := make([]string, len(x.Bindings))
		for i, b := range x.Bindings {
			prefix := ""
			if b.Rec {
				prefix = "rec "
			}
			parts[i] = prefix + Pattern(b.Pattern) + " = " + Expr(b.Expr)
		}
		return "val " + strings.Join(parts, " and ") + ";"
	case *ast.DatatypeDecl:
		parts := make([]string, len(x.Binds))
		for i, b := range x.Binds {
			ctors := make([]string, len(b.Ctors))
			for j, c := range b.Ctors {
				if c.Arg == nil {
					ctors[j] = c.Name
				} else {
					ctors[j] = c.Name + " of " + TypeExpr(c.Arg)
				}
			}
			tyvars := ""
			if len(b.TypeVars) == 1 {
				tyvars = b.TypeVars[0] + " "
			} else if len(b.TypeVars) > 1 {
				tyvars = "(" + strings.Join(b.TypeVars, ", ") + ") "
			}
			parts[i] = tyvars + b.Name + " = " + strings.Join(ctors, " | ")
		}
		return "datatype " + strings.Join(parts, " and ") + ";"
	}
	panic("printer: unknown Decl implementation")
}

// TypeExpr renders a type annotation as source text.
func TypeExpr(t ast.TypeExpr) string {
	switch x := t.(type) {
	case *ast.TyVar:
		return x.Name
	case *ast.TyNamed:
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = TypeExpr(a)
		}
		switch len(args) {
		case 0:
			return x.Name
		case 1:
			return args[0] + " " + x.Name
		default:
			return "(" + strings.Join(args, ", ") + ") " + x.Name
		}
	case *ast.TyFunc:
		return "(" + TypeExpr(x.Domain) + " -> " + TypeExpr(x.Codomain) + ")"
	case *ast.TyTuple:
		parts := make([]string, len(x.Elts))
		for i, e := range x.Elts {
			parts[i] = TypeExpr(e)
		}
		return strings.Join(parts, " * ")
	case *ast.TyRecord:
		parts := make([]string, len(x.Fields))
		for i, f := range x.Fields {
			parts[i] = f.Label + ": " + TypeExpr(f.Type)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	panic("printer: unknown TypeExpr implementation")
}
