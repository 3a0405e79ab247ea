package token

// Kind identifies the lexical class of a Token.
type Kind int

const (
	EOF Kind = iota
	ILLEGAL

	IDENT     // identifier, e.g. foo, Foo, foo'
	TYVAR     // 'a, 'b
	SYMBOLIC  // symbolic identifier built from the symbol charset, e.g. ++, <>, ::, @
	INT       // 123, ~123, 0x1F
	REAL      // 1.0, 1.0e10, ~1.5
	STRING    // "..."
	CHAR      // #"a"
	WILDCARD  // _
	ELLIPSIS  // ...
	RECORDSEL // #label or #1

	// Punctuation
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	LBRACE
	RBRACE
	COMMA
	SEMI
	EQUALS // the '=' of a binding, distinct from SYMBOLIC "="? kept as its own kind for clarity in val-bindings
	BAR
	ARROW   // ->
	DARROW  // =>
	COLON   // :
	ASSIGN  // :=

	// Keywords
	AND
	ANDALSO
	AS
	CASE
	DATATYPE
	DIV
	ELSE
	END
	EXCEPT
	FALSE
	FN
	FROM
	FUN
	GROUP
	IF
	IN
	INTERSECT
	LET
	MOD
	OF
	OP
	ORELSE
	REC
	THEN
	TRUE
	UNION
	VAL
	WHERE
	YIELD
)

// Keywords maps reserved words to their token kind. Everything else that
// starts with a letter lexes as IDENT.
var Keywords = map[string]Kind{
	"and":      AND,
	"andalso":  ANDALSO,
	"as":       AS,
	"case":     CASE,
	"datatype":  DATATYPE,
	"div":       DIV,
	"else":      ELSE,
	"end":       END,
	"except":    EXCEPT,
	"false":     FALSE,
	"fn":        FN,
	"from":      FROM,
	"fun":       FUN,
	"group":     GROUP,
	"if":        IF,
	"in":        IN,
	"intersect": INTERSECT,
	"let":       LET,
	"mod":       MOD,
	"of":        OF,
	"op":        OP,
	"orelse":    ORELSE,
	"rec":       REC,
	"then":      THEN,
	"true":      TRUE,
	"union":     UNION,
	"val":       VAL,
	"where":     WHERE,
	"yield":     YIELD,
}

// Token is a single lexeme together with its source position.
type Token struct {
	Kind   Kind
	Lexeme string
	Pos    Position
}

func (k Kind) String() string {
	switch k {
	case EOF:
		return "<eof>"
	case ILLEGAL:
		return "<illegal>"
	case IDENT:
		return "identifier"
	case TYVAR:
		return "type variable"
	case SYMBOLIC:
		return "symbolic identifier"
	case INT:
		return "int literal"
	case REAL:
		return "real literal"
	case STRING:
		return "string literal"
	case CHAR:
		return "char literal"
	case WILDCARD:
		return "_"
	case ELLIPSIS:
		return "..."
	case RECORDSEL:
		return "record selector"
	default:
		for s, kk := range Keywords {
			if kk == k {
				return s
			}
		}
		return "token"
	}
}
