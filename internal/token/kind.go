package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwFalse represents the 'False' keyword.
	KwFalse // False
	// KwNone represents the 'None' keyword.
	KwNone // None
	// KwTrue represents the 'True' keyword.
	KwTrue // True
	// KwAnd represents the 'and' keyword.
	KwAnd // and
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwAssert represents the 'assert' keyword.
	KwAssert // assert
	// KwAsync represents the 'async' keyword.
	KwAsync // async
	// KwAwait represents the 'await' keyword.
	KwAwait // await
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwDef represents the 'def' keyword.
	KwDef // def
	// KwDel represents the 'del' keyword.
	KwDel // del
	// KwElif represents the 'elif' keyword.
	KwElif // elif
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwExcept represents the 'except' keyword.
	KwExcept // except
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwFrom represents the 'from' keyword.
	KwFrom // from
	// KwGlobal represents the 'global' keyword.
	KwGlobal // global
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwIs represents the 'is' keyword.
	KwIs // is
	// KwLambda represents the 'lambda' keyword.
	KwLambda // lambda
	// KwNonlocal represents the 'nonlocal' keyword.
	KwNonlocal // nonlocal
	// KwNot represents the 'not' keyword.
	KwNot // not
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwPass represents the 'pass' keyword.
	KwPass // pass
	// KwRaise represents the 'raise' keyword.
	KwRaise // raise
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwWith represents the 'with' keyword.
	KwWith // with
	// KwYield represents the 'yield' keyword.
	KwYield // yield

	// Number represents an integer, float, imaginary, or radix literal.
	Number
	// String represents a string or bytes literal, any prefix, any quoting.
	String

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// DoubleStar represents the power operator token.
	DoubleStar // **
	// Slash represents the slash operator token.
	Slash // /
	// DoubleSlash represents the floor-division operator token.
	DoubleSlash // //
	// Percent represents the percent operator token.
	Percent // %
	// At represents the at (decorator / matmul) token.
	At // @
	// Shl represents the shift-left operator token.
	Shl // <<
	// Shr represents the shift-right operator token.
	Shr // >>
	// Amp represents the amp operator token.
	Amp // &
	// Pipe represents the pipe operator token.
	Pipe // |
	// Caret represents the caret operator token.
	Caret // ^
	// Tilde represents the tilde operator token.
	Tilde // ~
	// Lt represents the lt operator token.
	Lt // <
	// Gt represents the gt operator token.
	Gt // >
	// LtEq represents the lt eq operator token.
	LtEq // <=
	// GtEq represents the gt eq operator token.
	GtEq // >=
	// EqEq represents the eq eq operator token.
	EqEq // ==
	// BangEq represents the not-equal operator token.
	BangEq // !=
	// Assign represents the assign operator token.
	Assign // =
	// Arrow represents the return-annotation arrow token.
	Arrow // ->
	// ColonAssign represents the walrus operator token.
	ColonAssign // :=
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// DoubleStarAssign represents the power assign operator token.
	DoubleStarAssign // **=
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// DoubleSlashAssign represents the floor-division assign operator token.
	DoubleSlashAssign // //=
	// PercentAssign represents the percent assign operator token.
	PercentAssign // %=
	// AtAssign represents the matmul assign operator token.
	AtAssign // @=
	// AmpAssign represents the amp assign operator token.
	AmpAssign // &=
	// PipeAssign represents the pipe assign operator token.
	PipeAssign // |=
	// CaretAssign represents the caret assign operator token.
	CaretAssign // ^=
	// ShlAssign represents the shift-left assign operator token.
	ShlAssign // <<=
	// ShrAssign represents the shift-right assign operator token.
	ShrAssign // >>=

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left square bracket token.
	LBracket // [
	// RBracket represents the right square bracket token.
	RBracket // ]
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// Comma represents the comma token.
	Comma // ,
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Dot represents the dot token.
	Dot // .
	// Ellipsis represents the '...' token.
	Ellipsis // ...

	// Newline terminates a logical line.
	Newline
	// NL terminates a blank, comment-only, or implicitly-joined physical line.
	NL
	// Indent marks an indentation increase at the start of a logical line.
	Indent
	// Dedent marks an indentation decrease at the start of a logical line.
	Dedent
	// Comment represents a '#' comment running to end of line.
	Comment
)

var kindNames = map[Kind]string{
	Invalid:           "Invalid",
	EOF:               "EOF",
	Ident:             "Ident",
	KwFalse:           "KwFalse",
	KwNone:            "KwNone",
	KwTrue:            "KwTrue",
	KwAnd:             "KwAnd",
	KwAs:              "KwAs",
	KwAssert:          "KwAssert",
	KwAsync:           "KwAsync",
	KwAwait:           "KwAwait",
	KwBreak:           "KwBreak",
	KwClass:           "KwClass",
	KwContinue:        "KwContinue",
	KwDef:             "KwDef",
	KwDel:             "KwDel",
	KwElif:            "KwElif",
	KwElse:            "KwElse",
	KwExcept:          "KwExcept",
	KwFinally:         "KwFinally",
	KwFor:             "KwFor",
	KwFrom:            "KwFrom",
	KwGlobal:          "KwGlobal",
	KwIf:              "KwIf",
	KwImport:          "KwImport",
	KwIn:              "KwIn",
	KwIs:              "KwIs",
	KwLambda:          "KwLambda",
	KwNonlocal:        "KwNonlocal",
	KwNot:             "KwNot",
	KwOr:              "KwOr",
	KwPass:            "KwPass",
	KwRaise:           "KwRaise",
	KwReturn:          "KwReturn",
	KwTry:             "KwTry",
	KwWhile:           "KwWhile",
	KwWith:            "KwWith",
	KwYield:           "KwYield",
	Number:            "Number",
	String:            "String",
	Plus:              "Plus",
	Minus:             "Minus",
	Star:              "Star",
	DoubleStar:        "DoubleStar",
	Slash:             "Slash",
	DoubleSlash:       "DoubleSlash",
	Percent:           "Percent",
	At:                "At",
	Shl:               "Shl",
	Shr:               "Shr",
	Amp:               "Amp",
	Pipe:              "Pipe",
	Caret:             "Caret",
	Tilde:             "Tilde",
	Lt:                "Lt",
	Gt:                "Gt",
	LtEq:              "LtEq",
	GtEq:              "GtEq",
	EqEq:              "EqEq",
	BangEq:            "BangEq",
	Assign:            "Assign",
	Arrow:             "Arrow",
	ColonAssign:       "ColonAssign",
	PlusAssign:        "PlusAssign",
	MinusAssign:       "MinusAssign",
	StarAssign:        "StarAssign",
	DoubleStarAssign:  "DoubleStarAssign",
	SlashAssign:       "SlashAssign",
	DoubleSlashAssign: "DoubleSlashAssign",
	PercentAssign:     "PercentAssign",
	AtAssign:          "AtAssign",
	AmpAssign:         "AmpAssign",
	PipeAssign:        "PipeAssign",
	CaretAssign:       "CaretAssign",
	ShlAssign:         "ShlAssign",
	ShrAssign:         "ShrAssign",
	LParen:            "LParen",
	RParen:            "RParen",
	LBracket:          "LBracket",
	RBracket:          "RBracket",
	LBrace:            "LBrace",
	RBrace:            "RBrace",
	Comma:             "Comma",
	Colon:             "Colon",
	Semicolon:         "Semicolon",
	Dot:               "Dot",
	Ellipsis:          "Ellipsis",
	Newline:           "Newline",
	NL:                "NL",
	Indent:            "Indent",
	Dedent:            "Dedent",
	Comment:           "Comment",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
