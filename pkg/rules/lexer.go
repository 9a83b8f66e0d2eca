package rules

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// RulesLexer defines the lexical structure of property rule files
var RulesLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments - shell style (# to end of line)
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Double-quoted strings with Go escapes
	{Name: "String", Pattern: `"(?:[^"\\\n]|\\.)*"`},

	// Keywords (rename, to, drop, set) are matched as identifiers
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},

	// Punctuation
	{Name: "Equals", Pattern: `=`},
})
