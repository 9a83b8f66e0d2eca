package rules

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser represents a property rules parser
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new rules parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(RulesLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.Unquote("String"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses and compiles a rules file from a reader
func (p *Parser) Parse(r io.Reader) (*RuleSet, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return Compile(file)
}

// ParseString parses and compiles rules from a string
func (p *Parser) ParseString(input string) (*RuleSet, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return Compile(file)
}

// ParseFile parses and compiles a rules file from a file path
func (p *Parser) ParseFile(filename string) (*RuleSet, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// LoadFile is a convenience wrapper that builds a parser and reads filename
func LoadFile(filename string) (*RuleSet, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	return p.ParseFile(filename)
}
