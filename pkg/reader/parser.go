// Package reader turns raw source text into a forest of top-level AST
// forms, per spec.md section 4.1: strip comments, normalise
// whitespace, tokenise atoms, balance brackets.
package reader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leinonen/racket-lisp/pkg/ast"
)

// Parser consumes a token stream produced by the Lexer and builds AST
// nodes recursively: strip one outer bracket pair, recurse on each
// child.
type Parser struct {
	toks []Token
	pos  int
}

func NewParser(toks []Token) *Parser {
	return &Parser{toks: toks}
}

// Read parses every token into an ordered sequence of top-level forms.
func Read(src string) ([]ast.Node, error) {
	toks, err := NewLexer(src).Tokenize()
	if err != nil {
		return nil, err
	}
	p := NewParser(toks)
	var forms []ast.Node
	for p.current().Type != TokenEOF {
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		forms = append(forms, n)
	}
	return forms, nil
}

func (p *Parser) current() Token {
	return p.toks[p.pos]
}

func (p *Parser) advance() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) parseExpr() (ast.Node, error) {
	tok := p.current()
	switch tok.Type {
	case TokenLParen:
		return p.parseForm(TokenRParen, ")")
	case TokenLBracket:
		return p.parseForm(TokenRBracket, "]")
	case TokenRParen, TokenRBracket:
		return nil, &Error{Kind: ErrUnbalanced, Message: "unexpected closing bracket", Pos: tok.Pos}
	case TokenAtom:
		p.advance()
		return parseAtom(tok.Value, tok.Pos)
	default:
		return nil, &Error{Kind: ErrUnbalanced, Message: "unexpected end of input", Pos: tok.Pos}
	}
}

func (p *Parser) parseForm(closer TokenType, closerStr string) (ast.Node, error) {
	openPos := p.current().Pos
	p.advance() // consume opener

	var children []ast.Node
	for {
		tok := p.current()
		if tok.Type == TokenEOF {
			return nil, &Error{Kind: ErrUnbalanced, Message: fmt.Sprintf("unbalanced: expected %q", closerStr), Pos: openPos}
		}
		if tok.Type == closer {
			if len(children) == 0 {
				return nil, &Error{Kind: ErrEmptyForm, Message: "empty form", Pos: openPos}
			}
			p.advance()
			return ast.Form{Children: children}, nil
		}
		if tok.Type == TokenRParen || tok.Type == TokenRBracket {
			return nil, &Error{Kind: ErrUnbalanced, Message: "mismatched bracket", Pos: tok.Pos}
		}
		child, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

// parseAtom classifies a childless token per spec.md section 4.1: a
// token that parses as floating point is a NumLit, a token beginning
// with ' is a QuotedSym, otherwise it is an Ident.
func parseAtom(token string, pos int) (ast.Node, error) {
	if token == "" {
		return nil, &Error{Kind: ErrEmptyForm, Message: "empty atom", Pos: pos}
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return ast.NumLit{Value: f}, nil
	}
	if strings.HasPrefix(token, "'") {
		return ast.QuotedSym{Name: token[1:]}, nil
	}
	return ast.Ident{Name: token}, nil
}
