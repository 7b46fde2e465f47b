// Package parser turns a Pakhi token stream into a module AST. Statements
// are recursive descent; expressions use precedence-climbing (see
// expressions.go).
package parser

import (
	"strconv"

	"github.com/pakhi-lang/pakhi/pkg/ast"
	"github.com/pakhi-lang/pakhi/pkg/lexer"
	"github.com/pakhi-lang/pakhi/pkg/token"
)

// Parser consumes a token stream produced by pkg/lexer.
type Parser struct {
	file string
	toks []token.Token
	pos  int
}

// New constructs a Parser over an already-lexed token stream.
func New(file string, toks []token.Token) *Parser {
	return &Parser{file: file, toks: toks}
}

// Parse lexes and parses a complete source file into a module AST.
func Parse(file, source string) (*ast.Module, error) {
	toks, err := lexer.Lex(file, source)
	if err != nil {
		return nil, err
	}
	return New(file, toks).ParseModule()
}

// ParseModule parses statements top-to-bottom until EOF.
func (p *Parser) ParseModule() (*ast.Module, error) {
	var body []ast.Statement
	for !p.check(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	return &ast.Module{Path: p.file, Body: body}, nil
}

//-----------------------------------------------------------------------------
// Token stream helpers
//-----------------------------------------------------------------------------

func (p *Parser) current() token.Token { return p.toks[p.pos] }

func (p *Parser) checkNext(kind token.Kind) bool {
	if p.pos+1 >= len(p.toks) {
		return false
	}
	return p.toks[p.pos+1].Kind == kind
}

func (p *Parser) check(kind token.Kind) bool { return p.current().Kind == kind }

func (p *Parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) match(kind token.Kind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(kind token.Kind, what string) (token.Token, error) {
	if !p.check(kind) {
		return token.Token{}, &Error{Pos: p.current().Pos, Expected: what, Found: p.current()}
	}
	return p.advance(), nil
}

//-----------------------------------------------------------------------------
// Statements
//-----------------------------------------------------------------------------

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.current().Kind {
	case token.NAAM:
		return p.parseVarDecl()
	case token.DEKHAO:
		return p.parsePrint(false)
	case token.DEKHAO_NOEOL:
		return p.parsePrint(true)
	case token.JODI:
		return p.parseIf()
	case token.LOOP:
		return p.parseLoop()
	case token.THAMAO:
		return p.parseBreak()
	case token.PHANG:
		return p.parseFuncDecl()
	case token.PHERAT:
		return p.parseReturn()
	case token.MODULE:
		return p.parseModuleDecl()
	default:
		return p.parseExprStatement()
	}
}

func (p *Parser) parseBlock() ([]ast.Statement, error) {
	if _, err := p.expect(token.LBRACE, "'{'"); err != nil {
		return nil, err
	}
	var stmts []ast.Statement
	for !p.check(token.RBRACE) {
		if p.check(token.EOF) {
			return nil, &Error{Pos: p.current().Pos, Expected: "'}'", Found: p.current()}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(token.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) parseVarDecl() (ast.Statement, error) {
	pos := p.current().Pos
	p.advance() // নাম
	nameTok, err := p.expect(token.IDENT, "identifier")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN, "'='"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI, "';'"); err != nil {
		return nil, err
	}
	return &ast.VarDecl{Name: nameTok.Lexeme, Value: value, Position: pos}, nil
}

func (p *Parser) parsePrint(noNewline bool) (ast.Statement, error) {
	pos := p.current().Pos
	p.advance() // দেখাও or _দেখাও
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI, "';'"); err != nil {
		return nil, err
	}
	return &ast.Print{Value: value, Position: pos, NoNewline: noNewline}, nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	pos := p.current().Pos
	p.advance() // যদি
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	thenBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseBlock []ast.Statement
	if p.match(token.OTHOBA) {
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Cond: cond, Then: thenBlock, Else: elseBlock, Position: pos}, nil
}

func (p *Parser) parseLoop() (ast.Statement, error) {
	pos := p.current().Pos
	p.advance() // লুপ
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ABAR, "'আবার'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI, "';'"); err != nil {
		return nil, err
	}
	return &ast.Loop{Body: body, Position: pos}, nil
}

func (p *Parser) parseBreak() (ast.Statement, error) {
	pos := p.current().Pos
	p.advance() // থামাও
	if _, err := p.expect(token.SEMI, "';'"); err != nil {
		return nil, err
	}
	return &ast.Break{Position: pos}, nil
}

func (p *Parser) parseFuncDecl() (ast.Statement, error) {
	pos := p.current().Pos
	p.advance() // ফাং
	nameTok, err := p.expect(token.IDENT, "identifier")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN, "'('"); err != nil {
		return nil, err
	}
	var params []string
	for !p.check(token.RPAREN) {
		pTok, err := p.expect(token.IDENT, "parameter name")
		if err != nil {
			return nil, err
		}
		params = append(params, pTok.Lexeme)
		if p.match(token.COMMA) {
			continue
		}
		break
	}
	if _, err := p.expect(token.RPAREN, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.PHERAT, "'ফেরত'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI, "';'"); err != nil {
		return nil, err
	}
	return &ast.FuncDecl{Name: nameTok.Lexeme, Params: params, Body: body, Position: pos}, nil
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	pos := p.current().Pos
	p.advance() // ফেরত
	if p.match(token.SEMI) {
		return &ast.Return{Value: nil, Position: pos}, nil
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI, "';'"); err != nil {
		return nil, err
	}
	return &ast.Return{Value: value, Position: pos}, nil
}

func (p *Parser) parseModuleDecl() (ast.Statement, error) {
	pos := p.current().Pos
	p.advance() // মডিউল
	nameTok, err := p.expect(token.IDENT, "identifier")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN, "'='"); err != nil {
		return nil, err
	}
	pathTok, err := p.expect(token.STRING, "module path string")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI, "';'"); err != nil {
		return nil, err
	}
	return &ast.ModuleDecl{Name: nameTok.Lexeme, Path: pathTok.Lexeme, Position: pos}, nil
}

// parseExprStatement parses either an assignment (when the parsed
// expression is an assignable target immediately followed by '=') or a
// bare expression statement.
func (p *Parser) parseExprStatement() (ast.Statement, error) {
	pos := p.current().Pos
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.check(token.ASSIGN) {
		if !isAssignable(expr) {
			return nil, &Error{Pos: pos, Expected: "assignable target (identifier or index expression)", Found: p.current()}
		}
		p.advance() // =
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMI, "';'"); err != nil {
			return nil, err
		}
		return &ast.Assign{Target: expr, Value: value, Position: pos}, nil
	}
	if _, err := p.expect(token.SEMI, "';'"); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Value: expr, Position: pos}, nil
}

func isAssignable(expr ast.Expression) bool {
	switch e := expr.(type) {
	case *ast.Identifier:
		return true
	case *ast.IndexExpr:
		return isAssignable(e.Target)
	default:
		return false
	}
}

// parseNumber converts a numeric-literal lexeme (Bengali and/or ASCII
// digits) to its float64 value, via the centralized digit mapping.
func parseNumber(lexeme string) (float64, error) {
	return strconv.ParseFloat(lexer.NormalizeDigits(lexeme), 64)
}
