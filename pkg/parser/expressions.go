package parser

import (
	"github.com/pakhi-lang/pakhi/pkg/ast"
	"github.com/pakhi-lang/pakhi/pkg/token"
)

// parseExpression is the entry point for the precedence-climbing chain
// below, lowest precedence first.
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() (ast.Expression, error) {
	left, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for p.check(token.OR) {
		pos := p.current().Pos
		p.advance()
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: "||", Left: left, Right: right, Position: pos}
	}
	return left, nil
}

func (p *Parser) parseLogicalAnd() (ast.Expression, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.check(token.AND) {
		pos := p.current().Pos
		p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: "&&", Left: left, Right: right, Position: pos}
	}
	return left, nil
}

func (p *Parser) parseEquality() (ast.Expression, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.check(token.EQ) || p.check(token.NEQ) {
		op := p.current()
		p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op.Lexeme, Left: left, Right: right, Position: op.Pos}
	}
	return left, nil
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.check(token.LT) || p.check(token.LTE) || p.check(token.GT) || p.check(token.GTE) {
		op := p.current()
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op.Lexeme, Left: left, Right: right, Position: op.Pos}
	}
	return left, nil
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.check(token.PLUS) || p.check(token.MINUS) {
		op := p.current()
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op.Lexeme, Left: left, Right: right, Position: op.Pos}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.check(token.STAR) || p.check(token.SLASH) || p.check(token.PERCENT) {
		// A SLASH immediately followed by an identifier was already
		// consumed as ast.SlashExpr by parsePostfix; reaching SLASH here
		// means the parser declined that reading (the next token is not
		// an identifier), so it is ordinary division.
		op := p.current()
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op.Lexeme, Left: left, Right: right, Position: op.Pos}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	if p.check(token.MINUS) || p.check(token.NOT) {
		op := p.current()
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op.Lexeme, Operand: operand, Position: op.Pos}, nil
	}
	return p.parsePostfix()
}

// parsePostfix handles `[index]`, `(args)`, and `/member` chains.
// `/member` is only attempted when the token right after SLASH is an
// identifier — see ast.SlashExpr's doc comment for how the
// division/member-access ambiguity resolves at evaluation time.
func (p *Parser) parsePostfix() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.check(token.LBRACKET):
			p.advance()
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET, "']'"); err != nil {
				return nil, err
			}
			expr = &ast.IndexExpr{Target: expr, Index: index, Position: expr.Pos()}
		case p.check(token.LPAREN):
			p.advance()
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RPAREN, "')'"); err != nil {
				return nil, err
			}
			expr = &ast.Call{Callee: expr, Args: args, Position: expr.Pos()}
		case p.check(token.SLASH) && p.checkNext(token.IDENT):
			p.advance() // '/'
			nameTok := p.advance()
			expr = &ast.SlashExpr{Left: expr, RightName: nameTok.Lexeme, RightPos: nameTok.Pos, Position: expr.Pos()}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseArgs() ([]ast.Expression, error) {
	var args []ast.Expression
	for !p.check(token.RPAREN) {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.match(token.COMMA) {
			if p.check(token.RPAREN) {
				break
			}
			continue
		}
		break
	}
	return args, nil
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.current()
	switch tok.Kind {
	case token.NUMBER:
		p.advance()
		val, err := parseNumber(tok.Lexeme)
		if err != nil {
			return nil, &Error{Pos: tok.Pos, Expected: "valid numeric literal", Found: tok}
		}
		return &ast.NumberLit{Value: val, Position: tok.Pos}, nil
	case token.STRING:
		p.advance()
		return &ast.StringLit{Value: tok.Lexeme, Position: tok.Pos}, nil
	case token.TRUE:
		p.advance()
		return &ast.BoolLit{Value: true, Position: tok.Pos}, nil
	case token.FALSE:
		p.advance()
		return &ast.BoolLit{Value: false, Position: tok.Pos}, nil
	case token.NULL:
		p.advance()
		return &ast.NullLit{Position: tok.Pos}, nil
	case token.IDENT:
		p.advance()
		return &ast.Identifier{Name: tok.Lexeme, Position: tok.Pos}, nil
	case token.LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return expr, nil
	case token.LBRACKET:
		return p.parseListLit()
	case token.AT:
		return p.parseRecordLit()
	default:
		return nil, &Error{Pos: tok.Pos, Expected: "expression", Found: tok}
	}
}

func (p *Parser) parseListLit() (ast.Expression, error) {
	pos := p.current().Pos
	p.advance() // '['
	var elems []ast.Expression
	for !p.check(token.RBRACKET) {
		el, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
		if p.match(token.COMMA) {
			if p.check(token.RBRACKET) {
				break
			}
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACKET, "']'"); err != nil {
		return nil, err
	}
	return &ast.ListLit{Elements: elems, Position: pos}, nil
}

func (p *Parser) parseRecordLit() (ast.Expression, error) {
	pos := p.current().Pos
	p.advance() // '@'
	if _, err := p.expect(token.LBRACE, "'{'"); err != nil {
		return nil, err
	}
	var keys, values []ast.Expression
	for !p.check(token.RBRACE) {
		key, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ARROW, "'->'"); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
		values = append(values, value)
		if p.match(token.COMMA) {
			if p.check(token.RBRACE) {
				break
			}
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	return &ast.RecordLit{Keys: keys, Values: values, Position: pos}, nil
}
