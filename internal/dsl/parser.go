package dsl

import "fmt"

// Parse tokenizes and parses a DSL script into a Program.
func Parse(src string) (*Program, error) {
	lx := newLexer(src)
	toks, err := lx.tokens()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	return p.parseProgram()
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) cur() token  { return p.toks[p.pos] }
func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(k tokenKind, what string) (token, error) {
	if p.cur().kind != k {
		return token{}, fmt.Errorf("dsl: line %d: expected %s, got %q", p.cur().line, what, p.cur().text)
	}
	return p.advance(), nil
}

func (p *parser) parseProgram() (*Program, error) {
	prog := &Program{}
	for {
		p.skipNewlines()
		if p.cur().kind == tokEOF {
			return prog, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
		if p.cur().kind != tokEOF {
			if _, err := p.expect(tokNewline, "newline"); err != nil {
				return nil, err
			}
		}
	}
}

func (p *parser) skipNewlines() {
	for p.cur().kind == tokNewline {
		p.advance()
	}
}

func (p *parser) parseStatement() (Statement, error) {
	nameTok, err := p.expect(tokIdent, "identifier")
	if err != nil {
		return nil, err
	}
	name := nameTok.text

	switch p.cur().kind {
	case tokAssign:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return Assignment{Target: name, Value: expr}, nil

	case tokDot:
		p.advance()
		methodTok, err := p.expect(tokIdent, "method name")
		if err != nil {
			return nil, err
		}
		args, err := p.parseCallArgs()
		if err != nil {
			return nil, err
		}
		return MethodCall{Receiver: name, Method: methodTok.text, Args: args}, nil

	case tokLParen:
		args, err := p.parseCallArgs()
		if err != nil {
			return nil, err
		}
		return Call{Func: name, Args: args}, nil

	default:
		return nil, fmt.Errorf("dsl: line %d: expected '=', '.', or '(' after %q, got %q", p.cur().line, name, p.cur().text)
	}
}

func (p *parser) parseCallArgs() ([]Expr, error) {
	if _, err := p.expect(tokLParen, "("); err != nil {
		return nil, err
	}
	var args []Expr
	if p.cur().kind == tokRParen {
		p.advance()
		return args, nil
	}
	for {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, expr)
		if p.cur().kind == tokComma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(tokRParen, ")"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *parser) parseExpr() (Expr, error) {
	switch p.cur().kind {
	case tokString:
		t := p.advance()
		return StringLit{Value: t.text}, nil
	case tokIdent:
		t := p.advance()
		return Ident{Name: t.text}, nil
	case tokLBracket:
		return p.parseList()
	default:
		return nil, fmt.Errorf("dsl: line %d: expected an expression, got %q", p.cur().line, p.cur().text)
	}
}

func (p *parser) parseList() (Expr, error) {
	if _, err := p.expect(tokLBracket, "["); err != nil {
		return nil, err
	}
	var elems []Expr
	if p.cur().kind == tokRBracket {
		p.advance()
		return ListLit{Elements: elems}, nil
	}
	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if p.cur().kind == tokComma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(tokRBracket, "]"); err != nil {
		return nil, err
	}
	return ListLit{Elements: elems}, nil
}
