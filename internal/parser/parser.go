// Package parser implements a Pratt (precedence-climbing) recursive-descent
// parser that turns a lexer.Lexer token stream into an ast.Expr, following
// the grammar and precedence table of the language specification.
package parser

import (
	"strconv"

	"github.com/jacklang/jack/internal/ast"
	"github.com/jacklang/jack/internal/errors"
	"github.com/jacklang/jack/internal/lexer"
)

// Precedence levels, lowest to highest, matching the grammar's
// `|| < && < ==,!= < +,- < *,/,% < unary < postfix < atoms` table.
const (
	LOWEST int = iota
	OR_PREC
	AND_PREC
	EQUALITY
	SUM
	PRODUCT
	PREFIX
	POSTFIX
)

var precedences = map[lexer.TokenType]int{
	lexer.OR:      OR_PREC,
	lexer.AND:     AND_PREC,
	lexer.EQ:      EQUALITY,
	lexer.NEQ:     EQUALITY,
	lexer.PLUS:    SUM,
	lexer.MINUS:   SUM,
	lexer.STAR:    PRODUCT,
	lexer.SLASH:   PRODUCT,
	lexer.PERCENT: PRODUCT,
	lexer.LPAREN:  POSTFIX,
	lexer.DOT:     POSTFIX,
	lexer.LBRACKET: POSTFIX,
}

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

// Parser holds lexer lookahead state and the prefix/infix dispatch tables.
type Parser struct {
	l         *lexer.Lexer
	curToken  lexer.Token
	peekToken lexer.Token
	errs      []error

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// New creates a Parser reading tokens from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[lexer.TokenType]prefixParseFn{
		lexer.IDENT:    p.parseVariable,
		lexer.NUMBER:   p.parseNumber,
		lexer.STRING:   p.parseString,
		lexer.TRUE:     p.parseBool,
		lexer.FALSE:    p.parseBool,
		lexer.NULL:     p.parseNull,
		lexer.MINUS:    p.parseUnaryOp,
		lexer.BANG:     p.parseUnaryOp,
		lexer.LPAREN:   p.parseGroupedExpr,
		lexer.LBRACKET: p.parseArray,
		lexer.LBRACE:   p.parseDict,
		lexer.IF:       p.parseIf,
		lexer.LOCAL:    p.parseLocal,
		lexer.FUNCTION: p.parseFunction,
	}

	p.infixParseFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS:     p.parseBinaryOp,
		lexer.MINUS:    p.parseBinaryOp,
		lexer.STAR:     p.parseBinaryOp,
		lexer.SLASH:    p.parseBinaryOp,
		lexer.PERCENT:  p.parseBinaryOp,
		lexer.EQ:       p.parseBinaryOp,
		lexer.NEQ:      p.parseBinaryOp,
		lexer.AND:      p.parseBinaryOp,
		lexer.OR:       p.parseBinaryOp,
		lexer.LPAREN:   p.parseCall,
		lexer.DOT:      p.parseFieldAccess,
		lexer.LBRACKET: p.parseIndexAccess,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every parse error accumulated so far.
func (p *Parser) Errors() []error { return p.errs }

// ParseProgram parses a complete Jack program: exactly one expression
// followed by end of input.
func (p *Parser) ParseProgram() ast.Expr {
	if p.curTokenIs(lexer.EOF) {
		p.errorf("empty program: expected an expression")
		return nil
	}
	expr := p.parseExpression(LOWEST)
	if !p.curTokenIs(lexer.EOF) {
		if !p.expectPeek(lexer.EOF) {
			// expectPeek already recorded an error; fall through with what we have.
		}
	}
	return expr
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
	if p.peekToken.Type == lexer.ILLEGAL {
		// Surface lexical errors as soon as they're seen, without aborting
		// the rest of parsing — the parser keeps going on a best-effort basis.
		p.errs = append(p.errs, errors.Lexical(p.pos(p.peekToken), "unrecognized input %q", p.peekToken.Literal))
	}
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.errorf("expected next token to be %s, got %s (%q) instead", t, p.peekToken.Type, p.peekToken.Literal)
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) pos(tok lexer.Token) ast.Pos {
	return ast.Pos{File: tok.File, Line: tok.Line, Column: tok.Column}
}

func (p *Parser) curPos() ast.Pos { return p.pos(p.curToken) }

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errs = append(p.errs, errors.Parse(p.curPos(), format, args...))
}

// parseExpression is the Pratt-parsing core: parse a prefix expression then
// repeatedly fold in infix/postfix operators whose precedence beats the
// caller's floor.
func (p *Parser) parseExpression(precedence int) ast.Expr {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errorf("unexpected token %s (%q); expected an expression", p.curToken.Type, p.curToken.Literal)
		return nil
	}
	left := prefix()

	for precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseVariable() ast.Expr {
	return &ast.Variable{Name: p.curToken.Literal, Pos: p.curPos()}
}

func (p *Parser) parseNumber() ast.Expr {
	v, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.errorf("invalid number literal %q", p.curToken.Literal)
		return nil
	}
	return &ast.Number{Value: v, Pos: p.curPos()}
}

func (p *Parser) parseString() ast.Expr {
	return &ast.String{Value: p.curToken.Literal, Pos: p.curPos()}
}

func (p *Parser) parseBool() ast.Expr {
	return &ast.Bool{Value: p.curTokenIs(lexer.TRUE), Pos: p.curPos()}
}

func (p *Parser) parseNull() ast.Expr {
	return &ast.Null{Pos: p.curPos()}
}

func (p *Parser) parseUnaryOp() ast.Expr {
	pos := p.curPos()
	var op ast.UnaryOpKind
	switch p.curToken.Type {
	case lexer.MINUS:
		op = ast.Neg
	case lexer.BANG:
		op = ast.Not
	}
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	return &ast.UnaryOp{Op: op, Operand: operand, Pos: pos}
}

func (p *Parser) parseGroupedExpr() ast.Expr {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseArray() ast.Expr {
	pos := p.curPos()
	items := []ast.Expr{}
	if p.peekTokenIs(lexer.RBRACKET) {
		p.nextToken()
		return &ast.Array{Items: items, Pos: pos}
	}
	p.nextToken()
	items = append(items, p.parseExpression(LOWEST))
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		items = append(items, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(lexer.RBRACKET) {
		return nil
	}
	return &ast.Array{Items: items, Pos: pos}
}

// parseDict parses a dict literal. Each entry is either `key: Expr` or, by
// the method-sugar rule, `key(params): Expr`, which desugars directly into
// `key: function(params) Expr`.
func (p *Parser) parseDict() ast.Expr {
	pos := p.curPos()
	entries := []ast.DictEntry{}
	if p.peekTokenIs(lexer.RBRACE) {
		p.nextToken()
		return &ast.Dict{Entries: entries, Pos: pos}
	}
	p.nextToken()
	entries = append(entries, p.parseDictEntry())
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		entries = append(entries, p.parseDictEntry())
	}
	if !p.expectPeek(lexer.RBRACE) {
		return nil
	}
	return &ast.Dict{Entries: entries, Pos: pos}
}

func (p *Parser) parseDictEntry() ast.DictEntry {
	var key string
	switch p.curToken.Type {
	case lexer.IDENT:
		key = p.curToken.Literal
	case lexer.STRING:
		key = p.curToken.Literal
	default:
		p.errorf("expected a dict key (identifier or string), got %s", p.curToken.Type)
		return ast.DictEntry{}
	}
	fnPos := p.curPos()

	if p.peekTokenIs(lexer.LPAREN) {
		// name(params): E  ==  name: function(params) E
		p.nextToken()
		params := p.parseParamList()
		if !p.expectPeek(lexer.COLON) {
			return ast.DictEntry{Key: key}
		}
		p.nextToken()
		body := p.parseExpression(LOWEST)
		return ast.DictEntry{Key: key, Value: &ast.Function{Params: params, Body: body, Pos: fnPos}}
	}

	if !p.expectPeek(lexer.COLON) {
		return ast.DictEntry{Key: key}
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	return ast.DictEntry{Key: key, Value: value}
}

func (p *Parser) parseIf() ast.Expr {
	pos := p.curPos()
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.THEN) {
		return nil
	}
	p.nextToken()
	then := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.ELSE) {
		return nil
	}
	p.nextToken()
	els := p.parseExpression(LOWEST)
	return &ast.If{Cond: cond, Then: then, Else: els, Pos: pos}
}

// parseLocal parses `local name = bound; body`, with the function-binding
// sugar `local name(params) = E1; E2` desugaring to
// `local name = function(params) E1; E2`.
func (p *Parser) parseLocal() ast.Expr {
	pos := p.curPos()
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	fnPos := p.curPos()

	var bound ast.Expr
	if p.peekTokenIs(lexer.LPAREN) {
		p.nextToken()
		params := p.parseParamList()
		if !p.expectPeek(lexer.ASSIGN) {
			return nil
		}
		p.nextToken()
		body := p.parseExpression(LOWEST)
		bound = &ast.Function{Params: params, Body: body, Pos: fnPos}
	} else {
		if !p.expectPeek(lexer.ASSIGN) {
			return nil
		}
		p.nextToken()
		bound = p.parseExpression(LOWEST)
	}

	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}
	p.nextToken()
	body := p.parseExpression(LOWEST)
	return &ast.Local{Name: name, Bound: bound, Body: body, Pos: pos}
}

func (p *Parser) parseFunction() ast.Expr {
	pos := p.curPos()
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	params := p.parseParamList()
	p.nextToken()
	body := p.parseExpression(LOWEST)
	return &ast.Function{Params: params, Body: body, Pos: pos}
}

// parseParamList parses `(a, b, c)` starting with curToken == LPAREN,
// leaving curToken on the closing RPAREN.
func (p *Parser) parseParamList() []string {
	params := []string{}
	if p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		return params
	}
	if !p.expectPeek(lexer.IDENT) {
		return params
	}
	params = append(params, p.curToken.Literal)
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		if !p.expectPeek(lexer.IDENT) {
			return params
		}
		params = append(params, p.curToken.Literal)
	}
	if !p.expectPeek(lexer.RPAREN) {
		return params
	}
	return params
}

func (p *Parser) parseBinaryOp(left ast.Expr) ast.Expr {
	pos := p.curPos()
	var op ast.BinaryOpKind
	switch p.curToken.Type {
	case lexer.PLUS:
		op = ast.Add
	case lexer.MINUS:
		op = ast.Sub
	case lexer.STAR:
		op = ast.Mul
	case lexer.SLASH:
		op = ast.Div
	case lexer.PERCENT:
		op = ast.Mod
	case lexer.EQ:
		op = ast.Eq
	case lexer.NEQ:
		op = ast.NotEq
	case lexer.AND:
		op = ast.And
	case lexer.OR:
		op = ast.Or
	}
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	return &ast.BinaryOp{Op: op, Left: left, Right: right, Pos: pos}
}

func (p *Parser) parseCall(callee ast.Expr) ast.Expr {
	pos := p.curPos()
	args := []ast.Expr{}
	if p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		return &ast.FunctionCall{Callee: callee, Args: args, Pos: pos}
	}
	p.nextToken()
	args = append(args, p.parseExpression(LOWEST))
	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return &ast.FunctionCall{Callee: callee, Args: args, Pos: pos}
}

func (p *Parser) parseFieldAccess(target ast.Expr) ast.Expr {
	pos := p.curPos()
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	return &ast.FieldAccess{Target: target, Name: p.curToken.Literal, Pos: pos}
}

func (p *Parser) parseIndexAccess(target ast.Expr) ast.Expr {
	pos := p.curPos()
	p.nextToken()
	idx := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RBRACKET) {
		return nil
	}
	return &ast.IndexAccess{Target: target, Index: idx, Pos: pos}
}
