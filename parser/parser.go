// Package parser is used to generate the abstract syntax tree (AST) for a
// program.
//
// A parser is created by calling New() with a token stream and a Context as
// input. The parser should then be used only once, by calling Parse() to
// produce the AST. Parsing stops at the first error; no partial AST is
// returned.
package parser

import (
	stderrors "errors"

	"github.com/gpoesia/loopye-sub000/ast"
	"github.com/gpoesia/loopye-sub000/errors"
	"github.com/gpoesia/loopye-sub000/internal/lexer"
	"github.com/gpoesia/loopye-sub000/internal/token"
)

// DefaultMaxDepth is the default maximum block nesting depth.
const DefaultMaxDepth = 200

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithLocale sets the language of error messages.
func WithLocale(locale errors.Locale) Option {
	return func(p *Parser) {
		p.locale = locale
	}
}

// WithMaxDepth sets the maximum nesting depth of blocks.
// This prevents stack overflow on deeply nested input.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// Parse lexes and parses input, validating it against ctx. On failure the
// returned error is an *errors.List whose entries carry the offending source
// line.
func Parse(input string, ctx *Context, options ...Option) (*ast.Program, error) {
	var probe Parser
	for _, opt := range options {
		opt(&probe)
	}
	locale := probe.locale
	if locale == "" {
		locale = errors.DefaultLocale
	}

	stream, err := lexer.Tokenize(input, lexer.WithLocale(locale))
	if err != nil {
		return nil, asList(err, input)
	}
	program, err := New(stream, ctx, options...).Parse()
	if err != nil {
		return nil, asList(err, input)
	}
	return program, nil
}

func asList(err error, input string) error {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return errors.NewList(e.WithSource(input))
	}
	return err
}

// Parser builds an AST from a token stream.
type Parser struct {
	stream   *token.Stream
	ctx      *Context
	locale   errors.Locale
	depth    int
	maxDepth int
}

// New returns a Parser for the given token stream.
func New(stream *token.Stream, ctx *Context, options ...Option) *Parser {
	if ctx == nil {
		ctx = NewContext(nil, nil)
	}
	p := &Parser{
		stream:   stream,
		ctx:      ctx,
		locale:   errors.DefaultLocale,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Parse parses the whole token stream as a top-level Program. The returned
// error, if any, is an *errors.Error.
func (p *Parser) Parse() (*ast.Program, error) {
	program, err := p.parseProgram(true)
	if err != nil {
		return nil, err
	}
	return program, nil
}

// parseProgram parses constructs until the stream ends or no construct
// matches. A top-level program must consume every token.
func (p *Parser) parseProgram(topLevel bool) (*ast.Program, error) {
	start := p.stream.NextLocation()
	program := &ast.Program{}
	for !p.stream.Ended() {
		node, err := p.parseConstruct()
		if err != nil {
			return nil, err
		}
		if node == nil {
			break
		}
		program.Stmts = append(program.Stmts, node)
	}
	if topLevel && !p.stream.Ended() {
		next := p.stream.Peek(0)
		return nil, p.errorf(errors.UnknownConstruct, next.Range, errors.MsgUnknownConstruct, next.String())
	}
	if n := len(program.Stmts); n > 0 {
		program.Loc = program.Stmts[0].Location().Join(program.Stmts[n-1].Location())
	} else {
		program.Loc = token.At(start.Begin)
	}
	return program, nil
}

// parseConstruct parses the construct starting at the next token. It
// returns a nil node if no construct starts there.
func (p *Parser) parseConstruct() (ast.Node, error) {
	switch p.stream.Peek(0).Type {
	case token.LBRACE:
		return p.parseBlock()
	case token.INT:
		return p.parseLoop()
	case token.IF:
		return p.parseConditional()
	case token.IDENT:
		if p.stream.Peek(1).Type == token.QUESTION {
			return p.parseShortConditional()
		}
	case token.WHILE:
		return p.parseConditionalLoop()
	case token.ACTION:
		return p.parseAction()
	}
	return nil, nil
}

// block := "{" program "}"
func (p *Parser) parseBlock() (*ast.Block, error) {
	lbrace, err := p.expect(token.LBRACE)
	if err != nil {
		return nil, err
	}
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return nil, p.errorf(errors.UnknownConstruct, lbrace.Range, errors.MsgMaxDepth, p.maxDepth)
	}
	body, err := p.parseProgram(false)
	if err != nil {
		return nil, err
	}
	if !p.stream.PeekIs(token.RBRACE) {
		stuck := p.stream.NextLocation()
		return nil, p.errorf(errors.MissingBlockTerminator,
			token.NewRange(lbrace.Range.Begin, stuck.End), errors.MsgMissingBlockTerminator)
	}
	rbrace := p.stream.Next()
	return &ast.Block{Loc: lbrace.Range.Join(rbrace.Range), Body: body}, nil
}

// loop := INTEGER block
func (p *Parser) parseLoop() (*ast.Loop, error) {
	count := p.stream.Next()
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.Loop{Loc: count.Range.Join(body.Loc), TripCount: count.Value, Body: body}, nil
}

// conditional := "if" sensor block ("else" block)?
//
// The sensor is validated before the body is parsed.
func (p *Parser) parseConditional() (*ast.Conditional, error) {
	kw := p.stream.Next()
	sensor, err := p.parseSensor()
	if err != nil {
		return nil, err
	}
	if err := p.checkSensor(sensor); err != nil {
		return nil, err
	}
	return p.parseBranches(kw, sensor)
}

// shortConditional := IDENTIFIER "?" block ("else" block)?
func (p *Parser) parseShortConditional() (*ast.Conditional, error) {
	sensor := p.stream.Next()
	if err := p.checkSensor(sensor); err != nil {
		return nil, err
	}
	p.stream.Next() // "?"
	return p.parseBranches(sensor, sensor)
}

func (p *Parser) parseBranches(first, sensor token.Token) (*ast.Conditional, error) {
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node := &ast.Conditional{Loc: first.Range.Join(then.Loc), Variable: sensor.Literal, Then: then}
	if p.stream.PeekIs(token.ELSE) {
		p.stream.Next()
		otherwise, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Else = otherwise
		node.Loc = node.Loc.Join(otherwise.Loc)
	}
	return node, nil
}

// conditionalLoop := ("while" | "ENQ") sensor block
//
// The sensor is validated only after the body has been parsed, so errors in
// the body are reported first.
func (p *Parser) parseConditionalLoop() (*ast.ConditionalLoop, error) {
	kw := p.stream.Next()
	sensor, err := p.parseSensor()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if err := p.checkSensor(sensor); err != nil {
		return nil, err
	}
	return &ast.ConditionalLoop{Loc: kw.Range.Join(body.Loc), Variable: sensor.Literal, Body: body}, nil
}

// action := ACTION_LETTER
func (p *Parser) parseAction() (*ast.Action, error) {
	tok := p.stream.Next()
	if !p.ctx.SupportsAction(tok.Literal) {
		err := p.errorf(errors.InvalidAction, tok.Range, errors.MsgInvalidAction,
			tok.Literal, p.locale.List(p.ctx.Actions()))
		err.Hint = p.locale.FormatSuggestions(errors.SuggestSimilar(tok.Literal, p.ctx.Actions()))
		return nil, err
	}
	return &ast.Action{Loc: tok.Range, Name: tok.Literal}, nil
}

// sensor := IDENTIFIER | "(" IDENTIFIER ")"
func (p *Parser) parseSensor() (token.Token, error) {
	if !p.stream.PeekIs(token.LPAREN) {
		return p.expect(token.IDENT)
	}
	p.stream.Next()
	sensor, err := p.expect(token.IDENT)
	if err != nil {
		return sensor, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return sensor, err
	}
	return sensor, nil
}

func (p *Parser) checkSensor(sensor token.Token) error {
	if p.ctx.SupportsSensor(sensor.Literal) {
		return nil
	}
	err := p.errorf(errors.InvalidSensor, sensor.Range, errors.MsgInvalidSensor,
		sensor.Literal, p.locale.List(p.ctx.Sensors()))
	err.Hint = p.locale.FormatSuggestions(errors.SuggestSimilar(sensor.Literal, p.ctx.Sensors()))
	return err
}

// expect consumes a token of type t, reporting a mismatch as an unknown
// construct at the offending token.
func (p *Parser) expect(t token.Type) (token.Token, error) {
	tok, err := p.stream.Expect(t)
	if err == nil {
		return tok, nil
	}
	var mismatch *token.MismatchError
	if !stderrors.As(err, &mismatch) {
		return tok, err
	}
	return tok, p.errorf(errors.UnknownConstruct, mismatch.Found.Range, errors.MsgUnexpectedToken,
		token.Describe(mismatch.Expected), mismatch.Found.String())
}

func (p *Parser) errorf(kind errors.Kind, rng token.Range, id errors.MessageID, args ...any) *errors.Error {
	return errors.Newf(p.locale, kind, rng, id, args...)
}
