package jsonvalue

// DefaultMaxDepth is the nesting limit used by Parse. Arrays and objects nested more deeply than this
// cause a parse error rather than unbounded recursion.
const DefaultMaxDepth = 512

// ParseOptions customizes the behavior of ParseWithOptions.
type ParseOptions struct {
	// MaxDepth is the maximum nesting depth of arrays and objects. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Parse parses a JSON text into a Value.
//
// Any JSON value is allowed at the top level. Whitespace before and after the value is ignored; anything
// else after the value is an error. If an object contains the same key more than once, the last value
// wins. If parsing fails, the error is a *ParseError.
func Parse(text string) (Value, error) {
	return ParseWithOptions(text, ParseOptions{})
}

// ParseWithOptions is the same as Parse, with nonstandard options.
func ParseWithOptions(text string, options ParseOptions) (Value, error) {
	maxDepth := options.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	p := &parser{lex: newLexer(text), maxDepth: maxDepth}
	v, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	tok, err := p.next()
	if err != nil {
		return Value{}, err
	}
	if tok.typ != tokEOF {
		return Value{}, p.lex.errorAt(tok.offset, "unexpected trailing content")
	}
	return v, nil
}

type parser struct {
	lex      *lexer
	buf      *token
	depth    int
	maxDepth int
}

// The parser methods return *ParseError rather than error so that a nil result is never wrapped in a
// non-nil interface; Parse converts at the boundary.

func (p *parser) next() (token, *ParseError) {
	if p.buf != nil {
		t := *p.buf
		p.buf = nil
		return t, nil
	}
	return p.lex.nextToken()
}

func (p *parser) peek() (token, *ParseError) {
	if p.buf != nil {
		return *p.buf, nil
	}
	t, err := p.lex.nextToken()
	if err != nil {
		return token{}, err
	}
	p.buf = &t
	return t, nil
}

func (p *parser) unexpected(t token, expected string) *ParseError {
	if t.typ == tokEOF {
		return p.lex.errorAt(t.offset, "unexpected end of input, expected "+expected)
	}
	return p.lex.errorAt(t.offset, "unexpected "+t.typ.String()+", expected "+expected)
}

func (p *parser) parseValue() (Value, *ParseError) {
	t, err := p.next()
	if err != nil {
		return Value{}, err
	}
	switch t.typ {
	case tokLBrace:
		return p.parseObject(t)
	case tokLBracket:
		return p.parseArray(t)
	case tokString:
		return String(t.text), nil
	case tokNumber:
		return NumberOf(t.number), nil
	case tokTrue:
		return Bool(true), nil
	case tokFalse:
		return Bool(false), nil
	case tokNull:
		return Null(), nil
	default:
		return Value{}, p.unexpected(t, "a JSON value")
	}
}

func (p *parser) enter(open token) *ParseError {
	p.depth++
	if p.depth > p.maxDepth {
		return p.lex.errorAt(open.offset, "too deeply nested")
	}
	return nil
}

func (p *parser) parseObject(open token) (Value, *ParseError) {
	if err := p.enter(open); err != nil {
		return Value{}, err
	}
	defer func() { p.depth-- }()

	builder := ObjectBuild()
	t, err := p.peek()
	if err != nil {
		return Value{}, err
	}
	if t.typ == tokRBrace {
		_, _ = p.next()
		return builder.Build(), nil
	}
	for {
		kt, err := p.next()
		if err != nil {
			return Value{}, err
		}
		if kt.typ != tokString {
			return Value{}, p.unexpected(kt, "string key")
		}
		ct, err := p.next()
		if err != nil {
			return Value{}, err
		}
		if ct.typ != tokColon {
			return Value{}, p.unexpected(ct, "':' after object key")
		}
		v, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		builder.Set(kt.text, v)

		nt, err := p.next()
		if err != nil {
			return Value{}, err
		}
		switch nt.typ {
		case tokComma:
			continue
		case tokRBrace:
			return builder.Build(), nil
		default:
			return Value{}, p.unexpected(nt, "',' or '}' in object")
		}
	}
}

func (p *parser) parseArray(open token) (Value, *ParseError) {
	if err := p.enter(open); err != nil {
		return Value{}, err
	}
	defer func() { p.depth-- }()

	arr := make([]Value, 0, 4)
	t, err := p.peek()
	if err != nil {
		return Value{}, err
	}
	if t.typ == tokRBracket {
		_, _ = p.next()
		return Value{kind: ArrayKind, arrayValue: arr}, nil
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		arr = append(arr, v)
		nt, err := p.next()
		if err != nil {
			return Value{}, err
		}
		switch nt.typ {
		case tokComma:
			continue
		case tokRBracket:
			return Value{kind: ArrayKind, arrayValue: arr}, nil
		default:
			return Value{}, p.unexpected(nt, "',' or ']' in array")
		}
	}
}
