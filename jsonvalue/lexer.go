package jsonvalue

import (
	"strings"
	"unicode/utf8"
)

type tokenType int

const (
	tokEOF      tokenType = iota
	tokLBrace             // {
	tokRBrace             // }
	tokLBracket           // [
	tokRBracket           // ]
	tokColon              // :
	tokComma              // ,
	tokString
	tokNumber
	tokTrue
	tokFalse
	tokNull
)

func (t tokenType) String() string {
	switch t {
	case tokEOF:
		return "end of input"
	case tokLBrace:
		return "'{'"
	case tokRBrace:
		return "'}'"
	case tokLBracket:
		return "'['"
	case tokRBracket:
		return "']'"
	case tokColon:
		return "':'"
	case tokComma:
		return "','"
	case tokString:
		return "string"
	case tokNumber:
		return "number"
	case tokTrue:
		return "true"
	case tokFalse:
		return "false"
	default:
		return "null"
	}
}

type token struct {
	typ    tokenType
	offset int
	text   string
	number Number
}

type lexer struct {
	src string
	pos int
}

func newLexer(src string) *lexer { return &lexer{src: src} }

func (l *lexer) errorAt(offset int, message string) *ParseError {
	return newParseError(l.src, offset, message)
}

func (l *lexer) skipWS() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\n', '\r', '\t':
			l.pos++
		default:
			return
		}
	}
}

func (l *lexer) nextToken() (token, *ParseError) {
	l.skipWS()
	start := l.pos
	if l.pos >= len(l.src) {
		return token{typ: tokEOF, offset: start}, nil
	}
	ch := l.src[l.pos]
	switch ch {
	case '{':
		l.pos++
		return token{typ: tokLBrace, offset: start}, nil
	case '}':
		l.pos++
		return token{typ: tokRBrace, offset: start}, nil
	case '[':
		l.pos++
		return token{typ: tokLBracket, offset: start}, nil
	case ']':
		l.pos++
		return token{typ: tokRBracket, offset: start}, nil
	case ':':
		l.pos++
		return token{typ: tokColon, offset: start}, nil
	case ',':
		l.pos++
		return token{typ: tokComma, offset: start}, nil
	case '"':
		l.pos++
		s, err := l.scanString()
		if err != nil {
			return token{}, err
		}
		return token{typ: tokString, offset: start, text: s}, nil
	case 't':
		return l.matchLiteral("true", tokTrue)
	case 'f':
		return l.matchLiteral("false", tokFalse)
	case 'n':
		return l.matchLiteral("null", tokNull)
	}
	if ch == '-' || isDigit(ch) {
		n, end, err := scanNumberLiteral(l.src, start)
		if err != nil {
			return token{}, l.errorAt(end, err.Error())
		}
		// "1true" or "12abc" is a malformed number rather than two tokens
		if end < len(l.src) && isIdentByte(l.src[end]) {
			return token{}, l.errorAt(end, "invalid number: unexpected characters")
		}
		l.pos = end
		return token{typ: tokNumber, offset: start, number: n}, nil
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return token{}, l.errorAt(start, "unexpected character "+quoteRune(r))
}

func (l *lexer) matchLiteral(word string, typ tokenType) (token, *ParseError) {
	start := l.pos
	end := start + len(word)
	if end > len(l.src) || l.src[start:end] != word || (end < len(l.src) && isIdentByte(l.src[end])) {
		return token{}, l.errorAt(start, "invalid literal, expected "+word)
	}
	l.pos = end
	return token{typ: typ, offset: start}, nil
}

func isIdentByte(ch byte) bool {
	return ch == '_' || ch == '.' || ch == '+' || ch == '-' || isDigit(ch) ||
		(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func quoteRune(r rune) string {
	if r == utf8.RuneError {
		return "(invalid UTF-8)"
	}
	return "'" + string(r) + "'"
}

// scanString reads the rest of a string literal; the opening quote has already been consumed.
func (l *lexer) scanString() (string, *ParseError) {
	var sb strings.Builder
	for {
		if l.pos >= len(l.src) {
			return "", l.errorAt(l.pos, "unterminated string")
		}
		ch := l.src[l.pos]
		switch {
		case ch == '"':
			l.pos++
			return sb.String(), nil
		case ch == '\\':
			if err := l.scanEscape(&sb); err != nil {
				return "", err
			}
		case ch < 0x20:
			return "", l.errorAt(l.pos, "control character in string")
		case ch < utf8.RuneSelf:
			sb.WriteByte(ch)
			l.pos++
		default:
			r, w := utf8.DecodeRuneInString(l.src[l.pos:])
			if r == utf8.RuneError && w == 1 {
				return "", l.errorAt(l.pos, "invalid UTF-8 in string")
			}
			sb.WriteString(l.src[l.pos : l.pos+w])
			l.pos += w
		}
	}
}

func (l *lexer) scanEscape(sb *strings.Builder) *ParseError {
	escStart := l.pos
	l.pos++ // the backslash
	if l.pos >= len(l.src) {
		return l.errorAt(l.pos, "unterminated string")
	}
	esc := l.src[l.pos]
	l.pos++
	switch esc {
	case '"', '\\', '/':
		sb.WriteByte(esc)
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'u':
		v, err := l.scanHex4()
		if err != nil {
			return err
		}
		switch {
		case v >= 0xD800 && v <= 0xDBFF:
			// a high surrogate must be followed by an escaped low surrogate
			if !strings.HasPrefix(l.src[l.pos:], `\u`) {
				return l.errorAt(escStart, "missing low surrogate after high surrogate")
			}
			lowStart := l.pos
			l.pos += 2
			low, err := l.scanHex4()
			if err != nil {
				return err
			}
			if low < 0xDC00 || low > 0xDFFF {
				return l.errorAt(lowStart, "invalid low surrogate")
			}
			sb.WriteRune(((v-0xD800)<<10 | (low - 0xDC00)) + 0x10000)
		case v >= 0xDC00 && v <= 0xDFFF:
			return l.errorAt(escStart, "unexpected low surrogate without high surrogate")
		default:
			sb.WriteRune(v)
		}
	default:
		return l.errorAt(escStart, "invalid escape "+quoteRune(rune(esc)))
	}
	return nil
}

func (l *lexer) scanHex4() (rune, *ParseError) {
	if l.pos+4 > len(l.src) {
		return 0, l.errorAt(l.pos, "invalid unicode escape")
	}
	var v rune
	for i := 0; i < 4; i++ {
		h := l.src[l.pos+i]
		v <<= 4
		switch {
		case h >= '0' && h <= '9':
			v += rune(h - '0')
		case h >= 'a' && h <= 'f':
			v += rune(h - 'a' + 10)
		case h >= 'A' && h <= 'F':
			v += rune(h - 'A' + 10)
		default:
			return 0, l.errorAt(l.pos+i, "invalid unicode escape")
		}
	}
	l.pos += 4
	return v, nil
}
