package markup

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError reports a malformed or unrecognized character reference.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("markup: %s at offset %d", e.Msg, e.Offset)
}

// Tokenizer walks a markup string and produces tokens in document order.
// It is single-use: construct a new Tokenizer to re-scan the same input.
type Tokenizer struct {
	input string
	pos   int
}

// NewTokenizer returns a Tokenizer positioned at the start of input.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Next returns the next token, or io.EOF once the input is exhausted.
// Comments, doctype declarations and processing instructions are skipped.
func (z *Tokenizer) Next() (Token, error) {
	for z.pos < len(z.input) {
		switch z.input[z.pos] {
		case '<':
			rest := z.input[z.pos+1:]
			switch {
			case strings.HasPrefix(rest, "!--"):
				z.skipComment()
			case len(rest) > 0 && (rest[0] == '!' || rest[0] == '?'):
				z.skipDeclaration()
			case len(rest) > 0 && rest[0] == '/':
				return z.readEndTag(), nil
			case len(rest) > 0 && isNameStart(rest[0]):
				return z.readStartTag(), nil
			default:
				// a '<' that opens nothing is literal text
				return z.readText(), nil
			}
		case '&':
			if z.referenceAhead() {
				return z.readReference()
			}
			return z.readText(), nil
		default:
			return z.readText(), nil
		}
	}
	return Token{}, io.EOF
}

// referenceAhead reports whether the '&' at the current position starts
// something that looks like a character reference. A bare ampersand is text.
func (z *Tokenizer) referenceAhead() bool {
	if z.pos+1 >= len(z.input) {
		return false
	}
	c := z.input[z.pos+1]
	return c == '#' || isLetter(c)
}

// readText consumes at least one byte and runs to the next '<' or '&'.
func (z *Tokenizer) readText() Token {
	start := z.pos
	z.pos++
	for z.pos < len(z.input) && z.input[z.pos] != '<' && z.input[z.pos] != '&' {
		z.pos++
	}
	return Token{Type: TextToken, Text: z.input[start:z.pos]}
}

// readReference consumes a named entity or numeric character reference.
// Position is on the '&'.
func (z *Tokenizer) readReference() (Token, error) {
	start := z.pos
	z.pos++ // '&'
	if z.pos < len(z.input) && z.input[z.pos] == '#' {
		z.pos++
		hex := false
		if z.pos < len(z.input) && (z.input[z.pos] == 'x' || z.input[z.pos] == 'X') {
			hex = true
			z.pos++
		}
		payload := z.readWhile(isAlnum)
		if z.pos < len(z.input) && z.input[z.pos] == ';' {
			z.pos++
		}
		base := 10
		if hex {
			base = 16
		}
		n, err := strconv.ParseInt(payload, base, 32)
		if err != nil {
			return Token{}, &ParseError{
				Offset: start,
				Msg:    fmt.Sprintf("malformed character reference %q", z.input[start:z.pos]),
			}
		}
		return Token{Type: CharRefToken, Text: string(rune(n)), Hex: hex}, nil
	}

	name := z.readWhile(isAlnum)
	if z.pos < len(z.input) && z.input[z.pos] == ';' {
		z.pos++
	}
	code, ok := entityCodepoints[name]
	if !ok {
		return Token{}, &ParseError{
			Offset: start,
			Msg:    fmt.Sprintf("unrecognized entity &%s;", name),
		}
	}
	return Token{Type: EntityRefToken, Name: name, Text: string(code)}, nil
}

// readStartTag consumes '<name attr=val ...>' with optional '/>'.
// Tag and attribute names are lower-cased; attribute values get lenient
// reference decoding. Runs to '>' or end of input, whichever comes first.
func (z *Tokenizer) readStartTag() Token {
	z.pos++ // '<'
	tok := Token{Type: StartTagToken, Name: strings.ToLower(z.readWhile(isNameByte))}
	for z.pos < len(z.input) {
		z.skipSpace()
		if z.pos >= len(z.input) {
			break
		}
		c := z.input[z.pos]
		if c == '>' {
			z.pos++
			break
		}
		if c == '/' {
			z.pos++
			if z.pos < len(z.input) && z.input[z.pos] == '>' {
				tok.SelfClosing = true
				z.pos++
				return tok
			}
			continue
		}
		key := z.readWhile(isAttrNameByte)
		if key == "" {
			// stray byte inside the tag, step over it
			z.pos++
			continue
		}
		attr := Attribute{Key: strings.ToLower(key)}
		z.skipSpace()
		if z.pos < len(z.input) && z.input[z.pos] == '=' {
			z.pos++
			z.skipSpace()
			attr.Val = decodeRefs(z.readAttrValue())
		}
		tok.Attrs = append(tok.Attrs, attr)
	}
	return tok
}

// readAttrValue consumes a quoted or unquoted attribute value.
func (z *Tokenizer) readAttrValue() string {
	if z.pos >= len(z.input) {
		return ""
	}
	if q := z.input[z.pos]; q == '"' || q == '\'' {
		z.pos++
		start := z.pos
		for z.pos < len(z.input) && z.input[z.pos] != q {
			z.pos++
		}
		val := z.input[start:z.pos]
		if z.pos < len(z.input) {
			z.pos++ // closing quote
		}
		return val
	}
	start := z.pos
	for z.pos < len(z.input) && !isSpace(z.input[z.pos]) && z.input[z.pos] != '>' {
		z.pos++
	}
	return z.input[start:z.pos]
}

// readEndTag consumes '</name>'. Position is on the '<'.
func (z *Tokenizer) readEndTag() Token {
	z.pos += 2 // '</'
	name := strings.ToLower(z.readWhile(isNameByte))
	for z.pos < len(z.input) && z.input[z.pos] != '>' {
		z.pos++
	}
	if z.pos < len(z.input) {
		z.pos++
	}
	return Token{Type: EndTagToken, Name: name}
}

func (z *Tokenizer) skipComment() {
	if idx := strings.Index(z.input[z.pos+4:], "-->"); idx >= 0 {
		z.pos += 4 + idx + 3
	} else {
		z.pos = len(z.input)
	}
}

func (z *Tokenizer) skipDeclaration() {
	if idx := strings.IndexByte(z.input[z.pos:], '>'); idx >= 0 {
		z.pos += idx + 1
	} else {
		z.pos = len(z.input)
	}
}

func (z *Tokenizer) skipSpace() {
	for z.pos < len(z.input) && isSpace(z.input[z.pos]) {
		z.pos++
	}
}

func (z *Tokenizer) readWhile(pred func(byte) bool) string {
	start := z.pos
	for z.pos < len(z.input) && pred(z.input[z.pos]) {
		z.pos++
	}
	return z.input[start:z.pos]
}

// decodeRefs resolves character references in attribute values. Unlike
// character data, unknown or malformed references pass through verbatim.
func decodeRefs(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '&' {
			b.WriteByte(s[i])
			i++
			continue
		}
		z := NewTokenizer(s[i:])
		if !z.referenceAhead() {
			b.WriteByte(s[i])
			i++
			continue
		}
		tok, err := z.readReference()
		if err != nil {
			b.WriteByte(s[i])
			i++
			continue
		}
		b.WriteString(tok.Text)
		i += z.pos
	}
	return b.String()
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9')
}

func isNameStart(c byte) bool {
	return isLetter(c)
}

func isNameByte(c byte) bool {
	return isAlnum(c) || c == '-' || c == ':'
}

func isAttrNameByte(c byte) bool {
	return isAlnum(c) || c == '-' || c == ':' || c == '_' || c == '.'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
