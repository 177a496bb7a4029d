package markup

// TokenType identifies the kind of a Token.
type TokenType int

const (
	// StartTagToken is an opening tag like <div class="x">.
	StartTagToken TokenType = iota
	// EndTagToken is a closing tag like </div>.
	EndTagToken
	// TextToken is a run of character data between tags and references.
	TextToken
	// EntityRefToken is a named character reference like &amp;.
	EntityRefToken
	// CharRefToken is a numeric character reference like &#65; or &#x41;.
	CharRefToken
)

// Attribute is a single name/value pair on a start tag. Order of
// attributes on the tag is preserved.
type Attribute struct {
	Key string
	Val string
}

// Token is one event in the tokenized document.
//
// For EntityRefToken and CharRefToken, Text holds the resolved literal
// character so consumers can treat all three text-bearing types alike.
type Token struct {
	Type        TokenType
	Name        string // tag name, or entity name for EntityRefToken
	Attrs       []Attribute
	SelfClosing bool
	Text        string
	Hex         bool // CharRefToken only: reference was hexadecimal
}

// Attr returns the value of the named attribute and whether it was present.
func (t Token) Attr(key string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
