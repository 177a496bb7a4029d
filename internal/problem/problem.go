package problem

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lovrop/codeforces-scraper/internal/markup"
)

// Node is one element of the recorded sample subtree.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Children []*Node
	Data     string
}

// Example is one sample test: the literal input and expected output text.
type Example struct {
	Input  string
	Output string
}

// Structural errors: the page's shape violated the extractor's assumptions.
// These are loud on purpose — silently mis-pairing inputs with outputs
// would be worse than failing.
var (
	ErrMultipleSampleRoots = errors.New("multiple sample containers in one page")
	ErrOddPreBlocks        = errors.New("odd number of preformatted blocks")
)

// Extract parses a problem page and returns its sample input/output pairs
// in document order. A page without a sample container yields an empty
// list. Known markup defects are repaired before tokenizing.
func Extract(page string) ([]Example, error) {
	ex := &extractor{}
	z := markup.NewTokenizer(Repair(page))
	for {
		tok, err := z.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		ex.feed(tok)
	}
	return ex.examples()
}

// extractor builds the sample subtree from the token stream. State is owned
// by a single Extract call; instances are not reused.
type extractor struct {
	recording bool
	stack     []*Node
	roots     []*Node
}

func (e *extractor) feed(tok markup.Token) {
	switch tok.Type {
	case markup.StartTagToken:
		e.startTag(tok)
	case markup.EndTagToken:
		e.endTag()
	case markup.TextToken, markup.EntityRefToken, markup.CharRefToken:
		e.text(tok.Text)
	}
}

func (e *extractor) startTag(tok markup.Token) {
	if !e.recording {
		cls, _ := tok.Attr("class")
		if tok.Name != "div" || !strings.Contains(cls, "sample") {
			return
		}
		e.recording = true
	}

	// A line break is folded into the enclosing node's text rather than
	// becoming a child.
	if tok.Name == "br" {
		if len(e.stack) > 0 {
			e.top().Data += "\n"
		}
		return
	}

	attrs := make(map[string]string, len(tok.Attrs))
	for _, a := range tok.Attrs {
		attrs[a.Key] = a.Val
	}
	node := &Node{Tag: tok.Name, Attrs: attrs}
	if len(e.stack) > 0 {
		e.top().Children = append(e.top().Children, node)
	}
	e.stack = append(e.stack, node)
	if tok.SelfClosing {
		e.endTag()
	}
}

// endTag pops the stack top regardless of the tag name. When the pop
// empties the stack the sample region is complete.
func (e *extractor) endTag() {
	if !e.recording || len(e.stack) == 0 {
		return
	}
	node := e.top()
	e.stack = e.stack[:len(e.stack)-1]
	if len(e.stack) == 0 {
		e.roots = append(e.roots, node)
		e.recording = false
	}
}

func (e *extractor) text(data string) {
	if !e.recording || len(e.stack) == 0 {
		return
	}
	e.top().Data += data
}

func (e *extractor) top() *Node {
	return e.stack[len(e.stack)-1]
}

// examples harvests the finished subtree. Exactly one sample root is
// expected when any exist, and its <pre> blocks must pair up evenly.
func (e *extractor) examples() ([]Example, error) {
	if len(e.roots) == 0 {
		return nil, nil
	}
	if len(e.roots) > 1 {
		return nil, fmt.Errorf("%w: found %d", ErrMultipleSampleRoots, len(e.roots))
	}

	var blocks []string
	collectPre(e.roots[0], &blocks)
	if len(blocks)%2 != 0 {
		return nil, fmt.Errorf("%w: found %d", ErrOddPreBlocks, len(blocks))
	}

	examples := make([]Example, 0, len(blocks)/2)
	for i := 0; i < len(blocks); i += 2 {
		examples = append(examples, Example{Input: blocks[i], Output: blocks[i+1]})
	}
	return examples, nil
}

// collectPre gathers <pre> text in pre-order, without descending into a
// <pre> itself.
func collectPre(n *Node, out *[]string) {
	if n.Tag == "pre" {
		*out = append(*out, n.Data)
		return
	}
	for _, c := range n.Children {
		collectPre(c, out)
	}
}
