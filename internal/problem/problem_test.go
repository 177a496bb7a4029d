package problem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lovrop/codeforces-scraper/internal/markup"
)

func TestExtractSingleExample(t *testing.T) {
	page := `<div class="sample-tests"><div class="sample-test"><pre>3
1 2 3</pre><pre>6</pre></div></div>`

	examples, err := Extract(page)
	require.NoError(t, err)
	require.Len(t, examples, 1)
	assert.Equal(t, "3\n1 2 3", examples[0].Input)
	assert.Equal(t, "6", examples[0].Output)
}

func TestExtractMultipleExamples(t *testing.T) {
	page := `<html><body>
<div class="header">not a sample</div>
<div class="sample-tests">
<div class="sample-test">
<div class="input"><div class="title">Input</div><pre>1 2</pre></div>
<div class="output"><div class="title">Output</div><pre>3</pre></div>
<div class="input"><div class="title">Input</div><pre>5 5</pre></div>
<div class="output"><div class="title">Output</div><pre>10</pre></div>
</div>
</div>
</body></html>`

	examples, err := Extract(page)
	require.NoError(t, err)
	require.Len(t, examples, 2)
	assert.Equal(t, Example{Input: "1 2", Output: "3"}, examples[0])
	assert.Equal(t, Example{Input: "5 5", Output: "10"}, examples[1])
}

func TestExtractNoSampleContainer(t *testing.T) {
	examples, err := Extract(`<html><body><pre>orphan</pre><p>text</p></body></html>`)
	require.NoError(t, err)
	assert.Empty(t, examples)
}

func TestExtractOddPreBlocks(t *testing.T) {
	page := `<div class="sample-test"><pre>1</pre><pre>2</pre><pre>3</pre></div>`
	_, err := Extract(page)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOddPreBlocks)
}

func TestExtractMultipleSampleRoots(t *testing.T) {
	page := `<div class="sample-test"><pre>1</pre><pre>2</pre></div>
<div class="sample-test"><pre>3</pre><pre>4</pre></div>`
	_, err := Extract(page)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMultipleSampleRoots)
}

func TestBrAppendsNewlineWithoutChild(t *testing.T) {
	page := `<div class="sample-test"><pre>1 2<br></pre><pre>3<br/></pre></div>`
	examples, err := Extract(page)
	require.NoError(t, err)
	require.Len(t, examples, 1)
	assert.Equal(t, "1 2\n", examples[0].Input)
	assert.Equal(t, "3\n", examples[0].Output)
}

func TestBrCreatesNoNode(t *testing.T) {
	e := &extractor{}
	feedAll(t, e, `<div class="sample-test"><pre>x<br>y</pre></div>`)
	require.Len(t, e.roots, 1)

	root := e.roots[0]
	require.Len(t, root.Children, 1)
	pre := root.Children[0]
	assert.Equal(t, "pre", pre.Tag)
	assert.Empty(t, pre.Children)
	assert.Equal(t, "x\ny", pre.Data)
}

func TestEndTagPopsRegardlessOfName(t *testing.T) {
	// The inner <span> is closed by a mismatched </em>; the pop is
	// positional, so the tree still comes out right.
	page := `<div class="sample-test"><pre><span>7</em></pre><pre>8</pre></div>`
	examples, err := Extract(page)
	require.NoError(t, err)
	require.Len(t, examples, 1)
	assert.Equal(t, "8", examples[0].Output)
}

func TestReferencesResolvedInsideSamples(t *testing.T) {
	page := `<div class="sample-test"><pre>a&lt;b&amp;c</pre><pre>x&#10;y&#x21;</pre></div>`
	examples, err := Extract(page)
	require.NoError(t, err)
	require.Len(t, examples, 1)
	assert.Equal(t, "a<b&c", examples[0].Input)
	assert.Equal(t, "x\ny!", examples[0].Output)
}

func TestUnknownEntityFailsExtraction(t *testing.T) {
	page := `<div class="sample-test"><pre>&nosuchentity;</pre><pre>1</pre></div>`
	_, err := Extract(page)
	require.Error(t, err)
	var pe *markup.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, err.Error(), "nosuchentity")
}

func TestExtractIsIdempotent(t *testing.T) {
	page := `<div class="sample-tests"><div class="sample-test"><pre>3
1 2 3</pre><pre>6</pre></div></div>`

	first, err := Extract(page)
	require.NoError(t, err)
	second, err := Extract(page)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRepairPatchesKnownDefects(t *testing.T) {
	assert.Equal(t, "<p></p>", Repair("<p</p>"))
	assert.Equal(t, "<ul></ul>", Repair("<ul</ul>"))
	assert.Equal(t,
		`<div class="sample-test"><pre>`,
		Repair(`<div class="sample-test"<pre>`))
	assert.Equal(t, "<p>untouched</p>", Repair("<p>untouched</p>"))
}

func TestExtractSurvivesUnclosedContainerDefect(t *testing.T) {
	// The sample-test div missing its '>' is one of the known page defects;
	// Extract repairs it before tokenizing.
	page := `<div class="sample-test"<pre>in</pre><pre>out</pre></div>`
	examples, err := Extract(page)
	require.NoError(t, err)
	require.Len(t, examples, 1)
	assert.Equal(t, "in", examples[0].Input)
	assert.Equal(t, "out", examples[0].Output)
}

func TestTitle(t *testing.T) {
	page := `<html><body><div class="problem-statement"><div class="header">
<div class="title">A. Theatre Square</div></div></div></body></html>`
	assert.Equal(t, "A. Theatre Square", Title(page))
	assert.Equal(t, "", Title("<html><body></body></html>"))
}

// feedAll drives the extractor over a page the way Extract does, failing
// the test on tokenizer errors.
func feedAll(t *testing.T, e *extractor, page string) {
	t.Helper()
	z := markup.NewTokenizer(Repair(page))
	for {
		tok, err := z.Next()
		if err != nil {
			return
		}
		e.feed(tok)
	}
}
