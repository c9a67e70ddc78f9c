// Package markdown reads structured payloads out of markdown produced by the
// generator and reduces user-supplied text to plain text.
package markdown

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

type MarkdownService interface {
	// FencedBlock returns the body of the first fenced code block tagged
	// with lang, falling back to the first fenced block of any language.
	FencedBlock(source, lang string) (string, bool)
	// PlainText strips all markup from user-supplied text.
	PlainText(input string) string
}

type markdownServiceImpl struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewMarkdownService() MarkdownService {
	return &markdownServiceImpl{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: bluemonday.StrictPolicy(),
	}
}

func (s *markdownServiceImpl) FencedBlock(source, lang string) (string, bool) {
	src := []byte(source)
	doc := s.md.Parser().Parse(text.NewReader(src))

	var tagged, first *ast.FencedCodeBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		block, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if first == nil {
			first = block
		}
		if strings.EqualFold(string(block.Language(src)), lang) {
			tagged = block
			return ast.WalkStop, nil
		}
		return ast.WalkSkipChildren, nil
	})

	block := tagged
	if block == nil {
		block = first
	}
	if block == nil {
		return "", false
	}

	var b strings.Builder
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return strings.TrimSpace(b.String()), true
}

// PlainText drops tags and unescapes the entities the sanitizer leaves
// behind, since the result is rendered as JSON rather than HTML.
func (s *markdownServiceImpl) PlainText(input string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(input)))
}
