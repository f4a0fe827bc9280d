package markdown

import (
	"bytes"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// Service converts user-authored markdown into sanitized HTML for
// ticket descriptions and comments.
type Service struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewService() *Service {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
			goldmarkhtml.WithXHTML(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span", "div", "pre")

	return &Service{
		md:     md,
		policy: policy,
	}
}

// Render converts markdown to HTML and strips anything the sanitizer
// does not allow. On a conversion failure the input is returned escaped
// so caller output is always safe to embed.
func (s *Service) Render(markdown string) string {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "<p>" + html.EscapeString(markdown) + "</p>"
	}
	return s.policy.Sanitize(buf.String())
}
