package composer

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

var markdownEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
	),
)

// RenderHTML renders a block sequence to the published read view. Text
// blocks go through markdown; image locations and interview text are
// escaped verbatim. Rendering is display-only and never mutates the list.
func RenderHTML(blocks []Block) (string, error) {
	var sb strings.Builder
	for _, b := range blocks {
		frag, err := renderBlockHTML(b)
		if err != nil {
			return "", fmt.Errorf("render block %s: %w", b.ID, err)
		}
		sb.WriteString(frag)
	}
	return sb.String(), nil
}

func renderBlockHTML(b Block) (string, error) {
	switch b.Kind {
	case KindHeroQuote:
		body, err := markdown(text(b.Payload))
		if err != nil {
			return "", err
		}
		return `<blockquote class="hero-quote">` + body + "</blockquote>\n", nil
	case KindTwoColumn:
		p := pair(b.Payload)
		left, err := markdown(p.Left)
		if err != nil {
			return "", err
		}
		right, err := markdown(p.Right)
		if err != nil {
			return "", err
		}
		return `<div class="two-column"><div class="column">` + left +
			`</div><div class="column">` + right + "</div></div>\n", nil
	case KindDoubleImage:
		p := pair(b.Payload)
		return `<figure class="double-image">` +
			imageTag(p.Left) + imageTag(p.Right) + "</figure>\n", nil
	case KindInterview:
		var sb strings.Builder
		sb.WriteString(`<dl class="interview">`)
		for _, qa := range qaList(b.Payload) {
			sb.WriteString("<dt>" + html.EscapeString(qa.Question) + "</dt>")
			sb.WriteString("<dd>" + html.EscapeString(qa.Answer) + "</dd>")
		}
		sb.WriteString("</dl>\n")
		return sb.String(), nil
	default:
		body, err := markdown(text(b.Payload))
		if err != nil {
			return "", err
		}
		return `<div class="text-block">` + body + "</div>\n", nil
	}
}

func markdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func imageTag(src string) string {
	if src == "" {
		return ""
	}
	return `<img src="` + html.EscapeString(src) + `" alt="">`
}
