package extract

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

var htmlHintRe = regexp.MustCompile(`(?i)<\s*(html|body|div|p|br|ul|li|span|h[1-6])\b`)

// looksLikeHTML reports whether raw is markup rather than plain text.
func looksLikeHTML(raw string) bool {
	return htmlHintRe.MatchString(raw)
}

// bulletRe rewrites common bullet glyphs to a uniform "- " prefix so the
// section extractors only deal with one bullet form.
var bulletRe = regexp.MustCompile(`(?m)^[\s]*[•●▪‣◦*+]\s*`)

// NormalizeText prepares raw posting text for field extraction: converts
// markup to markdown, unescapes entities, unifies bullet glyphs, and
// collapses whitespace while keeping line structure.
func NormalizeText(raw string) string {
	text := raw
	if looksLikeHTML(raw) {
		text = htmlToText(raw)
	}
	text = html.UnescapeString(text)
	text = bulletRe.ReplaceAllString(text, "- ")
	return engine.NormalizeWhitespace(text)
}

// htmlToText converts an HTML posting to markdown-ish plain text.
// Falls back to goquery text extraction, then regex tag stripping.
func htmlToText(raw string) string {
	if md, err := htmltomarkdown.ConvertString(raw); err == nil && strings.TrimSpace(md) != "" {
		return md
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return engine.CleanHTML(raw)
	}
	doc.Find("script, style, noscript, iframe, svg").Each(func(_ int, s *goquery.Selection) {
		s.Remove()
	})
	// Keep list items on their own lines so section parsing still works.
	doc.Find("li").Each(func(_ int, s *goquery.Selection) {
		s.SetText("\n- " + s.Text() + "\n")
	})
	doc.Find("br, p, div, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		s.AfterHtml("\n")
	})
	body := doc.Find("body")
	if body.Length() == 0 {
		return engine.CleanHTML(raw)
	}
	return body.Text()
}
