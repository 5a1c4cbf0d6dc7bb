package cleaner

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelector lists elements whose boundaries separate words.
const blockSelector = "p, div, li, tr, td, th, h1, h2, h3, h4, h5, h6, blockquote, pre"

// MarkupCleaner turns HTML fragments into plain text.
// Line breaks and block boundaries become newlines so adjacent words stay
// apart; scripts and styles are dropped; entities are decoded.
type MarkupCleaner struct{}

// NewMarkup creates a new markup cleaner.
func NewMarkup() *MarkupCleaner {
	return &MarkupCleaner{}
}

// Clean extracts the text content of html. Input without any tag is returned
// unchanged.
func (c *MarkupCleaner) Clean(html string) (string, error) {
	if !strings.Contains(html, "<") {
		return html, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing markup: %w", err)
	}

	doc.Find("script, style, noscript, template").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blockSelector).AfterHtml("\n")

	return strings.TrimSpace(doc.Find("body").Text()), nil
}

// Name returns the cleaner type.
func (c *MarkupCleaner) Name() string {
	return "markup"
}
