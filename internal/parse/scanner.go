// Package parse contains the HTML scanners that turn loosely formatted
// schedule pages into structured records.
//
// The scanners are stream oriented: they are driven by an HTML tokenizer
// over an io.Reader and never see the whole document at once, so input may
// be chunked arbitrarily (including mid-tag). Attribution of text follows a
// one-token lookback: text belongs to the most recently seen recognized
// start tag, and any unrecognized start tag interrupts attribution. The
// pages use a flat tag-per-field layout, so no nesting awareness is needed.
package parse

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Subject and course labels live in elements matching this tag/class pair.
const (
	labelTag   = "div"
	labelClass = "ws-course-number"
)

// Scanner is implemented by the page scanners. StartTag is invoked for
// opening and self-closing tags; end tags are deliberately ignored, they
// never affect attribution.
type Scanner interface {
	StartTag(name string, attrs map[string]string)
	Text(data string)
}

// Run drives sc over the token stream read from r until EOF. Partial
// results accumulated before a read error remain available on the scanner.
func Run(r io.Reader, sc Scanner) error {
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return err
			}
			return nil
		case html.StartTagToken, html.SelfClosingTagToken:
			name, attrs := tagAttrs(z)
			sc.StartTag(name, attrs)
		case html.TextToken:
			sc.Text(string(z.Text()))
		}
	}
}

// RunString is a convenience wrapper for tests and small inputs.
func RunString(s string, sc Scanner) error {
	return Run(strings.NewReader(s), sc)
}

func tagAttrs(z *html.Tokenizer) (string, map[string]string) {
	name, hasAttr := z.TagName()
	attrs := make(map[string]string)
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		attrs[string(key)] = string(val)
	}
	return string(name), attrs
}

var spaceRE = regexp.MustCompile(`\s+`)

// collapseSpace trims the text and folds any run of whitespace into a
// single space, the normal form for all captured field values.
func collapseSpace(s string) string {
	return spaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
}

// isLabel reports whether a start tag opens a subject/course label cell.
func isLabel(name string, attrs map[string]string) bool {
	return name == labelTag && attrs["class"] == labelClass
}
