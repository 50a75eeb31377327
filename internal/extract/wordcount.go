// Package extract computes the visible-text measure stored as an article's word count.
package extract

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// excludedParents lists the tags whose direct text children are not visible
// content. Text outside any element belongs to the document root and is
// excluded as well.
var excludedParents = map[string]bool{
	"script":   true,
	"noscript": true,
	"html":     true,
	"header":   true,
	"head":     true,
	"meta":     true,
	"img":      true,
	"input":    true,
}

// voidElements never hold children, so they are not pushed as parents.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"keygen": true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// WordCount returns the number of characters in the visible text of body.
//
// Despite the name this is a character count: the text of every text node whose
// parent is not excluded is concatenated and measured in runes. The parent is
// taken from the markup as written, without HTML5 tree repair, so loose text
// outside <body> belongs to <html> or the document root and is not counted.
// Comments are never counted, unlike a text search that also matches comment
// strings.
func WordCount(body string) int {
	if strings.TrimSpace(body) == "" {
		return 0
	}
	return WordCountReader(strings.NewReader(body))
}

// WordCountReader is WordCount over a stream. A read failure yields 0.
func WordCountReader(r io.Reader) int {
	z := html.NewTokenizer(r)
	var open []string
	count := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return count
			}
			return 0
		case html.TextToken:
			if visible(open) {
				count += utf8.RuneCount(z.Text())
			}
		case html.StartTagToken:
			name, _ := z.TagName()
			if tag := string(name); !voidElements[tag] {
				open = append(open, tag)
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			open = closeElement(open, string(name))
		}
	}
}

// closeElement pops up to and including the innermost open tag. An end tag
// with no matching open element is ignored.
func closeElement(open []string, tag string) []string {
	for i := len(open) - 1; i >= 0; i-- {
		if open[i] == tag {
			return open[:i]
		}
	}
	return open
}

func visible(open []string) bool {
	if len(open) == 0 {
		return false
	}
	return !excludedParents[open[len(open)-1]]
}
