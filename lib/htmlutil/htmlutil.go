package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)
var anyWhitespace = regexp.MustCompile(`\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CleanText collapses the rendered text of a selection into a single
// trimmed line, the way a browser displays it.
func CleanText(sel *goquery.Selection) string {
	// whitespace first: a newline is a word boundary, stripping it as a
	// non-printable rune would glue the words together
	text := anyWhitespace.ReplaceAllString(sel.Text(), " ")
	text = removeNonPrintable(text)
	return strings.Trim(text, " ")
}

// Lines returns the rendered text of a selection split into trimmed,
// non-empty lines. Portal table cells frequently stack several values in
// one cell, separated either by <br> tags or by newlines in text nodes.
func Lines(sel *goquery.Selection) []string {
	var buffer bytes.Buffer
	for _, node := range sel.Nodes {
		getTextWithBreaks(node, &buffer)
	}

	var out []string
	for _, raw := range strings.Split(buffer.String(), "\n") {
		line := strings.Trim(removeNonPrintable(raw), " \t")
		if line == "" {
			continue
		}
		out = append(out, innerWhitespace.ReplaceAllString(line, " "))
	}
	return out
}

func getTextWithBreaks(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	if node.Type == html.ElementNode && node.Data == "br" {
		buffer.WriteString("\n")
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextWithBreaks(child, buffer)
		child = child.NextSibling
	}
}

// CellTexts returns the cleaned text of every `td` in a table row.
func CellTexts(row *goquery.Selection) []string {
	var cells []string
	row.Find("td").Each(func(_ int, td *goquery.Selection) {
		cells = append(cells, CleanText(td))
	})
	return cells
}
