package weekly

import (
	"bytes"
	"strings"
)

const (
	prolog = `<?xml version="1.0" encoding="UTF-8"?>`
	indent = "  "
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape replaces the five XML special characters with their named entities.
func Escape(text string) string {
	return escaper.Replace(text)
}

type Attr struct {
	Name  string
	Value string
}

// Writer builds an indented XML document. Elements are never self-closed.
type Writer struct {
	buf   bytes.Buffer
	depth int
}

func (w *Writer) line(text string) {
	w.buf.WriteString(strings.Repeat(indent, w.depth))
	w.buf.WriteString(text)
	w.buf.WriteByte('\n')
}

// Raw writes text as a line at the current depth without escaping it.
func (w *Writer) Raw(text string) {
	w.line(text)
}

func (w *Writer) Open(name string, attrs ...Attr) {
	var tag strings.Builder

	tag.WriteString("<" + name)

	for _, attr := range attrs {
		tag.WriteString(" " + attr.Name + `="` + Escape(attr.Value) + `"`)
	}

	tag.WriteString(">")

	w.line(tag.String())
	w.depth++
}

func (w *Writer) Close(name string) {
	w.depth--
	w.line("</" + name + ">")
}

// Leaf writes <name>text</name> with text escaped.
func (w *Writer) Leaf(name, text string) {
	w.line("<" + name + ">" + Escape(text) + "</" + name + ">")
}

// Comment writes a comment block. "--" is not allowed inside XML comments, so it is split.
func (w *Writer) Comment(text string) {
	w.line("<!--")

	for strings.Contains(text, "--") {
		text = strings.ReplaceAll(text, "--", "- -")
	}

	for _, line := range strings.Split(text, "\n") {
		w.line(indent + strings.TrimRight(line, " \t\r"))
	}

	w.line("-->")
}

func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}
