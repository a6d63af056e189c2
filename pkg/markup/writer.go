// Package markup writes HTML elements for hand-built templ components.
// Attributes go through templ.RenderAttributes and text through
// templ.EscapeString, so callers never concatenate markup themselves.
package markup

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Writer emits HTML to an io.Writer. The first write error is kept and every
// later call becomes a no-op; check it with Err.
type Writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

// NewWriter returns a Writer rendering into w.
func NewWriter(ctx context.Context, w io.Writer) *Writer {
	return &Writer{ctx: ctx, w: w}
}

// Open writes a start tag with the given attributes. Void elements are
// written with Open alone.
func (w *Writer) Open(tag string, attrs templ.Attributer) {
	w.Raw("<" + tag)
	if w.err == nil && attrs != nil {
		w.err = templ.RenderAttributes(w.ctx, w.w, attrs)
	}
	w.Raw(">")
}

// Close writes an end tag.
func (w *Writer) Close(tag string) {
	w.Raw("</" + tag + ">")
}

// Element writes a complete element with escaped text content.
func (w *Writer) Element(tag string, attrs templ.Attributer, text string) {
	w.Open(tag, attrs)
	w.Text(text)
	w.Close(tag)
}

// Text writes escaped text.
func (w *Writer) Text(s string) {
	w.Raw(templ.EscapeString(s))
}

// Raw writes s unescaped. Only trusted or already sanitized markup belongs here.
func (w *Writer) Raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// Component renders a nested component in place.
func (w *Writer) Component(c templ.Component) {
	if w.err != nil {
		return
	}
	w.err = c.Render(w.ctx, w.w)
}

// Err reports the first error met while writing.
func (w *Writer) Err() error {
	return w.err
}
