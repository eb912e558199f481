package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Meta is the static head metadata of a page.
type Meta struct {
	Title       string
	Description string
}

var SiteMeta = Meta{
	Title:       "Match Admin",
	Description: "Administration panel for the dating app",
}

type writer struct {
	w   io.Writer
	err error
}

func (w *writer) raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

// Layout wraps body in the page document.
func Layout(meta Meta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := &writer{w: w}
		out.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		out.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		out.raw(`<title>`)
		out.text(meta.Title)
		out.raw(`</title><meta name="description" content="`)
		out.text(meta.Description)
		out.raw(`"></head><body>`)
		if out.err != nil {
			return out.err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		out.raw(`</body></html>`)
		return out.err
	})
}
