package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/felixbrock/matchadmin/internal/domain"
)

func Login() templ.Component {
	return Layout(SiteMeta, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		out := &writer{w: w}
		out.raw(`<main class="login"><h1>`)
		out.text(SiteMeta.Title)
		out.raw(`</h1><p>Sign in to continue.</p></main>`)
		return out.err
	}))
}

func Dashboard(interests []domain.Interest) templ.Component {
	return Layout(SiteMeta, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		out := &writer{w: w}
		out.raw(`<main class="dashboard"><h1>Dashboard</h1><section id="interests"><h2>Interests (`)
		out.text(strconv.Itoa(len(interests)))
		out.raw(`)</h2>`)

		if len(interests) == 0 {
			out.raw(`<p class="empty">No interests yet.</p>`)
		} else {
			out.raw(`<ul>`)
			for _, i := range interests {
				out.raw(`<li data-id="`)
				out.text(i.Id)
				out.raw(`">`)
				out.text(i.Name)
				out.raw(`</li>`)
			}
			out.raw(`</ul>`)
		}

		out.raw(`</section></main>`)
		return out.err
	}))
}

func Error(code int, title string, msg string) templ.Component {
	return Layout(SiteMeta, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		out := &writer{w: w}
		out.raw(`<main class="error"><p class="code">`)
		out.text(strconv.Itoa(code))
		out.raw(`</p><h1>`)
		out.text(title)
		out.raw(`</h1><p>`)
		out.text(msg)
		out.raw(`</p></main>`)
		return out.err
	}))
}
