package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/templui/goalplanner/internal/ctxkeys"
)

const pageStyle = `body{font-family:system-ui,sans-serif;margin:0 auto;max-width:56rem;padding:1.5rem;color:#111827}
.card{border:1px solid #e5e7eb;border-radius:.5rem;padding:1rem;margin-bottom:1rem}
.stats{display:grid;grid-template-columns:repeat(4,1fr);gap:1rem}
.muted{color:#6b7280}
.done{text-decoration:line-through;color:#6b7280}`

// layout wraps body in the HTML document shell. The inline style block
// carries the request nonce so it passes the Content-Security-Policy.
func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		appName := "Goal Planner"
		cfg := ctxkeys.Config(ctx)
		if cfg != nil && cfg.AppName != "" {
			appName = cfg.AppName
		}

		_, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s | %s</title><style nonce="%s">%s</style></head><body>`,
			templ.EscapeString(title),
			templ.EscapeString(appName),
			templ.EscapeString(templ.GetNonce(ctx)),
			pageStyle,
		)
		if err != nil {
			return err
		}

		err = body.Render(ctx, w)
		if err != nil {
			return err
		}

		_, err = io.WriteString(w, `</body></html>`)
		return err
	})
}

func NotFound() templ.Component {
	return layout("Not found", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<main class="card"><h1>404</h1><p class="muted">This page does not exist.</p><p><a href="/">Back to overview</a></p></main>`)
		return err
	}))
}
