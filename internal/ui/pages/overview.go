package pages

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/templui/goalplanner/internal/calendar"
	"github.com/templui/goalplanner/internal/markdown"
	"github.com/templui/goalplanner/internal/model"
	"github.com/templui/goalplanner/internal/ui"
)

type OverviewProps struct {
	Overview model.Overview
	Today    time.Time
	// Markdown renders goal descriptions. Nil shows them as plain text.
	Markdown *markdown.Parser
}

func Overview(props OverviewProps) templ.Component {
	return layout("Overview", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		ov := props.Overview

		fmt.Fprintf(&b, `<header><h1>Goals</h1><p class="muted">%s</p></header>`,
			templ.EscapeString(props.Today.Format("Monday, January 2, 2006")))

		b.WriteString(`<section class="stats">`)
		stat(&b, "Total", fmt.Sprint(ov.Total))
		stat(&b, "Completed", fmt.Sprint(ov.Completed))
		stat(&b, "Pending", fmt.Sprint(ov.Pending))
		stat(&b, "Completion", fmt.Sprintf("%d%%", ov.CompletionRate))
		b.WriteString(`</section>`)

		b.WriteString(`<section class="card"><h2>By category</h2>`)
		if len(ov.Categories) == 0 {
			b.WriteString(`<p class="muted">No goals yet.</p>`)
		}
		for _, c := range ov.Categories {
			fmt.Fprintf(&b, `<p><span class="%s">%s</span> %d (%d%%)</p>`,
				ui.CategoryBadge(c.Category), templ.EscapeString(ui.Label(string(c.Category))), c.Count, c.Percent)
		}
		b.WriteString(`</section>`)

		b.WriteString(`<section class="card"><h2>By priority</h2>`)
		for _, p := range ov.Priorities {
			fmt.Fprintf(&b, `<p><span class="%s">%s</span> %d (%d%%)</p>`,
				ui.PriorityBadge(p.Priority), templ.EscapeString(ui.Label(string(p.Priority))), p.Count, p.Percent)
		}
		b.WriteString(`</section>`)

		b.WriteString(`<section class="card"><h2>Upcoming deadlines</h2>`)
		if len(ov.Upcoming) == 0 {
			b.WriteString(`<p class="muted">Nothing due.</p>`)
		}
		for _, u := range ov.Upcoming {
			fmt.Fprintf(&b, `<p>%s <span class="muted">%s</span> <span class="%s">%s</span></p>`,
				templ.EscapeString(u.Goal.Title),
				templ.EscapeString(calendar.Format(*u.Goal.DueDate, props.Today.Location())),
				ui.UrgencyBadge(u.Deadline.Urgency),
				templ.EscapeString(u.Label))
		}
		b.WriteString(`</section>`)

		b.WriteString(`<section class="card"><h2>Recent goals</h2>`)
		if len(ov.Recent) == 0 {
			b.WriteString(`<p class="muted">No goals yet.</p>`)
		}
		for _, g := range ov.Recent {
			class := ""
			if g.Completed {
				class = ` class="done"`
			}
			fmt.Fprintf(&b, `<article><h3%s>%s</h3><span class="%s">%s</span> <span class="%s">%s</span>`,
				class,
				templ.EscapeString(g.Title),
				ui.CategoryBadge(g.Category), templ.EscapeString(ui.Label(string(g.Category))),
				ui.PriorityBadge(g.Priority), templ.EscapeString(ui.Label(string(g.Priority))))
			b.WriteString(description(props.Markdown, g.Description))
			b.WriteString(`</article>`)
		}
		b.WriteString(`</section>`)

		_, err := io.WriteString(w, b.String())
		return err
	}))
}

func stat(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, `<div class="card"><p class="muted">%s</p><p><strong>%s</strong></p></div>`,
		templ.EscapeString(label), templ.EscapeString(value))
}

func description(md *markdown.Parser, text string) string {
	if text == "" {
		return ""
	}
	if md != nil {
		html, err := md.Parse([]byte(text))
		if err == nil {
			return `<div class="muted">` + string(html) + `</div>`
		}
		slog.Warn("failed to render goal description", "error", err)
	}
	return `<p class="muted">` + templ.EscapeString(text) + `</p>`
}
