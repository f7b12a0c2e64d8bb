package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/templui/goalplanner/internal/calendar"
	"github.com/templui/goalplanner/internal/markdown"
	"github.com/templui/goalplanner/internal/model"
	"github.com/templui/goalplanner/internal/validation"
)

// Importer turns Markdown goal files into goals. The front matter carries
// title, category, priority and an optional due date; the body becomes
// the description.
type Importer struct {
	parser *markdown.Parser
	goals  *GoalService
	loc    *time.Location
}

func NewImporter(goals *GoalService, loc *time.Location) *Importer {
	if loc == nil {
		loc = time.Local
	}
	return &Importer{
		parser: markdown.NewParser(),
		goals:  goals,
		loc:    loc,
	}
}

// Parse reads one goal file without adding it.
func (i *Importer) Parse(source []byte) (model.GoalInput, error) {
	meta, body, err := i.parser.SplitFrontmatter(source)
	if err != nil {
		return model.GoalInput{}, fmt.Errorf("invalid front matter: %w", err)
	}

	input := model.GoalInput{
		Title:       metaString(meta, "title"),
		Description: string(body),
		Category:    model.Category(strings.ToLower(metaString(meta, "category"))),
		Priority:    model.Priority(strings.ToLower(metaString(meta, "priority"))),
	}
	if input.Priority == "" {
		input.Priority = model.PriorityMedium
	}

	done, ok := meta["completed"].(bool)
	if ok {
		input.Completed = done
	}

	due, err := i.metaDate(meta, "due")
	if err != nil {
		return model.GoalInput{}, err
	}
	input.DueDate = due

	return validation.NormalizeGoalInput(input)
}

// Import parses one goal file and adds it to the store.
func (i *Importer) Import(ctx context.Context, source []byte) (model.Goal, error) {
	input, err := i.Parse(source)
	if err != nil {
		return model.Goal{}, err
	}
	return i.goals.Add(ctx, input)
}

func metaString(meta map[string]any, key string) string {
	switch v := meta[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func (i *Importer) metaDate(meta map[string]any, key string) (*time.Time, error) {
	switch v := meta[key].(type) {
	case nil:
		return nil, nil
	case time.Time:
		return &v, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		t, err := calendar.Parse(strings.TrimSpace(v), i.loc)
		if err == nil {
			return &t, nil
		}
		t, err = time.Parse(time.RFC3339, strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("invalid %s date %q", key, v)
		}
		return &t, nil
	default:
		return nil, fmt.Errorf("invalid %s date %v", key, v)
	}
}
