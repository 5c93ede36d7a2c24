package homework

import (
	"fmt"
	"time"

	"github.com/julianstephens/studydash/internal/cli"
	"github.com/julianstephens/studydash/internal/constants"
	"github.com/julianstephens/studydash/internal/models"
	"github.com/julianstephens/studydash/internal/validation"
)

type HomeworkAddCmd struct {
	Title       string `arg:"" help:"Homework title."`
	Class       string `short:"c" help:"Class ID or name. Defaults to the first class."`
	Due         string `short:"D" help:"Due date (YYYY-MM-DD). Defaults to one week from today."`
	Description string `short:"d" help:"Longer description."`
}

func (c *HomeworkAddCmd) Validate() error {
	if c.Due != "" {
		if _, err := validation.ParseDueDate(c.Due, time.Local); err != nil {
			return err
		}
	}
	return nil
}

func (c *HomeworkAddCmd) Run(ctx *cli.Context) error {
	classID, err := resolveClass(ctx, c.Class)
	if err != nil {
		return err
	}

	due, err := dueDate(ctx, c.Due)
	if err != nil {
		return err
	}

	h, err := ctx.Planner.AddHomework(models.HomeworkInput{
		ClassID:     classID,
		Title:       c.Title,
		Description: c.Description,
		DueDate:     due,
	})
	if err != nil {
		return fmt.Errorf("failed to add homework: %w", err)
	}

	ctx.Printf("Added homework: %s (ID: %s)\n", h.Title, h.ID)
	ctx.Printf("  %s, due %s\n", ctx.Planner.ClassName(h.ClassID), h.DueDate.Local().Format(constants.DateFormat))
	return nil
}

// resolveClass maps --class to an ID, falling back to the first stored class.
func resolveClass(ctx *cli.Context, ref string) (string, error) {
	if ref != "" {
		return ctx.ResolveClassID(ref)
	}
	classes := ctx.Planner.Classes()
	if len(classes) == 0 {
		return "", fmt.Errorf("no classes yet, add one with 'studydash class add'")
	}
	return classes[0].ID, nil
}

// dueDate parses s, or returns the default due date when s is empty.
func dueDate(ctx *cli.Context, s string) (time.Time, error) {
	if s == "" {
		s = ctx.Planner.Now().Local().AddDate(0, 0, constants.DefaultDueInDays).Format(constants.DateFormat)
	}
	return validation.ParseDueDate(s, time.Local)
}
