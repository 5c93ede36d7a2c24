package homework

import (
	"fmt"

	"github.com/julianstephens/studydash/internal/cli"
	"github.com/julianstephens/studydash/internal/models"
)

type HomeworkEditCmd struct {
	ID          string  `arg:"" help:"Homework ID."`
	Title       *string `help:"New title."`
	Class       *string `short:"c" help:"New class ID or name."`
	Due         *string `short:"D" help:"New due date (YYYY-MM-DD)."`
	Description *string `short:"d" help:"New description."`
	Completed   *bool   `help:"Set the completion flag."`
}

func (c *HomeworkEditCmd) Run(ctx *cli.Context) error {
	patch := models.HomeworkPatch{
		Title:       c.Title,
		Description: c.Description,
		Completed:   c.Completed,
	}

	if c.Class != nil {
		id, err := ctx.ResolveClassID(*c.Class)
		if err != nil {
			return err
		}
		patch.ClassID = &id
	}

	if c.Due != nil {
		due, err := dueDate(ctx, *c.Due)
		if err != nil {
			return err
		}
		patch.DueDate = &due
	}

	if patch.IsEmpty() {
		return fmt.Errorf("nothing to update, pass at least one field flag")
	}

	if err := ctx.Planner.UpdateHomework(c.ID, patch); err != nil {
		return fmt.Errorf("failed to update homework: %w", err)
	}

	h, _ := ctx.Planner.GetHomework(c.ID)
	ctx.Printf("Homework updated: %s\n", h.Title)
	return nil
}
