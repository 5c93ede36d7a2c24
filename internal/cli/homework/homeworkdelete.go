package homework

import (
	"fmt"

	"github.com/julianstephens/studydash/internal/cli"
	"github.com/julianstephens/studydash/internal/planner"
)

type HomeworkDeleteCmd struct {
	ID string `arg:"" help:"Homework ID to delete."`
}

func (c *HomeworkDeleteCmd) Run(ctx *cli.Context) error {
	h, ok := ctx.Planner.GetHomework(c.ID)
	if !ok {
		return fmt.Errorf("failed to find homework with ID %s: %w", c.ID, planner.ErrNotFound)
	}

	if err := ctx.Planner.DeleteHomework(c.ID); err != nil {
		return fmt.Errorf("failed to delete homework: %w", err)
	}

	ctx.Printf("Deleted homework: %s (ID: %s)\n", h.Title, c.ID)
	return nil
}

type HomeworkToggleCmd struct {
	ID string `arg:"" help:"Homework ID to mark complete or pending."`
}

func (c *HomeworkToggleCmd) Run(ctx *cli.Context) error {
	completed, err := ctx.Planner.ToggleHomeworkStatus(c.ID)
	if err != nil {
		return fmt.Errorf("failed to toggle homework: %w", err)
	}

	h, _ := ctx.Planner.GetHomework(c.ID)
	if completed {
		ctx.Printf("✓ Completed: %s\n", h.Title)
	} else {
		ctx.Printf("Marked pending: %s\n", h.Title)
	}
	return nil
}
