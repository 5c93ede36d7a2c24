package classes

import (
	"fmt"

	"github.com/julianstephens/studydash/internal/cli"
	"github.com/julianstephens/studydash/internal/planner"
)

type ClassDeleteCmd struct {
	ID  string `arg:"" help:"Class ID to delete."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ClassDeleteCmd) Run(ctx *cli.Context) error {
	class, ok := ctx.Planner.GetClassByID(c.ID)
	if !ok {
		return fmt.Errorf("failed to find class with ID %s: %w", c.ID, planner.ErrNotFound)
	}

	homework := len(ctx.Planner.GetHomeworkByClass(c.ID))
	notes := len(ctx.Planner.GetNotesByClass(c.ID))

	if !c.Yes && homework+notes > 0 {
		ctx.Printf("Deleting %s also deletes %d homework item(s) and %d note(s).\n", class.Name, homework, notes)
		ok, err := ctx.Confirm("Continue?")
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Delete cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Planner.DeleteClass(c.ID); err != nil {
		return fmt.Errorf("failed to delete class: %w", err)
	}

	ctx.Printf("Deleted class: %s (ID: %s)\n", class.Name, c.ID)
	if homework+notes > 0 {
		ctx.Printf("  Removed %d homework item(s) and %d note(s)\n", homework, notes)
	}
	return nil
}
