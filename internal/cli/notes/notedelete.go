package notes

import (
	"fmt"

	"github.com/julianstephens/studydash/internal/cli"
	"github.com/julianstephens/studydash/internal/planner"
)

type NoteDeleteCmd struct {
	ID string `arg:"" help:"Note ID to delete."`
}

func (c *NoteDeleteCmd) Run(ctx *cli.Context) error {
	n, ok := ctx.Planner.GetNote(c.ID)
	if !ok {
		return fmt.Errorf("failed to find note with ID %s: %w", c.ID, planner.ErrNotFound)
	}

	if err := ctx.Planner.DeleteNote(c.ID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	ctx.Printf("Deleted note: %s (ID: %s)\n", n.Title, c.ID)
	return nil
}
