package notes

import (
	"fmt"

	"github.com/julianstephens/studydash/internal/cli"
	"github.com/julianstephens/studydash/internal/models"
)

type NoteEditCmd struct {
	ID      string  `arg:"" help:"Note ID."`
	Title   *string `help:"New title."`
	Class   *string `short:"c" help:"New class ID or name."`
	Content *string `short:"m" help:"New content. Use '-' to read it from stdin."`
}

func (c *NoteEditCmd) Run(ctx *cli.Context) error {
	patch := models.NotePatch{Title: c.Title}

	if c.Class != nil {
		id, err := ctx.ResolveClassID(*c.Class)
		if err != nil {
			return err
		}
		patch.ClassID = &id
	}

	if c.Content != nil {
		content, err := readContent(ctx, *c.Content)
		if err != nil {
			return err
		}
		patch.Content = &content
	}

	if patch.IsEmpty() {
		return fmt.Errorf("nothing to update, pass at least one field flag")
	}

	if err := ctx.Planner.UpdateNote(c.ID, patch); err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}

	n, _ := ctx.Planner.GetNote(c.ID)
	ctx.Printf("Note updated: %s\n", n.Title)
	return nil
}
