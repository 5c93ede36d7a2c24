package notes

import (
	"fmt"

	"github.com/julianstephens/studydash/internal/cli"
	"github.com/julianstephens/studydash/internal/constants"
	"github.com/julianstephens/studydash/internal/planner"
	"github.com/julianstephens/studydash/internal/utils"
)

type NoteListCmd struct {
	Class string `short:"c" help:"Only show notes for this class ID or name."`
}

func (c *NoteListCmd) Run(ctx *cli.Context) error {
	classID := ""
	if c.Class != "" && c.Class != "all" {
		id, err := ctx.ResolveClassID(c.Class)
		if err != nil {
			return err
		}
		classID = id
	}

	notes := ctx.Planner.FilterNotes(classID)
	if len(notes) == 0 {
		ctx.Println("No notes found.")
		return nil
	}

	for _, n := range notes {
		ctx.Printf("%s  (%s, updated %s)  (ID: %s)\n", n.Title, ctx.Planner.ClassName(n.ClassID), utils.FormatDate(n.UpdatedAt), n.ID)
		ctx.Printf("  %s\n", utils.Preview(n.Content, constants.NotePreviewLength))
	}
	return nil
}

type NoteShowCmd struct {
	ID string `arg:"" help:"Note ID."`
}

func (c *NoteShowCmd) Run(ctx *cli.Context) error {
	n, ok := ctx.Planner.GetNote(c.ID)
	if !ok {
		return fmt.Errorf("failed to find note with ID %s: %w", c.ID, planner.ErrNotFound)
	}

	ctx.Println(n.Title)
	ctx.Printf("Class:   %s\n", ctx.Planner.ClassName(n.ClassID))
	ctx.Printf("Created: %s\n", utils.FormatDate(n.CreatedAt))
	ctx.Printf("Updated: %s\n", utils.FormatDate(n.UpdatedAt))
	ctx.Println()
	ctx.Println(n.Content)
	return nil
}
