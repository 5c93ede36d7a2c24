package notes

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julianstephens/studydash/internal/cli"
	"github.com/julianstephens/studydash/internal/models"
)

type NoteAddCmd struct {
	Title   string `arg:"" help:"Note title."`
	Class   string `short:"c" help:"Class ID or name." required:""`
	Content string `short:"m" help:"Note content. Use '-' to read it from stdin."`
}

func (c *NoteAddCmd) Run(ctx *cli.Context) error {
	classID, err := ctx.ResolveClassID(c.Class)
	if err != nil {
		return err
	}

	content, err := readContent(ctx, c.Content)
	if err != nil {
		return err
	}

	n, err := ctx.Planner.AddNote(models.NoteInput{
		ClassID: classID,
		Title:   c.Title,
		Content: content,
	})
	if err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}

	ctx.Printf("Added note: %s (ID: %s)\n", n.Title, n.ID)
	return nil
}

// readContent returns s, or all of stdin when s is "-".
func readContent(ctx *cli.Context, s string) (string, error) {
	if s != "-" {
		return s, nil
	}
	var in io.Reader = os.Stdin
	if ctx.In != nil {
		in = ctx.In
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read note content: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
