package homework

import (
	"github.com/julianstephens/studydash/internal/cli"
	"github.com/julianstephens/studydash/internal/models"
	"github.com/julianstephens/studydash/internal/planner"
)

type HomeworkListCmd struct {
	Filter string `short:"f" help:"Which items to show (all|pending|completed)." default:"all" enum:"all,pending,completed"`
	Class  string `short:"c" help:"Only show homework for this class ID or name."`
}

func (c *HomeworkListCmd) Run(ctx *cli.Context) error {
	filter, err := planner.ParseHomeworkFilter(c.Filter)
	if err != nil {
		return err
	}

	items := ctx.Planner.FilterHomework(filter)
	if c.Class != "" {
		classID, err := ctx.ResolveClassID(c.Class)
		if err != nil {
			return err
		}
		var kept []models.Homework
		for _, h := range items {
			if h.ClassID == classID {
				kept = append(kept, h)
			}
		}
		items = kept
	}

	if len(items) == 0 {
		ctx.Println("No homework found.")
		return nil
	}

	now := ctx.Planner.Now()
	for _, h := range items {
		ctx.Println(cli.FormatHomeworkLine(h, ctx.Planner.ClassName(h.ClassID), now))
	}
	return nil
}
