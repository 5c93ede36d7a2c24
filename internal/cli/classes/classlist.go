package classes

import (
	"time"

	"github.com/julianstephens/studydash/internal/cli"
)

type ClassListCmd struct {
	Day string `short:"d" help:"Only list classes on this weekday (name or 0-6)."`
	All bool   `short:"a" help:"List the whole week."`
}

func (c *ClassListCmd) Validate() error {
	if c.Day != "" {
		if _, err := cli.ParseWeekday(c.Day); err != nil {
			return err
		}
	}
	return nil
}

func (c *ClassListCmd) Run(ctx *cli.Context) error {
	if c.All {
		if len(ctx.Planner.Classes()) == 0 {
			ctx.Println("No classes found.")
			return nil
		}
		for d := time.Sunday; d <= time.Saturday; d++ {
			classes := ctx.Planner.ClassesForDay(d)
			if len(classes) == 0 {
				continue
			}
			ctx.Printf("%s:\n", d)
			for _, class := range classes {
				ctx.Printf("  %s\n", cli.FormatClassLine(class))
			}
		}
		return nil
	}

	day := ctx.Planner.Now().Weekday()
	if c.Day != "" {
		// Validate has already checked the value.
		day, _ = cli.ParseWeekday(c.Day)
	}

	classes := ctx.Planner.ClassesForDay(day)
	if len(classes) == 0 {
		ctx.Printf("No classes scheduled for %s.\n", day)
		return nil
	}

	ctx.Printf("Classes for %s:\n", day)
	for _, class := range classes {
		ctx.Printf("  %s\n", cli.FormatClassLine(class))
	}
	return nil
}
