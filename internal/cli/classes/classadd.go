package classes

import (
	"fmt"
	"time"

	"github.com/julianstephens/studydash/internal/cli"
	"github.com/julianstephens/studydash/internal/models"
	"github.com/julianstephens/studydash/internal/validation"
)

type ClassAddCmd struct {
	Name       string `arg:"" help:"Class name."`
	Subject    string `short:"s" help:"Subject (math|science|history|english|art|music|pe|languages|cs|other)." default:"other"`
	Instructor string `short:"i" help:"Instructor name." required:""`
	Room       string `short:"r" help:"Room." required:""`
	Day        string `short:"d" help:"Weekday the class meets (name or 0-6, 0=Sunday). Defaults to today."`
	Start      string `short:"S" help:"Start time (HH:MM)." default:"${class_start}"`
	End        string `short:"E" help:"End time (HH:MM)." default:"${class_end}"`

	subject models.Subject
	day     *time.Weekday
}

func (c *ClassAddCmd) Validate() error {
	subject, err := models.ParseSubject(c.Subject)
	if err != nil {
		return err
	}
	c.subject = subject

	if c.Day != "" {
		wd, err := cli.ParseWeekday(c.Day)
		if err != nil {
			return err
		}
		c.day = &wd
	}

	if !validation.ValidTime(c.Start) {
		return fmt.Errorf("invalid start time %q (expected HH:MM)", c.Start)
	}
	if !validation.ValidTime(c.End) {
		return fmt.Errorf("invalid end time %q (expected HH:MM)", c.End)
	}
	return nil
}

func (c *ClassAddCmd) Run(ctx *cli.Context) error {
	day := ctx.Planner.Now().Weekday()
	if c.day != nil {
		day = *c.day
	}

	class, err := ctx.Planner.AddClass(models.ClassInput{
		Name:       c.Name,
		Subject:    c.subject,
		Instructor: c.Instructor,
		Room:       c.Room,
		DayOfWeek:  day,
		StartTime:  c.Start,
		EndTime:    c.End,
	})
	if err != nil {
		return fmt.Errorf("failed to add class: %w", err)
	}

	ctx.Printf("Added class: %s (ID: %s)\n", class.Name, class.ID)
	ctx.Printf("  %s\n", cli.FormatClassLine(class))
	return nil
}
