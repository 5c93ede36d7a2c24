package classes

import (
	"fmt"

	"github.com/julianstephens/studydash/internal/cli"
	"github.com/julianstephens/studydash/internal/models"
)

type ClassEditCmd struct {
	ID         string  `arg:"" help:"Class ID."`
	Name       *string `help:"New class name."`
	Subject    *string `short:"s" help:"New subject."`
	Instructor *string `short:"i" help:"New instructor."`
	Room       *string `short:"r" help:"New room."`
	Day        *string `short:"d" help:"New weekday (name or 0-6)."`
	Start      *string `short:"S" help:"New start time (HH:MM)."`
	End        *string `short:"E" help:"New end time (HH:MM)."`
}

func (c *ClassEditCmd) Run(ctx *cli.Context) error {
	patch := models.ClassPatch{
		Name:       c.Name,
		Instructor: c.Instructor,
		Room:       c.Room,
		StartTime:  c.Start,
		EndTime:    c.End,
	}

	if c.Subject != nil {
		subject, err := models.ParseSubject(*c.Subject)
		if err != nil {
			return err
		}
		patch.Subject = &subject
	}

	if c.Day != nil {
		wd, err := cli.ParseWeekday(*c.Day)
		if err != nil {
			return err
		}
		patch.DayOfWeek = &wd
	}

	if patch.IsEmpty() {
		return fmt.Errorf("nothing to update, pass at least one field flag")
	}

	if err := ctx.Planner.UpdateClass(c.ID, patch); err != nil {
		return fmt.Errorf("failed to update class: %w", err)
	}

	class, _ := ctx.Planner.GetClassByID(c.ID)
	ctx.Printf("Class updated: %s\n", class.Name)
	return nil
}
