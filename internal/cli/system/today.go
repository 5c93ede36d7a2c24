package system

import (
	"github.com/julianstephens/studydash/internal/cli"
	"github.com/julianstephens/studydash/internal/constants"
	"github.com/julianstephens/studydash/internal/utils"
)

// TodayCmd prints the dashboard: today's classes and the next pending homework.
type TodayCmd struct {
	Limit int `short:"n" help:"How many pending homework items to show." default:"3"`
}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	now := ctx.Planner.Now()
	limit := c.Limit
	if limit <= 0 {
		limit = constants.DashboardHomeworkMax
	}

	ctx.Println("Welcome Back!")
	ctx.Printf("Here's your schedule for %s\n\n", utils.DayName(now.Weekday()))

	ctx.Println("Today's Classes")
	classes := ctx.Planner.GetTodayClasses()
	if len(classes) == 0 {
		ctx.Println("  No classes scheduled for today")
	}
	for _, class := range classes {
		ctx.Printf("  %s\n", cli.FormatClassLine(class))
	}

	ctx.Println()
	ctx.Println("Upcoming Homework")
	pending := ctx.Planner.GetPendingHomework()
	if len(pending) == 0 {
		ctx.Println("  No pending homework")
	}
	if len(pending) > limit {
		pending = pending[:limit]
	}
	for _, h := range pending {
		ctx.Printf("  %s\n", cli.FormatHomeworkLine(h, ctx.Planner.ClassName(h.ClassID), now))
	}
	return nil
}
