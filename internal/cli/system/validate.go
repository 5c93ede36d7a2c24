package system

import (
	"fmt"

	"github.com/julianstephens/studydash/internal/cli"
	"github.com/julianstephens/studydash/internal/validation"
)

type ValidateCmd struct{}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	report := validation.CheckIntegrity(ctx.Planner.Classes(), ctx.Planner.Homework(), ctx.Planner.Notes())
	ctx.Println(report.FormatReport())
	if report.HasConflicts() {
		return fmt.Errorf("found %d integrity problem(s)", len(report.Conflicts))
	}
	return nil
}
