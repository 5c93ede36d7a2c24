package system

import (
	"fmt"

	"github.com/julianstephens/studydash/internal/cli"
	"github.com/julianstephens/studydash/internal/constants"
)

type InitCmd struct {
	Force bool `help:"Replace existing planner data. A backup is taken first."`
	Empty bool `help:"Start with no classes, homework or notes instead of the sample data."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	path := ctx.Store.GetConfigPath()

	hasData, err := hasPlannerData(ctx)
	if err != nil {
		return err
	}

	if hasData {
		if !c.Force {
			ctx.Printf("studydash storage already initialized at: %s\n", path)
			ctx.Println("Use --force to reset it.")
			return nil
		}
		ctx.PerformAutomaticBackup()
		ctx.Println("Backed up existing data before reset.")
	}

	if err := ctx.Planner.Reset(!c.Empty); err != nil {
		return fmt.Errorf("failed to write initial data: %w", err)
	}

	ctx.Printf("Initialized studydash storage at: %s\n", path)
	if !c.Empty {
		ctx.Println("Sample classes, homework and notes were added. Run 'studydash init --force --empty' to start blank.")
	}
	return nil
}

func hasPlannerData(ctx *cli.Context) (bool, error) {
	keys, err := ctx.Store.Keys()
	if err != nil {
		return false, fmt.Errorf("failed to read storage: %w", err)
	}
	for _, k := range keys {
		switch k {
		case constants.KeyClasses, constants.KeyHomework, constants.KeyNotes:
			return true, nil
		}
	}
	return false, nil
}
