package system

import (
	"fmt"

	"github.com/julianstephens/studydash/internal/cli"
	"github.com/julianstephens/studydash/internal/i18n"
)

type LangCmd struct {
	Show LangShowCmd `cmd:"" default:"1" help:"Show the current language and the supported ones."`
	Set  LangSetCmd  `cmd:"" help:"Change the interface language."`
}

type LangShowCmd struct{}

func (c *LangShowCmd) Run(ctx *cli.Context) error {
	current := ctx.I18n.Language()
	ctx.Printf("Current language: %s (%s)\n\n", current.NativeName(), current)
	ctx.Println("Supported languages:")
	for _, l := range i18n.Supported {
		marker := " "
		if l == current {
			marker = "*"
		}
		ctx.Printf(" %s %-3s %s\n", marker, l, l.NativeName())
	}
	return nil
}

type LangSetCmd struct {
	Code string `arg:"" help:"Language code (en, es, fr, de, zh, ja, ru, pt, ar)."`
}

func (c *LangSetCmd) Validate() error {
	_, err := i18n.Parse(c.Code)
	return err
}

func (c *LangSetCmd) Run(ctx *cli.Context) error {
	lang, err := i18n.Parse(c.Code)
	if err != nil {
		return err
	}
	if err := ctx.I18n.SetLanguage(lang); err != nil {
		return fmt.Errorf("failed to save language: %w", err)
	}
	ctx.Printf("✓ Language set to %s (%s)\n", lang.NativeName(), lang)
	return nil
}
