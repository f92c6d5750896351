package cli

import (
	"context"
)

func (a *App) changeLanguage(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.printf("%s: %s (da, en)\n", a.language.T("language"), a.language.Current())
		return
	}

	if err := a.language.Change(ctx, args[0]); err != nil {
		a.printf("error: %v\n", err)
		return
	}
	a.printf("%s: %s\n", a.language.T("language"), a.language.Current())
}
