package cli

import (
	"context"
)

func (a *App) profileCmd(ctx context.Context) {
	p, err := a.profile.Load(ctx)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}

	a.printf("%s <%s>\n", p.Name, p.Email)
	a.printf("  %s: %s\n", a.language.T("memberSince"), p.MemberSince)
	a.printf("  %s: %d\n", a.language.T("scans"), p.TotalScans)
	a.printf("  %s: %d\n", a.language.T("favorites"), p.TotalFavorites)
	a.printf("  %s: %d\n", a.language.T("elo"), p.Elo)
}

func (a *App) resetProfileCmd(ctx context.Context) {
	if err := a.profile.Reset(ctx); err != nil {
		a.printf("error: %v\n", err)
		return
	}
	a.println("Profile reset")
}
