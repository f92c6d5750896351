package cli

import (
	"context"
)

func (a *App) scanCmd(ctx context.Context, args []string) {
	photoURI := ""
	if len(args) > 0 {
		photoURI = args[0]
	}

	a.println(a.language.T("analyzing"))
	res, err := a.scans.Scan(ctx, photoURI)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}

	a.printf("%s %s - %s (%.0f%%)\n",
		a.language.T("success"), res.Product.Name, res.Product.Price, res.Product.Confidence*100)
	a.printf("Use 'offers' to compare prices for %s\n", res.Product.Name)
}

func (a *App) historyCmd(ctx context.Context) {
	list, err := a.history.Load(ctx)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}
	if len(list) == 0 {
		a.println(a.language.T("noScansYet"))
		return
	}

	a.println(a.language.T("recentScans") + ":")
	for _, rec := range list {
		a.printf("  %s  %s  %s  (id %s)\n", rec.Date, rec.ProductName, rec.Price, rec.ID)
	}
}

func (a *App) removeScanCmd(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.println("Usage: rmscan <id>")
		return
	}
	if err := a.history.Remove(ctx, args[0]); err != nil {
		a.printf("error: %v\n", err)
		return
	}
	a.println("Removed")
}

func (a *App) clearHistoryCmd(ctx context.Context) {
	if err := a.history.Clear(ctx); err != nil {
		a.printf("error: %v\n", err)
		return
	}
	a.println("History cleared")
}
