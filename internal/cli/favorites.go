package cli

import (
	"context"
	"strconv"
	"strings"
)

// offersCmd lists the price comparison for a product. Without arguments it
// compares the most recently scanned product.
func (a *App) offersCmd(ctx context.Context, args []string) {
	product := strings.Join(args, " ")
	if product == "" {
		list, err := a.history.Load(ctx)
		if err != nil {
			a.printf("error: %v\n", err)
			return
		}
		if len(list) > 0 {
			product = list[0].ProductName
		}
	}

	offers := a.offers.Compare(product)
	a.lastOffers = offers

	a.printf("%s - %s:\n", a.language.T("bestOffers"), offers[0].ProductName)
	for i, o := range offers {
		fav, err := a.favorites.IsFavorite(ctx, o)
		if err != nil {
			a.printf("error: %v\n", err)
			return
		}
		mark := " "
		if fav {
			mark = "*"
		}
		a.printf("  %d%s %-13s %8.0f kr  %s %.0f kr  %s %s  %s %.1f (%d %s)\n",
			i+1, mark, o.Store, o.Price,
			a.language.T("shipping"), o.Shipping,
			a.language.T("deliveryTime"), o.ETA,
			a.language.T("rating"), o.Rating, o.ReviewCount, a.language.T("reviews"))
	}
}

// toggleFavoriteCmd flips the favorite state of offer number n from the last
// "offers" listing.
func (a *App) toggleFavoriteCmd(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.println("Usage: fav <n>  (run 'offers' first)")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.lastOffers) {
		a.println("Usage: fav <n>  (run 'offers' first)")
		return
	}

	on, err := a.offers.Toggle(ctx, a.lastOffers[n-1])
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}
	if on {
		a.println(a.language.T("addToFavorites"))
	} else {
		a.println(a.language.T("removeFromFavorites"))
	}
}

func (a *App) removeFavoriteCmd(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.println("Usage: unfav <key>")
		return
	}
	if err := a.offers.RemoveFavorite(ctx, args[0]); err != nil {
		a.printf("error: %v\n", err)
		return
	}
	a.println("Removed")
}

func (a *App) favoritesCmd(ctx context.Context) {
	list, err := a.favorites.Load(ctx)
	if err != nil {
		a.printf("error: %v\n", err)
		return
	}
	if len(list) == 0 {
		a.println(a.language.T("favorites") + ": -")
		return
	}

	a.println(a.language.T("favorites") + ":")
	for _, fav := range list {
		a.printf("  %s @ %s  %.0f kr  (key %s)\n", fav.ProductName, fav.Store, fav.Price, fav.Key)
	}
}
