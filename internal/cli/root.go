package cli

import (
	"bufio"
	"context"
	"os"
	"strings"
)

func (a *App) status() string {
	if a.session == nil {
		return ""
	}
	return "(" + a.session.User.Name + ") "
}

// Root runs the command loop until "exit" or EOF.
func (a *App) Root(ctx context.Context) {
	a.printf("%s - %s (type 'help' for commands)\n", a.language.T("scana"), a.language.T("scanOnTheGo"))

	scanner := bufio.NewScanner(os.Stdin)

	for {
		a.printf("scana %s> ", a.status())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "language":
			a.changeLanguage(ctx, args)
		case "exit", "quit":
			a.println("Bye!")
			return
		}

		if !a.isLoggedIn() {
			switch cmd {
			case "login":
				a.loginCmd(ctx)
			case "signup":
				a.signupCmd(ctx)
			case "help", "language", "exit", "quit":
			default:
				a.println("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "scan":
			a.scanCmd(ctx, args)
		case "history":
			a.historyCmd(ctx)
		case "rmscan":
			a.removeScanCmd(ctx, args)
		case "clearhistory":
			a.clearHistoryCmd(ctx)
		case "offers":
			a.offersCmd(ctx, args)
		case "fav":
			a.toggleFavoriteCmd(ctx, args)
		case "unfav":
			a.removeFavoriteCmd(ctx, args)
		case "favorites":
			a.favoritesCmd(ctx)
		case "profile":
			a.profileCmd(ctx)
		case "resetprofile":
			a.resetProfileCmd(ctx)
		case "logout":
			a.logoutCmd(ctx)
		case "help", "language", "exit", "quit":
		default:
			a.println("Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		a.println("Available commands: scan, history, rmscan <id>, clearhistory, offers [product], fav <n>, unfav <key>, favorites, profile, resetprofile, language <code>, logout, exit")
	} else {
		a.println("Available commands: login, signup, language <code>, exit")
	}
}
