package main

import (
	"context"
	"log"
	"os"

	"github.com/scana-dk/scana/internal/buildinfo"
	"github.com/scana-dk/scana/internal/cli"
	"github.com/scana-dk/scana/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)

}
