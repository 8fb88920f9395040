package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/foorum/internal/buildinfo"
	"github.com/dmitrijs2005/foorum/internal/client/cli"
	"github.com/dmitrijs2005/foorum/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	app, closer, err := cli.Bootstrap(ctx, cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer closer.Close()

	app.Run(ctx)

}
