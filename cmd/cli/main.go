package main

import (
	"context"
	"log"
	"os"

	"github.com/ekalnins/campustrade/internal/buildinfo"
	"github.com/ekalnins/campustrade/internal/client/cli"
	"github.com/ekalnins/campustrade/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
