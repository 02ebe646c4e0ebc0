package main

import (
	"fmt"
	"os"

	"github.com/hbjs97/poshhook/internal/cli"
)

func main() {
	app := cli.NewApp()
	cmd := app.NewRootCmd()
	err := cmd.Execute()
	if app.Logger != nil {
		app.Logger.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "poshhook: %v\n", err)
		os.Exit(int(cli.MapExitCode(err)))
	}
}
