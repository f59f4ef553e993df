// Command task-manager shows the "all tasks completed" screen.
package main

import (
	"os"

	"github.com/tartampluch/go-cards/internal/cli"
	"github.com/tartampluch/go-cards/internal/config"
)

func main() {
	os.Exit(cli.Main(cli.Options{
		Name:   config.TaskAppName,
		ID:     config.TaskAppID,
		Screen: config.ScreenTaskDone,
	}, os.Args[1:], os.Stdout))
}
