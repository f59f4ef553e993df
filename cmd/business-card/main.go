// Command business-card shows a personal business card with a clickable
// LinkedIn link.
package main

import (
	"os"

	"github.com/tartampluch/go-cards/internal/cli"
	"github.com/tartampluch/go-cards/internal/config"
)

// main delegates to cli.Main so that deferred calls (like closing the log
// file) run before the process exits.
func main() {
	os.Exit(cli.Main(cli.Options{
		Name:   config.CardAppName,
		ID:     config.CardAppID,
		Screen: config.ScreenBusinessCard,
		VCard:  true,
	}, os.Args[1:], os.Stdout))
}
