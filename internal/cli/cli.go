// Package cli implements the non-interactive command surface of feona
// plus the command that launches the interactive browser.
package cli

import (
	"feona/internal/config"
	"feona/internal/ledger"

	"github.com/google/subcommands"
)

// Register registers every feona subcommand on the commander. A main
// package calls Register() and then Execute() on the user-selected
// command.
func Register(c *subcommands.Commander, conf *config.Config) {
	c.Register(&addCmd{conf: conf}, "ledger")
	c.Register(&listCmd{conf: conf}, "ledger")
	c.Register(&delCmd{conf: conf}, "ledger")
	c.Register(&exportCmd{conf: conf}, "ledger")
	c.Register(&tuiCmd{conf: conf}, "interactive")
}

// store builds the ledger store from the configured storage root.
func store(conf *config.Config) *ledger.Store {
	return ledger.NewStore(conf.StorageRoot)
}
