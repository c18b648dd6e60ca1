// Package main is the entry point for the impact CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/impact/cmd/impact/commands"
	"go.trai.ch/impact/internal/app"
	"go.trai.ch/impact/internal/core/domain"
	_ "go.trai.ch/impact/internal/wiring"
)

// Exit codes. CI distinguishes a failed graph regeneration and an
// unresolvable reference from generic failures.
const (
	exitOK            = 0
	exitError         = 1
	exitExportFailed  = 2
	exitRefUnresolved = 3
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return exitError
	}

	cli := commands.New(components.App)
	if err := cli.Execute(ctx); err != nil {
		// zerr prints a report with metadata when using %+v.
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		switch {
		case errors.Is(err, domain.ErrGraphExportFailed):
			return exitExportFailed
		case errors.Is(err, domain.ErrRefNotResolved):
			return exitRefUnresolved
		default:
			return exitError
		}
	}
	return exitOK
}
