// Package cmd implements the CLI application to simulate stock investments.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/nroux/stocksim"
	"github.com/nroux/stocksim/yahoo"
)

// Commands lists the subcommands in registration order.
// A main package registers each one and calls Execute() on the user-selected one.
var Commands = []subcommands.Command{
	&simulateCmd{},
	&priceCmd{},
	&portfolioCmd{},
	&bestCmd{},
	&compareCmd{},
	&dcaCmd{},
	&explainCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var currency = flag.String("currency", "USD", "Currency in which amounts are expressed")
var timeout = flag.Duration("timeout", 60*time.Second, "Overall time budget for price lookups")

// newSimulator wires the Yahoo Finance quote provider into a simulator.
func newSimulator() *stocksim.Simulator {
	return stocksim.New(yahoo.NewClient())
}

// money converts a command line amount into a Money in the app currency.
func money(v float64) stocksim.Money {
	return stocksim.M(v, *currency)
}

// withTimeout bounds all the price lookups a command performs.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, *timeout)
}

// fail reports an error to the user and maps it to the conventional exit
// status: a bad request is a usage error, anything else a plain failure.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, stocksim.ErrInvalidRequest) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
