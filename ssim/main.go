// Command ssim simulates stock investments from the command line.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/nroux/stocksim/cmd"
	"github.com/posener/complete/v2"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		sub[c.Name()] = &complete.Command{}
	}

	// Shell completion, when installed with COMP_INSTALL=1 ssim.
	(&complete.Command{Sub: sub}).Complete("ssim")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
