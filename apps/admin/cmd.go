package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/eskwela/admin/core"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	out io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  dump -entity users|content|quizzes [-count N] [-seed S] - print a seeded fixture pool as JSON")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	dumpCmd := flag.NewFlagSet("dump", flag.ExitOnError)
	dumpEntity := dumpCmd.String("entity", "", "The entity pool to dump: users, content or quizzes.")
	dumpCount := dumpCmd.Int("count", 0, "Pool size. Defaults to the configured size for the entity.")
	dumpSeed := dumpCmd.Int64("seed", core.Conf.Mock.Seed, "RNG seed. Defaults to the configured seed.")

	switch args[1] {
	case "dump":
		if err := dumpCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *dumpEntity == "" {
			dumpCmd.Usage()
			return errHelp
		}
		return cli.dump(*dumpEntity, *dumpCount, *dumpSeed)
	default:
		cli.printUsage()
		return errHelp
	}
}
