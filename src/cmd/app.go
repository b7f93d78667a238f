package cmd

import (
	"github.com/urfave/cli/v2"
)

const version = "0.1.0"

// NewApp builds the sortdemo command line application.
func NewApp() *cli.App {
	// -v is taken by --verbose.
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print version only",
	}
	return &cli.App{
		Name:                 "sortdemo",
		Usage:                "classic comparison sorts: bubble, swap and quick",
		Version:              version,
		EnableBashCompletion: true,
		Flags:                globalFlags(),
		Commands: []*cli.Command{
			CmdDemo(),
			CmdSort(),
			CmdHistory(),
			CmdBench(),
		},
	}
}

// Main runs the application with args and returns the error of the command.
func Main(args []string) error {
	return NewApp().Run(args)
}
