package operations

import "github.com/urfave/cli"

func Service() cli.Command {
	return cli.Command{
		Name:  "service",
		Usage: "run nutshell services",
		Subcommands: []cli.Command{
			startWebService(),
		},
	}
}
