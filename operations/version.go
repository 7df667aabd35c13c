package operations

import (
	"fmt"

	"github.com/nutshell-app/nutshell"
	"github.com/urfave/cli"
)

func Version() cli.Command {
	return cli.Command{
		Name:  "version",
		Usage: "prints the revision of the current binary",
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, nutshell.ClientVersion)
			fmt.Fprintln(c.App.Writer, nutshell.BuildRevision)
			return nil
		},
	}
}
