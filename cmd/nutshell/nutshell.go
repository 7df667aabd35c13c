package main

import (
	"os"

	"github.com/mongodb/grip"
	"github.com/mongodb/grip/level"
	"github.com/mongodb/grip/send"
	"github.com/nutshell-app/nutshell"
	"github.com/nutshell-app/nutshell/operations"
	"github.com/urfave/cli"
)

func main() {
	// The command line interface is managed by the cli package. This, plus
	// the basic configuration in buildApp(), is all that's necessary for
	// bootstrapping the service.
	app := buildApp()
	grip.EmergencyFatal(app.Run(os.Args))
}

func buildApp() *cli.App {
	app := cli.NewApp()
	app.Name = nutshell.ServiceName
	app.Usage = "study tracker REST API"
	app.Version = nutshell.ClientVersion

	app.Commands = []cli.Command{
		operations.Version(),
		operations.Service(),
	}

	// These are global options. Use this to configure logging or
	// other options independent from specific sub commands.
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "level",
			Value: nutshell.DefaultLogLevel,
			Usage: "Specify lowest visible log level as string: 'emergency|alert|critical|error|warning|notice|info|debug|trace'",
		},
	}

	app.Before = func(c *cli.Context) error {
		return loggingSetup(app.Name, c.String("level"))
	}

	return app
}

func loggingSetup(name, l string) error {
	if err := grip.SetSender(send.MakeErrorLogger()); err != nil {
		return err
	}
	grip.SetName(name)

	sender := grip.GetSender()
	info := sender.Level()
	info.Threshold = level.FromString(l)

	return sender.SetLevel(info)
}
