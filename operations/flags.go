package operations

import (
	"strings"

	"github.com/urfave/cli"
)

const (
	confFlagName    = "conf"
	envFileFlagName = "env-file"

	defaultEnvFile = ".env"
)

func joinFlagNames(ids ...string) string { return strings.Join(ids, ", ") }

func serviceConfigFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags,
		cli.StringFlag{
			Name:  joinFlagNames(confFlagName, "config", "c"),
			Usage: "path to the service configuration file (optional)",
		},
		cli.StringFlag{
			Name:  envFileFlagName,
			Usage: "path to a dotenv file with environment overrides",
			Value: defaultEnvFile,
		},
	)
}
