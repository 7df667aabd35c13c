package operations

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/nutshell-app/nutshell"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func mergeBeforeFuncs(ops ...cli.BeforeFunc) cli.BeforeFunc {
	return func(c *cli.Context) error {
		catcher := grip.NewBasicCatcher()

		for _, op := range ops {
			catcher.Add(op(c))
		}

		return catcher.Resolve()
	}
}

func requireFileExists(name string) cli.BeforeFunc {
	return func(c *cli.Context) error {
		path := c.String(name)
		if path == "" {
			return nil
		}
		expanded, err := homedir.Expand(path)
		if err != nil {
			return errors.Wrapf(err, "expanding %s '%s'", name, path)
		}
		if _, err := os.Stat(expanded); os.IsNotExist(err) {
			return errors.Errorf("%s '%s' does not exist", name, path)
		}

		return nil
	}
}

// loadEnvFile populates the process environment from the dotenv file named by
// the flag. Variables that are already set are not overridden. A missing
// default file is ignored, but a missing file named explicitly is an error.
func loadEnvFile(name string) cli.BeforeFunc {
	return func(c *cli.Context) error {
		path := c.String(name)
		if path == "" {
			return nil
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if c.IsSet(name) {
				return errors.Errorf("%s '%s' does not exist", name, path)
			}
			return nil
		}

		if err := godotenv.Load(path); err != nil {
			return errors.Wrapf(err, "loading environment from '%s'", path)
		}
		grip.Debug(message.Fields{
			"message": "loaded environment file",
			"path":    path,
		})

		return nil
	}
}

// resolveConfPath returns the configuration file to read, expanding a leading
// "~" to the user's home directory. Without an explicit path the default
// location is used if a file exists there.
func resolveConfPath(path string) (string, error) {
	if path != "" {
		expanded, err := homedir.Expand(path)
		return expanded, errors.Wrapf(err, "expanding path '%s'", path)
	}
	if _, err := os.Stat(nutshell.DefaultServiceConfigurationFileName); err == nil {
		return nutshell.DefaultServiceConfigurationFileName, nil
	}

	return "", nil
}
