package config

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	keyDevelopment = "development"
	keyLogLevel    = "log_level"
	keyLogFile     = "log_file"
	keyPathSep     = "path_sep"
)

var v = viper.New()

func init() {
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyPathSep, " -> ")

	_ = v.BindEnv(keyDevelopment, "DEVELOPMENT")
	_ = v.BindEnv(keyLogLevel, "BINTREE_LOG_LEVEL")
	_ = v.BindEnv(keyLogFile, "BINTREE_LOG_FILE")
	_ = v.BindEnv(keyPathSep, "BINTREE_PATH_SEP")
}

// BindFlags registers the configuration flags on fs. Flags given on the
// command line take precedence over the environment.
func BindFlags(fs *pflag.FlagSet) error {
	fs.Bool("dev", false, "Development mode: colored debug output")
	fs.String("log-level", "info", "Log level of the tree library (panic..trace)")
	fs.String("log-file", "", "Also write library logs to this rotating file")
	fs.String("sep", " -> ", "Separator between values of a printed path")

	for key, flag := range map[string]string{
		keyDevelopment: "dev",
		keyLogLevel:    "log-level",
		keyLogFile:     "log-file",
		keyPathSep:     "sep",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return errors.Wrapf(err, "binding flag %s", flag)
		}
	}
	return nil
}

func LogLevel() (logrus.Level, error) {
	level, err := logrus.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return logrus.InfoLevel, errors.Wrap(err, "reading log level")
	}
	return level, nil
}

func LogFile() string {
	return v.GetString(keyLogFile)
}

func PathSep() string {
	return v.GetString(keyPathSep)
}

// Fields summarizes the configuration for logging.
func Fields() logrus.Fields {
	return logrus.Fields{
		"development": Development(),
		"log_level":   v.GetString(keyLogLevel),
		"log_file":    LogFile(),
		"path_sep":    PathSep(),
	}
}
