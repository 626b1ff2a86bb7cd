package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/cobra"
	"github.com/vancomm/bintree/bintree"
	"github.com/vancomm/bintree/internal/config"
	"github.com/vancomm/bintree/internal/levelorder"
)

type application struct {
	logger *slog.Logger
	out    io.Writer
	errOut io.Writer
	sep    string
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	app := &application{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "bintree",
		Short: "Run binary tree algorithms on trees given in level order",
		Long: `bintree builds a binary tree from level-order tokens, where "_" marks
an absent child, and runs traversals, sum-tree checks and conversions,
root-to-leaf path listing or ancestor lookup on it.

Example: bintree traverse 1 2 3 4 5
Put "--" before the tokens when the first one is negative.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	if err := config.BindFlags(root.PersistentFlags()); err != nil {
		panic(err)
	}

	root.AddCommand(
		app.traverseCommand(),
		app.sumTreeCommand(),
		app.pathsCommand(),
		app.ancestorsCommand(),
		app.demoCommand(),
	)
	return root
}

func (a *application) setup() error {
	var handler slog.Handler = slog.NewJSONHandler(a.errOut, nil)
	if config.Development() {
		handler = tint.NewHandler(a.errOut, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	a.logger = slog.New(handler)
	a.sep = config.PathSep()

	level, err := config.LogLevel()
	if err != nil {
		return err
	}
	bintree.Log.SetOutput(a.errOut)
	bintree.Log.SetLevel(level)
	if config.Development() {
		bintree.Log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	}

	if path := config.LogFile(); path != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   path,
			MaxSize:    5,
			MaxBackups: 3,
			MaxAge:     28,
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return errors.Wrapf(err, "opening log file %s", path)
		}
		bintree.Log.AddHook(hook)
	}

	bintree.Log.WithFields(config.Fields()).Debug("configuration loaded")
	return nil
}

func (a *application) buildInts(args []string) (*bintree.Tree[int], error) {
	tree, err := levelorder.Ints(strings.Join(args, " "))
	if err != nil {
		return nil, errors.Wrap(err, "building tree")
	}
	a.logger.Debug("built tree", slog.Int("size", tree.Size()), slog.String("tree", tree.String()))
	return tree, nil
}
