package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	cli "github.com/urfave/cli/v2"

	"github.com/yeqown/avl"
	"github.com/yeqown/avl/equalpath"
)

// avl-ctl is a command line tool to exercise the avl tree.
// Usage:
// $ avl-ctl [global flags] sub-command [sub-command flags] [args...]
// It has sub-commands:
// - replay: avl-ctl replay --file ops.txt [--check] [--dump]
// - paths:  avl-ctl paths 1,2,3,#,#,4,5
// - bench:  avl-ctl bench -n 100000 [--seed 1]
//
// Global flags:
// - debug: log every rotation to stderr

func main() {
	app := newCliApp(afero.NewOsFs(), os.Stdout)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "avl-ctl failed: %v\n", err)
		os.Exit(1)
	}
}

func newCliApp(fs FileSystem, out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "avl-ctl"
	app.Usage = "avl tree control tool"
	app.Version = "0.0.1"
	app.Writer = out
	app.ErrWriter = out
	app.Commands = []*cli.Command{
		newReplayCommand(),
		newPathsCommand(),
		newBenchCommand(),
	}
	app.Before = func(c *cli.Context) error {
		if c.Context == nil {
			c.Context = context.Background()
		}
		c.Context = contextWithFS(c.Context, fs)
		return nil
	}
	// global flags
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "log tree rotations",
		},
	}

	return app
}

func newReplayCommand() *cli.Command {
	return &cli.Command{
		Name:  "replay",
		Usage: "replay an operation script against an empty tree",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "path to the script",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "validate the tree after every operation",
			},
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "print the final tree",
			},
		},
		Action: func(c *cli.Context) error {
			fs := fsFromContext(c.Context)
			filename := c.String("file")
			exists, err := scriptExists(fs, filename)
			if err != nil {
				return errors.Wrap(err, "stat script failed")
			}
			if !exists {
				return errors.Errorf("script %s does not exist", filename)
			}

			ops, err := readScript(fs, filename)
			if err != nil {
				return err
			}

			tree, err := replay(c.App.Writer, ops, c.Bool("check"), avl.WithLogger(newLogger(c)))
			if err != nil {
				return err
			}

			if c.Bool("dump") {
				tree.Fprint(c.App.Writer)
			}
			fmt.Fprintf(c.App.Writer, "len=%d height=%d\n", tree.Len(), tree.Height())
			return nil
		},
	}
}

// newLogger returns a logger writing to the app's error writer, at debug level
// when the global debug flag is set.
func newLogger(c *cli.Context) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(c.App.ErrWriter)
	if c.Bool("debug") {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func replay(w io.Writer, ops []op, check bool, options ...avl.Option) (*avl.Tree[int, string], error) {
	tree := avl.NewOrdered[int, string](options...)
	for _, o := range ops {
		switch o.kind {
		case opInsert:
			tree.Insert(o.key, o.value)
		case opRemove:
			tree.Remove(o.key)
		case opGet:
			if v, ok := tree.Get(o.key); ok {
				fmt.Fprintf(w, "%d = %s\n", o.key, v)
			} else {
				fmt.Fprintf(w, "%d not found\n", o.key)
			}
		case opDump:
			tree.Fprint(w)
		}

		if check {
			if err := tree.Validate(); err != nil {
				return nil, errors.Wrapf(err, "line %d: %s", o.line, o.kind)
			}
		}
	}

	return tree, nil
}

func newPathsCommand() *cli.Command {
	return &cli.Command{
		Name:      "paths",
		Usage:     "check whether all leaves of a level-order tree are at the same depth",
		ArgsUsage: "<comma separated level order, # for no child>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("paths needs exactly one argument")
			}

			root, err := equalpath.FromLevelOrder(strings.Split(c.Args().First(), ","))
			if err != nil {
				return err
			}

			fmt.Fprintln(c.App.Writer, equalpath.EqualPaths(root))
			return nil
		},
	}
}

func newBenchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "insert random keys, remove half of them and report the shape",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "number of keys to insert",
				Value:   100000,
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "random seed, 0 means current time",
			},
		},
		Action: func(c *cli.Context) error {
			n := c.Int("count")
			if n <= 0 {
				return errors.Errorf("count must be positive, got %d", n)
			}
			seed := c.Int64("seed")
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			r, err := bench(rand.New(rand.NewSource(seed)), n)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "inserted=%d removed=%d len=%d height=%d bound=%.2f elapsed=%s\n",
				r.inserted, r.removed, r.length, r.height, r.bound, r.elapsed)
			return nil
		},
	}
}

type benchResult struct {
	inserted int
	removed  int
	length   int
	height   int
	bound    float64
	elapsed  time.Duration
}

func bench(rnd *rand.Rand, n int) (benchResult, error) {
	tree := avl.NewOrdered[int, int]()
	keys := rnd.Perm(n)

	start := time.Now()
	for _, k := range keys {
		tree.Insert(k, k)
	}
	for _, k := range keys[:n/2] {
		tree.Remove(k)
	}
	elapsed := time.Since(start)

	if err := tree.Validate(); err != nil {
		return benchResult{}, errors.Wrap(err, "tree invalid after bench")
	}

	r := benchResult{
		inserted: n,
		removed:  n / 2,
		length:   tree.Len(),
		height:   tree.Height(),
		bound:    1.44 * math.Log2(float64(tree.Len()+2)),
		elapsed:  elapsed,
	}
	if float64(r.height) > r.bound {
		return r, errors.Errorf("height %d exceeds bound %.2f", r.height, r.bound)
	}

	return r, nil
}
