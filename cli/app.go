// Package cli contains the command line interface of the triangle tools.
package cli

import (
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/triangles/logging"
)

const (
	// Flags.
	flagInput        = "input"
	flagOutput       = "output"
	flagLeafSize     = "leaf-size"
	flagBruteForce   = "brute-force"
	flagNoFallback   = "no-fallback"
	flagStats        = "stats"
	flagDebug        = "debug"
	flagLogLevel     = "log-level"
	flagCount        = "count"
	flagTriangleSize = "triangle-size"
	flagDomainSize   = "domain-size"
	flagSeed         = "seed"

	defaultLeafSize = 20
)

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter set to errOut. Input is
// read from stdin unless --input names a file.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "triangles",
		Usage:           "find which triangles of a set cross another triangle of the set",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagInput,
				Aliases: []string{"i"},
				Usage:   "read triangles from `FILE` instead of stdin",
			},
			&cli.StringFlag{
				Name:    flagOutput,
				Aliases: []string{"o"},
				Usage:   "write crossing triangle indices to `FILE` instead of stdout",
			},
			&cli.IntFlag{
				Name:  flagLeafSize,
				Value: defaultLeafSize,
				Usage: "number of triangles the octree aims to put in each leaf",
			},
			&cli.BoolFlag{
				Name:  flagBruteForce,
				Usage: "test every pair of triangles without building an octree",
			},
			&cli.BoolFlag{
				Name:  flagNoFallback,
				Usage: "always search leaf by leaf, even when a single pass over all pairs is cheaper",
			},
			&cli.BoolFlag{
				Name:  flagStats,
				Usage: "print octree statistics to stderr",
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Value: "info",
				Usage: "lowest level logged to stderr: debug, info, warn or error",
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "shorthand for --log-level debug",
			},
		},
		Action: IntersectAction,
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "write a random set of small triangles scattered in a large cube",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    flagOutput,
						Aliases: []string{"o"},
						Usage:   "write triangles to `FILE` instead of stdout",
					},
					&cli.IntFlag{
						Name:  flagCount,
						Value: 10000,
						Usage: "number of triangles",
					},
					&cli.Float64Flag{
						Name:  flagTriangleSize,
						Value: 20,
						Usage: "largest offset of the second and third vertex from the first, per axis",
					},
					&cli.Float64Flag{
						Name:  flagDomainSize,
						Value: 1000,
						Usage: "side of the cube holding the first vertices",
					},
					&cli.Int64Flag{
						Name:  flagSeed,
						Usage: "random seed, defaults to the current time",
					},
				},
				Action: GenerateAction,
			},
		},
	}
}

// newLogger writes to the app's error stream, so indices on stdout stay machine readable.
func newLogger(c *cli.Context) (logging.Logger, error) {
	level, err := logging.LevelFromString(c.String(flagLogLevel))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --%s", flagLogLevel)
	}
	if c.Bool(flagDebug) {
		level = logging.DEBUG
	}
	logger := logging.NewWriterLogger("triangles", c.App.ErrWriter)
	logger.SetLevel(level)
	return logger, nil
}
