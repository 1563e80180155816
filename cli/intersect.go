package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"go.viam.com/triangles/collision"
	"go.viam.com/triangles/logging"
	"go.viam.com/triangles/octree"
	"go.viam.com/triangles/spatialmath"
	"go.viam.com/triangles/trianglefile"
)

type intersectConfig struct {
	Input      string
	Output     string
	LeafSize   int
	BruteForce bool
	NoFallback bool
	Stats      bool
}

func intersectConfigFromContext(c *cli.Context) intersectConfig {
	return intersectConfig{
		Input:      c.String(flagInput),
		Output:     c.String(flagOutput),
		LeafSize:   c.Int(flagLeafSize),
		BruteForce: c.Bool(flagBruteForce),
		NoFallback: c.Bool(flagNoFallback),
		Stats:      c.Bool(flagStats),
	}
}

// Validate ensures all parts of the config are valid.
func (cfg intersectConfig) Validate() error {
	if cfg.LeafSize <= 0 {
		return errors.Errorf("--%s must be positive, got %d", flagLeafSize, cfg.LeafSize)
	}
	if cfg.BruteForce && (cfg.NoFallback || cfg.Stats) {
		return errors.Errorf("--%s builds no octree, so --%s and --%s do not apply", flagBruteForce, flagNoFallback, flagStats)
	}
	return nil
}

// IntersectAction reads a triangle set and writes the sorted indices of every triangle that crosses
// another one.
func IntersectAction(c *cli.Context) (err error) {
	cfg := intersectConfigFromContext(c)
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := newLogger(c)
	if err != nil {
		return err
	}
	defer func() {
		multierr.AppendInto(&err, logger.Sync())
	}()

	in := c.App.Reader
	if cfg.Input != "" && cfg.Input != "-" {
		f, openErr := os.Open(cfg.Input)
		if openErr != nil {
			return errors.Wrap(openErr, "error opening input")
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		in = f
	}
	group, err := trianglefile.Read(in)
	if err != nil {
		return errors.Wrap(err, "error reading triangles")
	}

	valid := group.Valid()
	if skipped := len(group) - len(valid); skipped > 0 {
		logger.Warnw("ignoring triangles with infinite or undefined coordinates", "count", skipped)
	}

	start := time.Now()
	ids, err := crossingIDs(c, cfg, valid, logger)
	if err != nil {
		return err
	}
	logger.Debugw("found crossing triangles", "triangles", len(valid), "crossing", len(ids), "elapsed", time.Since(start))

	return writeOutput(c, cfg.Output, func(w io.Writer) error {
		return trianglefile.WriteIndices(w, ids)
	})
}

func crossingIDs(c *cli.Context, cfg intersectConfig, group spatialmath.IndexedGroup, logger logging.Logger) ([]int, error) {
	if cfg.BruteForce {
		return collision.Dedup(collision.Cross(group)), nil
	}

	tree, err := octree.New(group, cfg.LeafSize, logger.Sublogger("octree"))
	if err != nil {
		return nil, err
	}
	if cfg.Stats {
		fmt.Fprintln(c.App.ErrWriter, tree.Stats().Table())
	}
	if cfg.NoFallback {
		return tree.CrossPartitioned(), nil
	}
	return tree.Cross(), nil
}

// writeOutput runs write against the named file, or against the app's writer when name is empty.
func writeOutput(c *cli.Context, name string, write func(io.Writer) error) (err error) {
	if name == "" || name == "-" {
		return write(c.App.Writer)
	}
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "error creating output")
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))
	return write(f)
}
