package cli

import (
	"io"
	"math/rand"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"go.viam.com/triangles/trianglefile"
)

type generateConfig struct {
	trianglefile.GenerateConfig
	Output string
	Seed   int64
}

func generateConfigFromContext(c *cli.Context) generateConfig {
	cfg := generateConfig{
		GenerateConfig: trianglefile.GenerateConfig{
			Count:        c.Int(flagCount),
			TriangleSize: c.Float64(flagTriangleSize),
			DomainSize:   c.Float64(flagDomainSize),
		},
		Output: c.String(flagOutput),
		Seed:   c.Int64(flagSeed),
	}
	if !c.IsSet(flagSeed) {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// GenerateAction writes a random triangle set in the format IntersectAction reads.
func GenerateAction(c *cli.Context) (err error) {
	cfg := generateConfigFromContext(c)
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
	logger.Infow("generating triangles", "count", cfg.Count, "seed", cfg.Seed)

	group := trianglefile.Generate(rand.New(rand.NewSource(cfg.Seed)), cfg.GenerateConfig)
	return writeOutput(c, cfg.Output, func(w io.Writer) error {
		return trianglefile.Write(w, group)
	})
}
