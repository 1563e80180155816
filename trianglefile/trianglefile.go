// Package trianglefile reads and writes the plain text triangle format: a triangle count followed by
// nine whitespace separated coordinates per triangle, three per vertex.
package trianglefile

import (
	"bufio"
	"io"
	"math/rand"
	"strconv"

	"github.com/pkg/errors"

	"go.viam.com/triangles/spatialmath"
)

// Read parses a triangle count followed by that many triangles. Triangles are indexed by their
// position in the input.
func Read(r io.Reader) (spatialmath.IndexedGroup, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "error reading triangle count")
		}
		return nil, errors.New("missing triangle count")
	}
	count, err := strconv.Atoi(scanner.Text())
	if err != nil {
		return nil, errors.Wrapf(err, "invalid triangle count %q", scanner.Text())
	}
	if count < 0 {
		return nil, errors.Errorf("negative triangle count (%d)", count)
	}

	readCoord := func(tri, coord int) (float64, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, errors.Wrapf(err, "error reading triangle %d", tri)
			}
			return 0, errors.Errorf("unexpected end of input at triangle %d coordinate %d, expected %d triangles",
				tri, coord, count)
		}
		val, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid coordinate at triangle %d coordinate %d", tri, coord)
		}
		return val, nil
	}

	// Do not trust the count for the allocation, the input may be much shorter.
	const maxPrealloc = 1 << 16
	tris := make([]*spatialmath.Triangle, 0, min(count, maxPrealloc))
	for i := 0; i < count; i++ {
		var coords [3 * spatialmath.Axes]float64
		for j := range coords {
			if coords[j], err = readCoord(i, j); err != nil {
				return nil, err
			}
		}
		tris = append(tris, spatialmath.NewTriangle(
			spatialmath.NewPoint(coords[0], coords[1], coords[2]),
			spatialmath.NewPoint(coords[3], coords[4], coords[5]),
			spatialmath.NewPoint(coords[6], coords[7], coords[8]),
		))
	}
	return spatialmath.NewIndexedGroup(tris), nil
}

// Write writes the group in the format Read parses: the count, then one vertex per line with a blank
// line after each triangle.
func Write(w io.Writer, group spatialmath.IndexedGroup) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strconv.Itoa(len(group)) + "\n"); err != nil {
		return err
	}
	for _, t := range group {
		for _, v := range t.Vertices() {
			line := formatFloat(v.X) + " " + formatFloat(v.Y) + " " + formatFloat(v.Z) + "\n"
			if _, err := bw.WriteString(line); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteIndices writes one id per line.
func WriteIndices(w io.Writer, ids []int) error {
	bw := bufio.NewWriter(w)
	for _, id := range ids {
		if _, err := bw.WriteString(strconv.Itoa(id) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// GenerateConfig describes a random test scene.
type GenerateConfig struct {
	// Count is the number of triangles.
	Count int
	// TriangleSize bounds how far, per axis, the second and third vertex are from the first.
	TriangleSize float64
	// DomainSize bounds every coordinate of the first vertex.
	DomainSize float64
}

// DefaultGenerateConfig is the scene used for the end to end tests: ten thousand small triangles in a
// large cube, sparse enough that most triangles cross nothing.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{Count: 10000, TriangleSize: 20, DomainSize: 1000}
}

// Validate checks that the scene is not empty or inverted.
func (cfg GenerateConfig) Validate() error {
	if cfg.Count < 0 {
		return errors.Errorf("triangle count must not be negative, got %d", cfg.Count)
	}
	if !(cfg.TriangleSize > 0) {
		return errors.Errorf("triangle size must be positive, got %v", cfg.TriangleSize)
	}
	if !(cfg.DomainSize > 0) {
		return errors.Errorf("domain size must be positive, got %v", cfg.DomainSize)
	}
	return nil
}

// Generate returns cfg.Count triangles, each with a first vertex uniform in [0, DomainSize)^3 and two
// more vertices offset from it by a vector uniform in [0, TriangleSize)^3.
func Generate(rng *rand.Rand, cfg GenerateConfig) spatialmath.IndexedGroup {
	uniform := func(limit float64) float64 {
		return rng.Float64() * limit
	}
	near := func(p spatialmath.Point) spatialmath.Point {
		return p.Add(spatialmath.NewVector(uniform(cfg.TriangleSize), uniform(cfg.TriangleSize), uniform(cfg.TriangleSize)))
	}

	tris := make([]*spatialmath.Triangle, 0, max(cfg.Count, 0))
	for i := 0; i < cfg.Count; i++ {
		a := spatialmath.NewPoint(uniform(cfg.DomainSize), uniform(cfg.DomainSize), uniform(cfg.DomainSize))
		b := near(a)
		c := near(a)
		tris = append(tris, spatialmath.NewTriangle(a, b, c))
	}
	return spatialmath.NewIndexedGroup(tris)
}
