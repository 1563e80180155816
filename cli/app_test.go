package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.viam.com/test"
)

const exampleInput = `3
1 1 1  5 1 1  3 4 1
3 1 -3  3 1 3  3 4 0
-10 5 0  2 3 0  1 6 0
`

type testApp struct {
	out, errOut bytes.Buffer
}

func (ta *testApp) run(t *testing.T, stdin string, args ...string) error {
	t.Helper()
	app := NewApp(&ta.out, &ta.errOut)
	app.Reader = strings.NewReader(stdin)
	return app.Run(append([]string{"triangles"}, args...))
}

func TestIntersectAction(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"--brute-force"},
		{"--no-fallback", "--leaf-size", "1"},
		{"--leaf-size", "1"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			var ta testApp
			test.That(t, ta.run(t, exampleInput, args...), test.ShouldBeNil)
			test.That(t, ta.out.String(), test.ShouldEqual, "0\n1\n")
		})
	}

	t.Run("files", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "in.txt")
		output := filepath.Join(dir, "out.txt")
		test.That(t, os.WriteFile(input, []byte(exampleInput), 0o600), test.ShouldBeNil)

		var ta testApp
		test.That(t, ta.run(t, "", "-i", input, "-o", output), test.ShouldBeNil)
		test.That(t, ta.out.Len(), test.ShouldEqual, 0)
		written, err := os.ReadFile(output)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, string(written), test.ShouldEqual, "0\n1\n")
	})

	t.Run("stats", func(t *testing.T) {
		var ta testApp
		test.That(t, ta.run(t, exampleInput, "--stats", "--leaf-size", "1"), test.ShouldBeNil)
		test.That(t, ta.errOut.String(), test.ShouldContainSubstring, "complexity ratio")
		test.That(t, ta.out.String(), test.ShouldEqual, "0\n1\n")
	})

	t.Run("undefined triangles are skipped", func(t *testing.T) {
		var ta testApp
		input := "2\n0 0 0 1 0 0 0 1 0\nnan 0 0 1 0 0 0 1 0\n"
		test.That(t, ta.run(t, input), test.ShouldBeNil)
		test.That(t, ta.out.String(), test.ShouldEqual, "")
		test.That(t, ta.errOut.String(), test.ShouldContainSubstring, "ignoring triangles")
	})

	t.Run("errors", func(t *testing.T) {
		var ta testApp
		err := ta.run(t, exampleInput, "--leaf-size", "0")
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "--leaf-size must be positive")

		err = ta.run(t, exampleInput, "--brute-force", "--stats")
		test.That(t, err, test.ShouldNotBeNil)

		err = ta.run(t, "2\n1 2 3", "--brute-force")
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "error reading triangles")

		err = ta.run(t, "", "-i", filepath.Join(t.TempDir(), "missing.txt"))
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "error opening input")
	})
}

func TestGenerateAction(t *testing.T) {
	var first, second testApp
	args := []string{"generate", "--count", "300", "--triangle-size", "5", "--domain-size", "40", "--seed", "3"}
	test.That(t, first.run(t, "", args...), test.ShouldBeNil)
	test.That(t, second.run(t, "", args...), test.ShouldBeNil)
	test.That(t, first.out.String(), test.ShouldStartWith, "300\n")
	test.That(t, first.out.String(), test.ShouldEqual, second.out.String())

	// the generated scene feeds straight back in, and the octree agrees with the brute force pass
	var partitioned, brute testApp
	test.That(t, partitioned.run(t, first.out.String(), "--no-fallback"), test.ShouldBeNil)
	test.That(t, brute.run(t, first.out.String(), "--brute-force"), test.ShouldBeNil)
	test.That(t, partitioned.out.String(), test.ShouldEqual, brute.out.String())
	test.That(t, brute.out.Len(), test.ShouldBeGreaterThan, 0)

	test.That(t, first.errOut.String(), test.ShouldContainSubstring, "generating triangles")
	test.That(t, first.errOut.String(), test.ShouldContainSubstring, `"seed":3`)

	var bad testApp
	test.That(t, bad.run(t, "", "generate", "--count=-2"), test.ShouldNotBeNil)
}

func TestLogLevel(t *testing.T) {
	var quiet testApp
	test.That(t, quiet.run(t, "", "--log-level", "warn", "generate", "--count", "3"), test.ShouldBeNil)
	test.That(t, quiet.errOut.Len(), test.ShouldEqual, 0)

	var debug testApp
	test.That(t, debug.run(t, exampleInput, "--log-level", "DEBUG", "--leaf-size", "1"), test.ShouldBeNil)
	test.That(t, debug.errOut.String(), test.ShouldContainSubstring, "triangles.octree")
	test.That(t, debug.errOut.String(), test.ShouldContainSubstring, "built octree")
	test.That(t, debug.out.String(), test.ShouldEqual, "0\n1\n")

	var shorthand testApp
	test.That(t, shorthand.run(t, exampleInput, "--debug"), test.ShouldBeNil)
	test.That(t, shorthand.errOut.String(), test.ShouldContainSubstring, "found crossing triangles")

	var bad testApp
	err := bad.run(t, exampleInput, "--log-level", "loud")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "invalid --log-level")
	test.That(t, bad.out.Len(), test.ShouldEqual, 0)
}
