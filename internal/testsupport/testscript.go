package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/amonks/unlockpath/graphfile"
	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce  sync.Once
	unlockPath string
	buildErr   error
)

// BuildUnlock builds the unlock binary once and returns its path.
func BuildUnlock(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "unlock-bin-")
		if err != nil {
			buildErr = err
			return
		}

		unlockPath = filepath.Join(binDir, "unlock")
		cmd := exec.Command("go", "build", "-o", unlockPath, "./cmd/unlock")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build unlock: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return unlockPath
}

// SetupScriptEnv configures common environment variables for testscript.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("UNLOCK", BuildUnlock(t))
	env.Setenv("NO_COLOR", "1")

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	return nil
}

// CmdEnvSet stores the trimmed contents of a file in an env var.
func CmdEnvSet(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("envset does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: envset VAR FILE")
	}

	value := strings.TrimSpace(ts.ReadFile(args[1]))
	ts.Setenv(args[0], value)
}

// CmdConvertGraph rewrites a graph file into the format implied by the
// destination extension.
func CmdConvertGraph(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("convertgraph does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: convertgraph SRC DST")
	}

	g, err := graphfile.Load(ts.MkAbs(args[0]))
	ts.Check(err)
	ts.Check(graphfile.Write(ts.MkAbs(args[1]), g))
}

// CmdGraphDigest stores the digest of a graph file in an env var.
func CmdGraphDigest(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("graphdigest does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: graphdigest FILE VAR")
	}

	g, err := graphfile.Load(ts.MkAbs(args[0]))
	ts.Check(err)
	digest, err := graphfile.Digest(g)
	ts.Check(err)
	ts.Setenv(args[1], digest)
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
