package main

import (
	"testing"

	"github.com/amonks/unlockpath/internal/testsupport"
	"github.com/rogpeppe/go-internal/testscript"
)

var scriptCmds = map[string]func(ts *testscript.TestScript, neg bool, args []string){
	"envset":       testsupport.CmdEnvSet,
	"convertgraph": testsupport.CmdConvertGraph,
	"graphdigest":  testsupport.CmdGraphDigest,
}

func TestPlanScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/plan",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
		Cmds: scriptCmds,
	})
}

func TestGraphScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/graph",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
		Cmds: scriptCmds,
	})
}

func TestVersionScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/version",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
	})
}
