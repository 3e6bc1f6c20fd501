package optargs

import (
	"bytes"
	"testing"
)

func helpTestSet() *OptSet {
	var force, quiet, secret bool
	var level int
	var output string
	var addVerbose bool
	addSet := New(
		Opt{ID: 'v', Name: "verbose", Action: SetTrue, Dest: &addVerbose},
	)
	remoteSet := New(
		Opt{ID: -1, Name: "add", Sub: addSet, ArgName: "NAME", Description: "Add a remote by NAME."},
	)
	return New(
		Opt{ID: 'f', Name: "force", Action: SetTrue, Dest: &force, Description: "Force the operation."},
		Opt{ID: 'o', Name: "output", Action: Store, Dest: &output, ArgName: "FILE", Description: "Write results to FILE."},
		Opt{ID: 1000, Name: "level", Action: Store, Type: Int, Arity: OptionalArg, Default: 3, Dest: &level,
			Description: "Verbosity level when given bare; higher prints more detail everywhere."},
		Opt{ID: 'q', Action: SetTrue, Dest: &quiet, Description: "Quiet."},
		Opt{ID: 'x', Name: "secret", Action: SetTrue, Dest: &secret, Description: Hidden},
		Opt{ID: -1, Name: "remote", Sub: remoteSet, Description: "Manage remotes."},
	)
}

func TestHelp(t *testing.T) {
	logTestOutput := setupLogging(t)
	defer logTestOutput()

	set := helpTestSet().SetHelp("myprog 1.0 - does things", "See also: myprog(1).")
	got := set.Help()
	expected := `myprog 1.0 - does things

OPTIONS:
    -f, --force          Force the operation.
    -o, --output FILE    Write results to FILE.
    --level [INT]        Verbosity level when given bare; higher prints more
                         detail everywhere.
    -q                   Quiet.

SUBCOMMANDS:
    remote             Manage remotes.
    remote add NAME    Add a remote by NAME.

See also: myprog(1).
`
	if got != expected {
		t.Errorf(firstDiff(got, expected))
	}
}

func TestHelpWithoutSections(t *testing.T) {
	logTestOutput := setupLogging(t)
	defer logTestOutput()

	t.Run("empty table", func(t *testing.T) {
		if got := New().Help(); got != "" {
			t.Errorf("got = %q, want ''", got)
		}
	})
	t.Run("header only", func(t *testing.T) {
		got := New().SetHelp("just a header", "").Help()
		expected := "just a header\n"
		if got != expected {
			t.Errorf(firstDiff(got, expected))
		}
	})
	t.Run("options only", func(t *testing.T) {
		var b bool
		set := New(
			Opt{ID: 'f', Name: "force", Action: SetTrue, Dest: &b, Description: "Force."},
		)
		got := set.Help()
		expected := `OPTIONS:
    -f, --force    Force.
`
		if got != expected {
			t.Errorf(firstDiff(got, expected))
		}
	})
	t.Run("all entries hidden", func(t *testing.T) {
		var b bool
		set := New(
			Opt{ID: 'f', Name: "force", Action: SetTrue, Dest: &b, Description: Hidden},
		)
		if got := set.Help(); got != "" {
			t.Errorf("got = %q, want ''", got)
		}
	})
}

func TestHelpDefaultPlaceholders(t *testing.T) {
	logTestOutput := setupLogging(t)
	defer logTestOutput()

	var s string
	var n int
	set := New(
		Opt{ID: 's', Name: "str", Action: Store, Dest: &s, Description: "A string."},
		Opt{ID: 'n', Name: "num", Action: Store, Type: Int, Dest: &n, Description: "A number."},
	)
	got := set.Help()
	expected := `OPTIONS:
    -s, --str ARG    A string.
    -n, --num INT    A number.
`
	if got != expected {
		t.Errorf(firstDiff(got, expected))
	}
}

func TestHelpNarrowLayout(t *testing.T) {
	logTestOutput := setupLogging(t)
	defer logTestOutput()

	// A lead too wide for the clamped column goes on its own line.
	var b bool
	var s string
	set := New(
		Opt{ID: 'v', Action: SetTrue, Dest: &b, Description: "Chatty output."},
		Opt{ID: 'c', Name: "configuration-file", Action: Store, Dest: &s, ArgName: "PATH",
			Description: "Read settings from PATH."},
	).SetMaxLineLen(40).SetMinBlockLen(24)
	got := set.Help()
	expected := `OPTIONS:
    -v          Chatty output.
    -c, --configuration-file PATH
                Read settings from PATH.
`
	if got != expected {
		t.Errorf(firstDiff(got, expected))
	}
}

func TestPrintHelp(t *testing.T) {
	logTestOutput := setupLogging(t)
	defer logTestOutput()

	set := helpTestSet()
	buf := bytes.NewBufferString("")
	set.PrintHelp(buf)
	if buf.String() != set.Help() {
		t.Errorf("PrintHelp output differs from Help")
	}
}
