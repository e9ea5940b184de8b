// Command kfls prints a table of every registered known folder with
// its resolved path, or the reason no path is available.
//
// Arguments are bare KF_FLAG_* names (case-insensitive, prefix
// optional) that customize how paths are resolved:
//
//	kfls
//	kfls dont_verify no_alias
//	kfls KF_FLAG_DEFAULT_PATH
//
// There are no option switches. KF_FLAG_CREATE and KF_FLAG_INIT are
// refused: they would request directory creation for every registered
// folder.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/shellprobe/knownfolders"
	"github.com/shellprobe/knownfolders/flagparse"
	"github.com/shellprobe/knownfolders/owner"
	"github.com/shellprobe/knownfolders/query"
	"github.com/shellprobe/knownfolders/render"
	"github.com/shellprobe/knownfolders/shell"
)

func main() {
	os.Exit(run(os.Args[1:], shell.NewSystemService(), os.Stdout, os.Stderr))
}

// run is main minus the process exit, so tests can drive it against a
// scripted service.
func run(args []string, svc knownfolders.Service, stdout, stderr io.Writer) int {
	opts, err := flagparse.Translate(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	sess, err := owner.OpenSession(svc)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	defer sess.Close()

	records, err := query.Enumerate(sess, opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := render.Table(stdout, records); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
