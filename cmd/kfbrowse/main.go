// Command kfbrowse is an interactive browser over the known folder
// registry. It takes the same bare KF_FLAG_* name arguments as kfls.
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/shellprobe/knownfolders/flagparse"
	"github.com/shellprobe/knownfolders/shell"
)

func main() {
	opts, err := flagparse.Translate(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: kfbrowse needs an interactive terminal (use kfls for plain output)")
		os.Exit(1)
	}

	if err := browse(shell.NewSystemService(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
