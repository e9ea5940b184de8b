// Package knownfolders enumerates the shell's registered known folders
// and resolves each one's display name and current filesystem path.
//
// A known folder is an OS-registered special location (the user's
// documents, the desktop, per-application data roots) identified by a
// 128-bit FolderID and resolvable to a concrete path at query time.
// The shell service that owns the registry allocates every block it
// hands back, so the central concern of this module is releasing each
// of those blocks exactly once on every exit path.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct
// responsibilities:
//
//	knownfolders/        Root package with the service boundary types
//	├── errors/          Structured error taxonomy (fatal vs per-entry)
//	├── owner/           Session guard and scoped resource owners
//	├── flagparse/       Flag-name arguments to query-option bitmask
//	├── query/           Enumeration of all folders into records
//	├── render/          Sorted, aligned table output
//	├── shell/           Service implementations (COM, in-memory)
//	└── cmd/             kfls (table CLI) and kfbrowse (TUI browser)
//
// # Quick Start
//
// List every registered folder with default options:
//
//	svc := shell.NewSystemService()
//	sess, err := owner.OpenSession(svc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sess.Close()
//
//	records, err := query.Enumerate(sess, knownfolders.FlagDefault)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	render.Table(os.Stdout, records)
//
// Options modify how paths are resolved, never which folders are
// queried; a run always covers the whole registry.
package knownfolders
