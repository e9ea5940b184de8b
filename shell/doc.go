// Package shell provides implementations of the knownfolders.Service
// boundary.
//
// NewSystemService returns the platform's real folder registry: on
// Windows it talks to the shell's known-folder manager over COM; on
// every other platform its Connect fails, since the registry does not
// exist there.
//
// MemService is an in-memory registry with scripted folders, fault
// injection, and per-category allocation counters. It backs the tests
// and mirrors the real service's allocation discipline: every block it
// hands out is expected to be freed exactly once, and the counters
// record whether callers did.
package shell
