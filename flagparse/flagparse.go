// Package flagparse translates bare flag-name arguments into the
// service's query-option bitmask.
//
// Arguments name KF_FLAG_* constants, case-insensitively and with the
// prefix optional: "dont_verify", "DONT_VERIFY" and "KF_FLAG_DONT_VERIFY"
// all select the same flag. The result customizes how every folder's
// path is looked up; it never selects which folders are queried.
package flagparse

import (
	"strings"

	"github.com/shellprobe/knownfolders"
	"github.com/shellprobe/knownfolders/errors"
)

const canonicalPrefix = "KF_FLAG_"

// namedFlags maps every recognized flag symbol to its option bits.
// Never mutated after program start.
var namedFlags = map[string]knownfolders.Options{
	"KF_FLAG_DEFAULT":                          knownfolders.FlagDefault,
	"KF_FLAG_FORCE_APP_DATA_REDIRECTION":       knownfolders.FlagForceAppDataRedirection,
	"KF_FLAG_RETURN_FILTER_REDIRECTION_TARGET": knownfolders.FlagReturnFilterRedirectionTarget,
	"KF_FLAG_FORCE_PACKAGE_REDIRECTION":        knownfolders.FlagForcePackageRedirection,
	"KF_FLAG_NO_PACKAGE_REDIRECTION":           knownfolders.FlagNoPackageRedirection,
	"KF_FLAG_FORCE_APPCONTAINER_REDIRECTION":   knownfolders.FlagForceAppContainerRedirection,
	"KF_FLAG_CREATE":                           knownfolders.FlagCreate,
	"KF_FLAG_DONT_VERIFY":                      knownfolders.FlagDontVerify,
	"KF_FLAG_DONT_UNEXPAND":                    knownfolders.FlagDontUnexpand,
	"KF_FLAG_NO_ALIAS":                         knownfolders.FlagNoAlias,
	"KF_FLAG_INIT":                             knownfolders.FlagInit,
	"KF_FLAG_DEFAULT_PATH":                     knownfolders.FlagDefaultPath,
	"KF_FLAG_NOT_PARENT_RELATIVE":              knownfolders.FlagNotParentRelative,
	"KF_FLAG_SIMPLE_IDLIST":                    knownfolders.FlagSimpleIDList,
	"KF_FLAG_ALIAS_ONLY":                       knownfolders.FlagAliasOnly,
}

// bannedFlags are refused outright even though each is a valid service
// constant: passing them would request directory creation for every
// registered folder (KF_FLAG_INIT is only meaningful alongside
// KF_FLAG_CREATE). Use KF_FLAG_DONT_VERIFY to see what the paths
// would be without creating anything.
var bannedFlags = []knownfolders.Options{
	knownfolders.FlagCreate,
	knownfolders.FlagInit,
}

// Normalize converts an informal flag spelling to the canonical symbol.
func Normalize(arg string) string {
	up := strings.ToUpper(arg)
	if strings.HasPrefix(up, canonicalPrefix) {
		return up
	}
	return canonicalPrefix + up
}

// Translate maps the arguments onto a single option bitmask,
// accumulating with bitwise OR in input order. Tokens that look like
// option switches are rejected before any name lookup: this program
// accepts only bare flag names.
func Translate(args []string) (knownfolders.Options, error) {
	opts := knownfolders.FlagDefault

	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			return 0, errors.UnrecognizedOption(arg)
		}

		name := Normalize(arg)
		flag, ok := namedFlags[name]
		if !ok {
			return 0, errors.UnrecognizedFlag(name)
		}
		if isBanned(flag) {
			return 0, errors.BannedFlag(name)
		}
		opts |= flag
	}

	// Accepted flags must never combine into a banned one.
	for _, banned := range bannedFlags {
		if opts.Has(banned) {
			return 0, errors.Internal("accepted flags combined into a banned flag")
		}
	}

	return opts, nil
}

func isBanned(flag knownfolders.Options) bool {
	for _, banned := range bannedFlags {
		if flag == banned {
			return true
		}
	}
	return false
}
