package knownfolders

// Options is the query-option bitmask applied to every path lookup in
// a run. Options control how a path is resolved (verification, token
// expansion, redirection handling), never which folder is queried.
type Options uint32

// Query flags, numerically identical to the shell service's
// KNOWN_FOLDER_FLAG constants. FlagForceAppContainerRedirection and
// FlagForcePackageRedirection share a value by definition.
const (
	FlagDefault                       Options = 0x00000000
	FlagForceAppDataRedirection       Options = 0x00080000
	FlagReturnFilterRedirectionTarget Options = 0x00040000
	FlagForcePackageRedirection       Options = 0x00020000
	FlagNoPackageRedirection          Options = 0x00010000
	FlagForceAppContainerRedirection  Options = 0x00020000
	FlagCreate                        Options = 0x00008000
	FlagDontVerify                    Options = 0x00004000
	FlagDontUnexpand                  Options = 0x00002000
	FlagNoAlias                       Options = 0x00001000
	FlagInit                          Options = 0x00000800
	FlagDefaultPath                   Options = 0x00000400
	FlagNotParentRelative             Options = 0x00000200
	FlagSimpleIDList                  Options = 0x00000100
	FlagAliasOnly                     Options = 0x80000000
)

// Has reports whether every bit of f is set in o.
func (o Options) Has(f Options) bool {
	return o&f == f
}
