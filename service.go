package knownfolders

// FolderID is the opaque 128-bit identifier of one known folder
// registration. Identifiers are assigned and owned by the service.
type FolderID [16]byte

// Service is the boundary to the OS folder-registry service. All calls
// are synchronous; any of them may fail with a displayable error.
//
// The connection is thread-affine and single-open: Connect errors if a
// session is already established rather than silently nesting.
type Service interface {
	// Connect establishes the session required before any query.
	Connect() error

	// Disconnect tears the session down. Every capability obtained
	// through the session is invalid afterwards.
	Disconnect()

	// FolderIDs returns the identifiers of every registered folder as
	// one service-allocated block.
	FolderIDs() (IDBlock, error)

	// Folder resolves an identifier to a per-entry handle.
	Folder(id FolderID) (Folder, error)
}

// IDBlock is a service-allocated array of folder identifiers. Whoever
// receives it must call Free exactly once.
type IDBlock interface {
	Len() int
	At(i int) FolderID
	Free()
}

// Folder is a handle to one registry entry.
type Folder interface {
	// Definition returns the entry's registration record. Every string
	// field of the record is an independently allocated block.
	Definition() (*Definition, error)

	// Path resolves the entry's current path under opts. The returned
	// string is service-allocated. Failure carries a displayable
	// message explaining why no path is available.
	Path(opts Options) (WideString, error)

	// Release drops the handle.
	Release()
}

// WideString is one service-allocated UTF-16 string block.
type WideString interface {
	// Chars returns the raw code units, without a terminator.
	Chars() []uint16
	Free()
}

// Definition mirrors the service's registration record for one folder.
// Releasing a record means freeing each of these fields individually;
// the service offers no aggregate free for this shape. Any field may
// be nil when the registration omits it.
type Definition struct {
	Name          WideString
	Description   WideString
	RelativePath  WideString
	ParsingName   WideString
	Tooltip       WideString
	LocalizedName WideString
	Icon          WideString
	Security      WideString
}

// Record pairs a folder's display name with its resolved path, or with
// the reason the path could not be produced.
type Record struct {
	Name string
	Path string

	// Err is set when the path could not be resolved under the
	// requested options. The record is still shown; Err becomes the
	// bracketed message in the table.
	Err error
}
