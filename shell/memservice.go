package shell

import (
	"encoding/binary"
	"sync"
	"unicode/utf16"

	"github.com/shellprobe/knownfolders"
	"github.com/shellprobe/knownfolders/errors"
)

// BlockCategory labels one kind of block MemService allocates.
type BlockCategory int

const (
	BlockIDs BlockCategory = iota
	BlockDefinitionField
	BlockPathString
	numBlockCategories
)

// MemFolder scripts one registry entry of a MemService.
type MemFolder struct {
	Name string
	Path string

	// PathErr, when non-empty, makes path resolution fail with this
	// message. The failure is per-entry and non-fatal.
	PathErr string

	// DefinitionErr, when non-empty, makes the definition lookup fail.
	DefinitionErr string

	// NameChars and PathChars override Name/Path with raw UTF-16 code
	// units, so tests can hand out ill-formed blocks.
	NameChars []uint16
	PathChars []uint16
}

// MemService is an in-memory folder registry.
type MemService struct {
	mu        sync.Mutex
	connected bool
	folders   []MemFolder
	lastOpts  knownfolders.Options

	// Fault injection for the fatal paths.
	ConnectErr   error
	EnumerateErr error

	allocated [numBlockCategories]int
	freed     [numBlockCategories]int
}

// NewMemService creates a registry holding the given folders.
func NewMemService(folders ...MemFolder) *MemService {
	return &MemService{folders: folders}
}

// Connect establishes the session. A second open while one is live is
// an error, never a silent success.
func (s *MemService) Connect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ConnectErr != nil {
		return s.ConnectErr
	}
	if s.connected {
		return errors.AlreadyConnected()
	}
	s.connected = true
	return nil
}

// Disconnect tears the session down.
func (s *MemService) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = false
}

// FolderIDs returns the identifier block for every scripted folder.
func (s *MemService) FolderIDs() (knownfolders.IDBlock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return nil, errors.ServiceFailure(errors.PhaseEnumerate, "no open session", nil)
	}
	if s.EnumerateErr != nil {
		return nil, s.EnumerateErr
	}

	ids := make([]knownfolders.FolderID, len(s.folders))
	for i := range ids {
		binary.LittleEndian.PutUint32(ids[i][:4], uint32(i))
	}
	s.allocated[BlockIDs]++
	return &memIDBlock{svc: s, ids: ids}, nil
}

// Folder resolves an identifier to a handle on the scripted entry.
func (s *MemService) Folder(id knownfolders.FolderID) (knownfolders.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return nil, errors.ServiceFailure(errors.PhaseResolve, "no open session", nil)
	}

	idx := int(binary.LittleEndian.Uint32(id[:4]))
	if idx < 0 || idx >= len(s.folders) {
		return nil, errors.ServiceFailure(errors.PhaseResolve, "no such folder", nil)
	}
	return &memFolderHandle{svc: s, folder: s.folders[idx]}, nil
}

// Allocated returns how many blocks of cat the service has handed out.
func (s *MemService) Allocated(cat BlockCategory) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allocated[cat]
}

// Freed returns how many blocks of cat have been released.
func (s *MemService) Freed(cat BlockCategory) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.freed[cat]
}

// Balanced reports whether every allocated block has been freed
// exactly once. A shortfall is a leak; an excess is a double free.
func (s *MemService) Balanced() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for cat := BlockCategory(0); cat < numBlockCategories; cat++ {
		if s.allocated[cat] != s.freed[cat] {
			return false
		}
	}
	return true
}

// LastOptions returns the options passed to the most recent path
// resolution.
func (s *MemService) LastOptions() knownfolders.Options {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOpts
}

func (s *MemService) free(cat BlockCategory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.freed[cat]++
}

// newField allocates one definition string field.
func (s *MemService) newField(chars []uint16) knownfolders.WideString {
	s.allocated[BlockDefinitionField]++
	return &memWide{svc: s, cat: BlockDefinitionField, chars: chars}
}

type memIDBlock struct {
	svc *MemService
	ids []knownfolders.FolderID
}

func (b *memIDBlock) Len() int { return len(b.ids) }

func (b *memIDBlock) At(i int) knownfolders.FolderID { return b.ids[i] }

func (b *memIDBlock) Free() { b.svc.free(BlockIDs) }

type memFolderHandle struct {
	svc    *MemService
	folder MemFolder
}

func (h *memFolderHandle) Definition() (*knownfolders.Definition, error) {
	if h.folder.DefinitionErr != "" {
		return nil, errors.ServiceFailure(errors.PhaseResolve, h.folder.DefinitionErr, nil)
	}

	h.svc.mu.Lock()
	defer h.svc.mu.Unlock()

	name := h.folder.NameChars
	if name == nil {
		name = utf16.Encode([]rune(h.folder.Name))
	}
	return &knownfolders.Definition{
		Name:          h.svc.newField(name),
		Description:   h.svc.newField(nil),
		RelativePath:  h.svc.newField(nil),
		ParsingName:   h.svc.newField(nil),
		Tooltip:       h.svc.newField(nil),
		LocalizedName: h.svc.newField(nil),
		Icon:          h.svc.newField(nil),
		Security:      h.svc.newField(nil),
	}, nil
}

func (h *memFolderHandle) Path(opts knownfolders.Options) (knownfolders.WideString, error) {
	h.svc.mu.Lock()
	h.svc.lastOpts = opts
	h.svc.mu.Unlock()

	if h.folder.PathErr != "" {
		return nil, errors.ServiceFailure(errors.PhaseResolve, h.folder.PathErr, nil)
	}

	chars := h.folder.PathChars
	if chars == nil {
		chars = utf16.Encode([]rune(h.folder.Path))
	}
	h.svc.mu.Lock()
	h.svc.allocated[BlockPathString]++
	h.svc.mu.Unlock()
	return &memWide{svc: h.svc, cat: BlockPathString, chars: chars}, nil
}

func (h *memFolderHandle) Release() {}

// memWide deliberately has no double-free guard: like the real
// service's allocator, freeing twice is an accounting error the
// counters will expose.
type memWide struct {
	svc   *MemService
	cat   BlockCategory
	chars []uint16
}

func (w *memWide) Chars() []uint16 { return w.chars }

func (w *memWide) Free() { w.svc.free(w.cat) }
