//go:build windows

package shell

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/shellprobe/knownfolders"
	"github.com/shellprobe/knownfolders/errors"
)

var (
	modole32 = windows.NewLazySystemDLL("ole32.dll")

	procCoInitializeEx   = modole32.NewProc("CoInitializeEx")
	procCoUninitialize   = modole32.NewProc("CoUninitialize")
	procCoCreateInstance = modole32.NewProc("CoCreateInstance")
	procCoTaskMemFree    = modole32.NewProc("CoTaskMemFree")
)

const (
	coInitApartmentThreaded = 0x2
	clsctxInprocServer      = 0x1
)

var (
	// CLSID_KnownFolderManager
	clsidKnownFolderManager = windows.GUID{
		Data1: 0x4df0c730, Data2: 0xdf9d, Data3: 0x4ae3,
		Data4: [8]byte{0x91, 0x53, 0xaa, 0x6b, 0x82, 0xe9, 0x79, 0x5a},
	}
	// IID_IKnownFolderManager
	iidIKnownFolderManager = windows.GUID{
		Data1: 0x8be2d872, Data2: 0x86aa, Data3: 0x4d47,
		Data4: [8]byte{0xb7, 0x76, 0x32, 0xcc, 0xa4, 0x0c, 0x70, 0x18},
	}
)

// ComService talks to the live known-folder manager over COM. It is
// thread-affine: Connect pins the calling goroutine to its OS thread
// and enters a single-threaded apartment there; Disconnect leaves the
// apartment and unpins, in LIFO order with respect to every block
// allocated in between.
type ComService struct {
	mgr       *iKnownFolderManager
	connected bool
}

// NewSystemService returns the platform's folder registry service.
func NewSystemService() knownfolders.Service {
	return &ComService{}
}

func (s *ComService) Connect() error {
	if s.connected {
		return errors.AlreadyConnected()
	}

	runtime.LockOSThread()
	hr, _, _ := procCoInitializeEx.Call(0, coInitApartmentThreaded)
	if failed(hr) {
		runtime.UnlockOSThread()
		return comError(errors.PhaseSession, "initialize apartment", hr)
	}

	var mgr *iKnownFolderManager
	hr, _, _ = procCoCreateInstance.Call(
		uintptr(unsafe.Pointer(&clsidKnownFolderManager)),
		0,
		clsctxInprocServer,
		uintptr(unsafe.Pointer(&iidIKnownFolderManager)),
		uintptr(unsafe.Pointer(&mgr)),
	)
	if failed(hr) {
		procCoUninitialize.Call()
		runtime.UnlockOSThread()
		return comError(errors.PhaseSession, "create folder manager", hr)
	}

	s.mgr = mgr
	s.connected = true
	return nil
}

func (s *ComService) Disconnect() {
	if !s.connected {
		return
	}
	s.connected = false
	s.mgr.Release()
	s.mgr = nil
	procCoUninitialize.Call()
	runtime.UnlockOSThread()
}

func (s *ComService) FolderIDs() (knownfolders.IDBlock, error) {
	if !s.connected {
		return nil, errors.ServiceFailure(errors.PhaseEnumerate, "no open session", nil)
	}

	var p *windows.GUID
	var count uint32
	hr, _, _ := syscall.SyscallN(s.mgr.vtbl.getFolderIds,
		uintptr(unsafe.Pointer(s.mgr)),
		uintptr(unsafe.Pointer(&p)),
		uintptr(unsafe.Pointer(&count)),
	)
	if failed(hr) {
		return nil, comError(errors.PhaseEnumerate, "list folder identifiers", hr)
	}
	return &comIDBlock{p: p, count: int(count)}, nil
}

func (s *ComService) Folder(id knownfolders.FolderID) (knownfolders.Folder, error) {
	if !s.connected {
		return nil, errors.ServiceFailure(errors.PhaseResolve, "no open session", nil)
	}

	g := folderIDToGUID(id)
	var kf *iKnownFolder
	hr, _, _ := syscall.SyscallN(s.mgr.vtbl.getFolder,
		uintptr(unsafe.Pointer(s.mgr)),
		uintptr(unsafe.Pointer(&g)),
		uintptr(unsafe.Pointer(&kf)),
	)
	if failed(hr) {
		return nil, comError(errors.PhaseResolve, "open folder entry", hr)
	}
	return &comFolder{kf: kf}, nil
}

type comFolder struct {
	kf *iKnownFolder
}

func (f *comFolder) Definition() (*knownfolders.Definition, error) {
	var def knownFolderDefinition
	hr, _, _ := syscall.SyscallN(f.kf.vtbl.getFolderDefinition,
		uintptr(unsafe.Pointer(f.kf)),
		uintptr(unsafe.Pointer(&def)),
	)
	if failed(hr) {
		return nil, comError(errors.PhaseResolve, "read folder definition", hr)
	}
	return &knownfolders.Definition{
		Name:          wideOrNil(def.pszName),
		Description:   wideOrNil(def.pszDescription),
		RelativePath:  wideOrNil(def.pszRelativePath),
		ParsingName:   wideOrNil(def.pszParsingName),
		Tooltip:       wideOrNil(def.pszTooltip),
		LocalizedName: wideOrNil(def.pszLocalizedName),
		Icon:          wideOrNil(def.pszIcon),
		Security:      wideOrNil(def.pszSecurity),
	}, nil
}

func (f *comFolder) Path(opts knownfolders.Options) (knownfolders.WideString, error) {
	var p *uint16
	hr, _, _ := syscall.SyscallN(f.kf.vtbl.getPath,
		uintptr(unsafe.Pointer(f.kf)),
		uintptr(opts),
		uintptr(unsafe.Pointer(&p)),
	)
	if failed(hr) {
		return nil, comError(errors.PhaseResolve, "resolve folder path", hr)
	}
	return &comWide{p: p}, nil
}

func (f *comFolder) Release() {
	syscall.SyscallN(f.kf.vtbl.release, uintptr(unsafe.Pointer(f.kf)))
}

// comIDBlock owns the CoTaskMem block of folder GUIDs.
type comIDBlock struct {
	p     *windows.GUID
	count int
}

func (b *comIDBlock) Len() int { return b.count }

func (b *comIDBlock) At(i int) knownfolders.FolderID {
	g := unsafe.Slice(b.p, b.count)[i]
	return guidToFolderID(g)
}

func (b *comIDBlock) Free() {
	procCoTaskMemFree.Call(uintptr(unsafe.Pointer(b.p)))
}

// comWide owns one CoTaskMem wide string.
type comWide struct {
	p *uint16
}

func (w *comWide) Chars() []uint16 {
	n := 0
	for *(*uint16)(unsafe.Add(unsafe.Pointer(w.p), n*2)) != 0 {
		n++
	}
	return unsafe.Slice(w.p, n)
}

func (w *comWide) Free() {
	procCoTaskMemFree.Call(uintptr(unsafe.Pointer(w.p)))
}

func wideOrNil(p *uint16) knownfolders.WideString {
	if p == nil {
		return nil
	}
	return &comWide{p: p}
}

// knownFolderDefinition matches the shell's KNOWNFOLDER_DEFINITION
// layout. The string pointers are each independently CoTaskMem
// allocated; owner.Definition frees them one by one, which is what the
// shell's own FreeKnownFolderDefinitionFields inline helper does.
type knownFolderDefinition struct {
	category         int32
	pszName          *uint16
	pszDescription   *uint16
	fidParent        windows.GUID
	pszRelativePath  *uint16
	pszParsingName   *uint16
	pszTooltip       *uint16
	pszLocalizedName *uint16
	pszIcon          *uint16
	pszSecurity      *uint16
	dwAttributes     uint32
	kfdFlags         uint32
	ftidType         windows.GUID
}

// COM vtable layouts for the two shell interfaces this service uses.

type iKnownFolderManager struct {
	vtbl *kfmVtbl
}

type kfmVtbl struct {
	queryInterface       uintptr
	addRef               uintptr
	release              uintptr
	folderIdFromCsidl    uintptr
	folderIdToCsidl      uintptr
	getFolderIds         uintptr
	getFolder            uintptr
	getFolderByName      uintptr
	registerFolder       uintptr
	unregisterFolder     uintptr
	findFolderFromPath   uintptr
	findFolderFromIDList uintptr
	redirect             uintptr
}

func (m *iKnownFolderManager) Release() {
	syscall.SyscallN(m.vtbl.release, uintptr(unsafe.Pointer(m)))
}

type iKnownFolder struct {
	vtbl *kfVtbl
}

type kfVtbl struct {
	queryInterface             uintptr
	addRef                     uintptr
	release                    uintptr
	getId                      uintptr
	getCategory                uintptr
	getShellItem               uintptr
	getPath                    uintptr
	setPath                    uintptr
	getIDList                  uintptr
	getFolderType              uintptr
	getRedirectionCapabilities uintptr
	getFolderDefinition        uintptr
}

func failed(hr uintptr) bool {
	return int32(hr) < 0
}

// comError turns an HRESULT into a service failure whose detail is the
// system's displayable message for that code.
func comError(phase errors.Phase, op string, hr uintptr) error {
	return errors.New(phase, errors.KindServiceFailure).
		Detail("%s", hrMessage(hr)).
		Cause(fmt.Errorf("%s: HRESULT %#08x", op, uint32(hr))).
		Build()
}

func hrMessage(hr uintptr) string {
	return strings.TrimSpace(syscall.Errno(hr).Error())
}

func guidToFolderID(g windows.GUID) knownfolders.FolderID {
	var id knownfolders.FolderID
	binary.LittleEndian.PutUint32(id[0:4], g.Data1)
	binary.LittleEndian.PutUint16(id[4:6], g.Data2)
	binary.LittleEndian.PutUint16(id[6:8], g.Data3)
	copy(id[8:], g.Data4[:])
	return id
}

func folderIDToGUID(id knownfolders.FolderID) windows.GUID {
	var g windows.GUID
	g.Data1 = binary.LittleEndian.Uint32(id[0:4])
	g.Data2 = binary.LittleEndian.Uint16(id[4:6])
	g.Data3 = binary.LittleEndian.Uint16(id[6:8])
	copy(g.Data4[:], id[8:])
	return g
}
