package shell

import (
	stderrors "errors"
	"testing"
	"unicode/utf16"

	"github.com/shellprobe/knownfolders"
	"github.com/shellprobe/knownfolders/errors"
)

func TestMemService_SingleOpen(t *testing.T) {
	svc := NewMemService()

	if err := svc.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	err := svc.Connect()
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseSession, Kind: errors.KindAlreadyConnected}) {
		t.Fatalf("second Connect = %v, want already_connected", err)
	}

	svc.Disconnect()
	if err := svc.Connect(); err != nil {
		t.Fatalf("reconnect after Disconnect failed: %v", err)
	}
}

func TestMemService_ConnectFault(t *testing.T) {
	svc := NewMemService()
	svc.ConnectErr = stderrors.New("registry offline")

	if err := svc.Connect(); err == nil || err.Error() != "registry offline" {
		t.Fatalf("Connect = %v, want the injected error verbatim", err)
	}
}

func TestMemService_RequiresSession(t *testing.T) {
	svc := NewMemService(MemFolder{Name: "Desktop", Path: `C:\x`})

	if _, err := svc.FolderIDs(); err == nil {
		t.Fatal("FolderIDs without a session should fail")
	}
	if _, err := svc.Folder(knownfolders.FolderID{}); err == nil {
		t.Fatal("Folder without a session should fail")
	}
}

func TestMemService_EnumerateAndResolve(t *testing.T) {
	svc := NewMemService(
		MemFolder{Name: "Desktop", Path: `C:\Users\X\Desktop`},
		MemFolder{Name: "Documents", Path: `C:\Users\X\Documents`},
	)
	if err := svc.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer svc.Disconnect()

	block, err := svc.FolderIDs()
	if err != nil {
		t.Fatalf("FolderIDs failed: %v", err)
	}
	defer block.Free()

	if block.Len() != 2 {
		t.Fatalf("Len = %d, want 2", block.Len())
	}

	folder, err := svc.Folder(block.At(0))
	if err != nil {
		t.Fatalf("Folder failed: %v", err)
	}
	defer folder.Release()

	rec, err := folder.Definition()
	if err != nil {
		t.Fatalf("Definition failed: %v", err)
	}
	got := string(utf16.Decode(rec.Name.Chars()))
	if got != "Desktop" {
		t.Fatalf("name = %q, want Desktop", got)
	}
	for _, f := range []knownfolders.WideString{
		rec.Name, rec.Description, rec.RelativePath, rec.ParsingName,
		rec.Tooltip, rec.LocalizedName, rec.Icon, rec.Security,
	} {
		f.Free()
	}

	ws, err := folder.Path(knownfolders.FlagDefault)
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	ws.Free()

	if svc.Allocated(BlockDefinitionField) != 8 {
		t.Fatalf("allocated %d definition fields, want 8", svc.Allocated(BlockDefinitionField))
	}
}

func TestMemService_UnknownFolderID(t *testing.T) {
	svc := NewMemService(MemFolder{Name: "Desktop", Path: `C:\x`})
	if err := svc.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer svc.Disconnect()

	var bogus knownfolders.FolderID
	bogus[0] = 0xFF
	if _, err := svc.Folder(bogus); err == nil {
		t.Fatal("expected an error for an unknown identifier")
	}
}

func TestMemService_CountersCatchImbalance(t *testing.T) {
	svc := NewMemService(MemFolder{Name: "Desktop", Path: `C:\x`})
	if err := svc.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer svc.Disconnect()

	block, err := svc.FolderIDs()
	if err != nil {
		t.Fatalf("FolderIDs failed: %v", err)
	}
	if svc.Balanced() {
		t.Fatal("an unfreed block should show as unbalanced")
	}

	block.Free()
	if !svc.Balanced() {
		t.Fatal("expected balance after the free")
	}

	// A double free is an imbalance too, not a silent no-op.
	block.Free()
	if svc.Balanced() {
		t.Fatal("a double free should show as unbalanced")
	}
}
