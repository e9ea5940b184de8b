//go:build !windows

package shell

import (
	"github.com/shellprobe/knownfolders"
	"github.com/shellprobe/knownfolders/errors"
)

// NewSystemService returns a service whose Connect always fails: the
// known-folder registry only exists on Windows.
func NewSystemService() knownfolders.Service {
	return unsupportedService{}
}

type unsupportedService struct{}

func errUnsupported() error {
	return errors.Unsupported("the known folder service is only available on Windows")
}

func (unsupportedService) Connect() error { return errUnsupported() }

func (unsupportedService) Disconnect() {}

func (unsupportedService) FolderIDs() (knownfolders.IDBlock, error) {
	return nil, errUnsupported()
}

func (unsupportedService) Folder(knownfolders.FolderID) (knownfolders.Folder, error) {
	return nil, errUnsupported()
}
