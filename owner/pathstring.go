package owner

import (
	"github.com/shellprobe/knownfolders"
)

// PathString owns one service-allocated path string.
type PathString struct {
	ws     knownfolders.WideString
	closed bool
}

// NewPathString takes ownership of ws.
func NewPathString(ws knownfolders.WideString) *PathString {
	notify(Event{Category: CategoryPathString, Type: EventAcquired})
	return &PathString{ws: ws}
}

// String decodes the path into a locally-owned string.
func (p *PathString) String() (string, error) {
	return decodeWide(p.ws, "folder path")
}

// Close frees the string block. Only the first call releases.
func (p *PathString) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.ws.Free()
	notify(Event{Category: CategoryPathString, Type: EventReleased})
}
