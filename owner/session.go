package owner

import (
	"github.com/shellprobe/knownfolders"
)

// Session ties the folder service's thread-affine connection to a
// scope. It must be held open for the lifetime of every query issued
// through it; Close invalidates all capabilities obtained under it.
type Session struct {
	svc    knownfolders.Service
	closed bool
}

// OpenSession establishes the service connection. A failure is the
// service's own error, returned verbatim; no partial state remains.
func OpenSession(svc knownfolders.Service) (*Session, error) {
	if err := svc.Connect(); err != nil {
		return nil, err
	}
	notify(Event{Category: CategorySession, Type: EventAcquired})
	return &Session{svc: svc}, nil
}

// Service returns the connected service.
func (s *Session) Service() knownfolders.Service {
	return s.svc
}

// Close disconnects the session. Only the first call disconnects;
// later calls are no-ops.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.svc.Disconnect()
	notify(Event{Category: CategorySession, Type: EventReleased})
}
