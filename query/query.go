// Package query enumerates the folder registry into named records.
package query

import (
	"go.uber.org/zap"

	"github.com/shellprobe/knownfolders"
	"github.com/shellprobe/knownfolders/owner"
)

// Enumerate lists every registered known folder under an open session,
// resolving each entry's display name and its path under opts.
//
// A failure to list identifiers, open an entry, or decode its display
// name aborts the whole enumeration: those indicate a broken registry,
// not a per-entry condition. A failure to resolve one entry's path
// does not abort; it is captured on that entry's Record so the table
// can show why the path is unavailable. Service calls are one-shot —
// the registry is local and synchronous, so nothing is retried.
func Enumerate(sess *owner.Session, opts knownfolders.Options) ([]knownfolders.Record, error) {
	svc := sess.Service()

	block, err := svc.FolderIDs()
	if err != nil {
		return nil, err
	}
	ids := owner.NewIDSet(block)
	defer ids.Close()

	Logger().Debug("enumerating known folders",
		zap.Int("count", ids.Len()),
		zap.Uint32("options", uint32(opts)))

	records := make([]knownfolders.Record, 0, ids.Len())
	for i := 0; i < ids.Len(); i++ {
		id, err := ids.At(i)
		if err != nil {
			return nil, err
		}
		rec, err := resolve(svc, id, opts)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// resolve produces the record for one folder. Owners for the entry's
// definition and path string are scoped to this call, so they release
// on every return path before the result propagates.
func resolve(svc knownfolders.Service, id knownfolders.FolderID, opts knownfolders.Options) (knownfolders.Record, error) {
	folder, err := svc.Folder(id)
	if err != nil {
		return knownfolders.Record{}, err
	}
	defer folder.Release()

	rec, err := folder.Definition()
	if err != nil {
		return knownfolders.Record{}, err
	}
	def := owner.NewDefinition(rec)
	defer def.Close()

	name, err := def.DisplayName()
	if err != nil {
		return knownfolders.Record{}, err
	}

	ws, err := folder.Path(opts)
	if err != nil {
		Logger().Debug("path unavailable",
			zap.String("name", name),
			zap.Error(err))
		return knownfolders.Record{Name: name, Err: err}, nil
	}
	ps := owner.NewPathString(ws)
	defer ps.Close()

	path, err := ps.String()
	if err != nil {
		return knownfolders.Record{}, err
	}
	return knownfolders.Record{Name: name, Path: path}, nil
}
