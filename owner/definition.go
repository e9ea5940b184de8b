package owner

import (
	"github.com/shellprobe/knownfolders"
)

// Definition owns one entry's registration record and the
// service-allocated string fields inside it.
type Definition struct {
	rec    *knownfolders.Definition
	closed bool
}

// NewDefinition takes ownership of rec and every string field in it.
func NewDefinition(rec *knownfolders.Definition) *Definition {
	notify(Event{Category: CategoryDefinition, Type: EventAcquired})
	return &Definition{rec: rec}
}

// DisplayName decodes the record's name field. A malformed name means
// the record itself is broken, so the failure is returned rather than
// masked with replacement characters.
func (d *Definition) DisplayName() (string, error) {
	return decodeWide(d.rec.Name, "folder name")
}

// Close frees every string field of the record individually; the
// service has no aggregate free for this record shape. The field list
// here must stay in sync with knownfolders.Definition.
func (d *Definition) Close() {
	if d.closed {
		return
	}
	d.closed = true
	for _, f := range []knownfolders.WideString{
		d.rec.Name,
		d.rec.Description,
		d.rec.RelativePath,
		d.rec.ParsingName,
		d.rec.Tooltip,
		d.rec.LocalizedName,
		d.rec.Icon,
		d.rec.Security,
	} {
		if f != nil {
			f.Free()
		}
	}
	notify(Event{Category: CategoryDefinition, Type: EventReleased})
}
