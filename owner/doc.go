// Package owner provides scoped ownership of service-allocated
// resources.
//
// Every block the folder service hands out — the identifier array, the
// string fields of a registration record, a resolved path string — must
// be released through the service exactly once. Each block category
// gets its own owner type rather than one generic cleanup list, because
// release differs by shape: the identifier array is freed as a single
// block, while a registration record is freed field by field.
//
// # Owners
//
//	Session     the thread-affine service connection
//	IDSet       the service-allocated folder identifier array
//	Definition  one entry's registration record (per-field release)
//	PathString  one service-allocated path string
//
// An owner releases its resource on the first Close and ignores later
// calls, so the usual pattern is to construct it immediately after the
// service call that allocated the resource and defer Close in the same
// statement group:
//
//	ids := owner.NewIDSet(block)
//	defer ids.Close()
//
// With that shape, an early error return anywhere in the scope still
// releases every owner already constructed, in reverse acquisition
// order.
//
// # Lifecycle Events
//
// Observers receive an Event for every acquisition and release,
// labelled with the resource Category. Tests subscribe a counter to
// assert that releases match acquisitions exactly, including on error
// paths:
//
//	owner.Subscribe(counter)
//	defer owner.Unsubscribe(counter)
package owner
