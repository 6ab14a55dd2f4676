// Package surface binds an embedded editor widget to a host application.
//
// A Surface mounts an editor.Model on a MountPoint when it is created, exposes
// the document as a plain string through Value and SetValue, and calls the
// host's ChangeFunc with the full text every time the document content
// changes. Cursor and selection movement never notify.
//
// Notification is synchronous and re-entrant: a ChangeFunc that calls
// SetValue triggers a nested notification on the same stack. Hosts that
// write back into the surface from their callback must either compare
// against Value first or create the surface WithReentrancyGuard.
package surface
