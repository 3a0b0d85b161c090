// Package notify provides the notification queue behind vangoui's Toaster.
//
// A Center holds an ordered list of active notification records. Records are
// created with Add, mutated in place with Update, and removed with Remove,
// Clear, or automatic expiry. All operations are total: an unknown id is a
// silent no-op, never an error. This matches the graceful-degradation
// convention of UI toolkits, where a dismiss racing an expiry must not blow
// up the page.
//
// # Usage
//
// Construct one Center per application (or per live session) and hand it to
// whatever needs it. The Center is an explicit dependency, not ambient
// global state:
//
//	center := notify.NewCenter()
//	defer center.Close()
//
//	id := center.Add("Changes saved", notify.WithKind(notify.KindSuccess))
//	center.Update(id, notify.WithDescription("Synced to all devices"))
//	center.Remove(id)
//
// Kind shortcuts mirror the usual toast vocabulary:
//
//	center.Success("Project deleted")
//	center.Error("Failed to delete project", notify.Sticky())
//	center.Info("New features available", notify.WithAction("Show me", onShow))
//
// # Expiry
//
// Every record carries a duration. A positive duration schedules a one-shot
// timer that removes the record when it fires; zero or negative means the
// record stays until removed explicitly. The default is 5 seconds. Timer
// handles are tracked and cancelled on manual removal; a timer that fires
// anyway lands on the unknown-id no-op path, so the observable behavior is
// identical either way.
//
// # Render surfaces
//
// Subscribe registers a listener called with a snapshot of the list after
// every change. ui.Toaster uses this to re-render; tests use it to observe
// ordering. For request-scoped plumbing, NewContext and FromContext carry a
// Center through a context.Context with a defensive guard at the access
// point.
//
// # Time
//
// The Center reads time through a Clock. Production code uses the real
// clock; tests inject notifytest.Clock and advance it manually, which makes
// every expiry property deterministic.
package notify
