// Package theme resolves the effective display mode from a stored user
// preference and a live system color-scheme signal.
//
// The stored preference is one of light, dark, or system. The effective
// mode is a pure function of (stored preference, system signal): the
// preference itself when explicit, otherwise whatever the system reports.
// It is always derived on read, never stored.
//
// The Resolver seeds the system signal synchronously from its Source at
// construction, then subscribes for change notifications. Each
// notification updates the signal and, when the stored preference is
// system, re-derives the effective mode and notifies subscribers. The
// subscription is released by Close, which is idempotent - no leaked
// listeners across remounts.
//
// Preference changes persist through the key/value store on a best-effort
// basis: a write failure is reported and recorded on the state's Err
// field while the in-memory preference still advances.
package theme
