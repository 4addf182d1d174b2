// Package notify implements a single-threaded publish/subscribe registry used
// to fan out state changes (current image, source parameters) from a session
// to an open-ended set of dependent views.
//
// Subscriptions are weakly owned: Add returns a Handle, and the subscriber's
// owner closes it on destruction. The registry never holds a subscriber alive
// on its own authority; closed entries are pruned lazily during NotifyAll.
//
// All registries are confined to the interactive thread. Nothing in this
// package is safe for concurrent use.
package notify
