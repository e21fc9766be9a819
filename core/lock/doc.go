// Package lock provides optional per-document write serialisation.
//
// Saving, reordering and tearing down a document's items each run in one
// database transaction. Two browser tabs saving the same document still race:
// the second transaction diffs against whatever the first committed. When a
// redis address is configured, the item service takes a short-lived lock keyed
// by item kind and document id around each write so such saves apply one after
// the other. Without redis, Noop is used and behaviour is unchanged.
package lock
