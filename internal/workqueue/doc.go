// Package workqueue defines the read-only data model for a work-queue
// snapshot (epics containing features containing tasks) and the providers
// that load snapshots from disk.
//
// The snapshot is supplied wholesale by an external orchestrator; nothing in
// this package mutates it. Loading goes through [Load] or [Decode], and
// [Watcher] can follow a snapshot file on disk and deliver replacement
// snapshots as it changes.
package workqueue
