// Package session captures the live window layout into a Snapshot and
// persists it.
//
// A snapshot is an ordered list of client descriptors. Order matters: the
// restorer walks descriptors front to back and the first descriptor of a
// class claims the first live window of that class.
//
// Store picks the file format from the path's extension (.json, .yaml/.yml,
// .toml), optionally followed by .gz for gzip compression, and always writes
// through a temporary file so a crash never leaves a truncated snapshot.
package session
