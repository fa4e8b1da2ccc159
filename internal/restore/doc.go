// Package restore brings a saved session back onto the live compositor.
//
// For each saved client, in snapshot order, the Restorer looks for the first
// live window whose class is exactly the saved class. A found window is
// claimed, so no later descriptor can reuse it, and handed to the Positioner.
// A missing window is launched on its saved workspace with
//
//	dispatch exec [workspace <id> silent] <command>
//
// where the command is the lowercased initial class (or class) passed
// through the alias table.
//
// Failures are treated unevenly. A Positioner error aborts the run and is
// returned as a *PositionError. A failed launch is logged, counted in the
// Report and the run moves on. Notifications are best-effort and their
// errors are only logged.
package restore
