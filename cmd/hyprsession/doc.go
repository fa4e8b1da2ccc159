/*
Command hyprsession saves and restores the window layout of a running
Hyprland session, and exposes the compositor's IPC for scripting.

Usage:

	hyprsession [global flags] <command> [args]

Commands:

	save [path]          capture live windows into a snapshot file
	restore [path]       reposition or relaunch the windows of a snapshot
	listen [-filter k]   print compositor events as JSON lines
	query <key>          print the raw reply of "j/<key>"
	dispatch <args...>   send "dispatch <args>" and print the reply

The snapshot format follows the file extension: .json, .yaml, .yml or
.toml, optionally with a trailing .gz. Without a path the snapshot lives at
$HYPRSESSION_SNAPSHOT, or under $XDG_STATE_HOME/hyprsession.

Global flags override the environment:

	-log-level string   debug, info, warn or error
	-dev                human-readable console logs
	-metrics string     serve Prometheus metrics on this address
	-timeout duration   deadline for each compositor command
*/
package main
