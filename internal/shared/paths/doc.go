// Package paths resolves where hyprsession keeps its files.
//
//	$XDG_STATE_HOME/hyprsession/session.json    default snapshot
//	$XDG_CONFIG_HOME/hyprsession/aliases.yaml   optional launch aliases
//
// When an XDG variable is unset the usual fallbacks under $HOME apply
// (~/.local/state and ~/.config).
package paths
