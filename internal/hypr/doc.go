/*
Package hypr talks to the Hyprland compositor over its two local sockets.

# Sockets

Both sockets live under $XDG_RUNTIME_DIR/hypr/$HYPRLAND_INSTANCE_SIGNATURE:

	.socket.sock   one request per connection: write, half-close, read to EOF
	.socket2.sock  continuous newline-delimited event stream

The two identifiers are resolved once into an Endpoint value, which is then
handed to NewClient and Dial. A missing identifier fails at resolution time,
never at connect time.

# Commands

Client.Send is the only primitive. Everything else (Dispatch, QueryJSON,
FocusWorkspace, Exec, ...) formats a fixed template and calls Send. Values are
not escaped or quoted; callers must not pass commas or other characters that
are significant to the template. The response is returned verbatim: an
error-shaped reply such as "unknown request" is a successful round trip at
this layer. CheckResponse is available for callers that want to classify it.

No deadline is applied unless the caller supplies one, either through the
context or Client.WithTimeout. A compositor that never closes its side will
block Send indefinitely otherwise.

# Events

Decode maps one line to one Event and never fails: anything it cannot fully
parse becomes Unknown carrying the original line. Listener owns one event
connection and blocks its caller while delivering decoded events in wire
order. It does not reconnect; that policy belongs to the caller (see package
watch).

# Concurrency

A Client holds no connection between calls and may be shared, but the
package adds no locking of its own. A Listener has a single consumer.
*/
package hypr
