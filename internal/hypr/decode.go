package hypr

import (
	"strconv"
	"strings"
)

// Separator splits the event name from its data.
const Separator = ">>"

const fieldDelimiter = ","

// eventSpec describes one known event. The data part is split on
// fieldDelimiter into at most arity pieces, so the last field may itself
// contain commas (window titles do).
type eventSpec struct {
	arity int
	build func(fields []string) (Event, bool)
}

var eventTable = map[string]eventSpec{
	string(KindWorkspace): {2, func(f []string) (Event, bool) {
		id, ok := parseID(f[0])
		return WorkspaceChanged{ID: id, Name: f[1]}, ok
	}},
	string(KindFocusedMonitor): {2, func(f []string) (Event, bool) {
		return FocusedMonitor{Monitor: f[0], Workspace: f[1]}, true
	}},
	string(KindActiveWindow): {2, func(f []string) (Event, bool) {
		return ActiveWindow{Class: f[0], Title: f[1]}, true
	}},
	string(KindOpenWindow): {4, func(f []string) (Event, bool) {
		return WindowOpened{Address: f[0], Workspace: f[1], Class: f[2], Title: f[3]}, true
	}},
	string(KindCloseWindow): {1, func(f []string) (Event, bool) {
		return WindowClosed{Address: f[0]}, true
	}},
	string(KindMoveWindow): {2, func(f []string) (Event, bool) {
		return WindowMoved{Address: f[0], Workspace: f[1]}, true
	}},
	string(KindWindowTitle): {1, func(f []string) (Event, bool) {
		return WindowTitleChanged{Address: f[0], Title: ""}, true
	}},
	string(KindActiveLayout): {2, func(f []string) (Event, bool) {
		return LayoutChanged{Keyboard: f[0], Layout: f[1]}, true
	}},
	string(KindSubmap): {1, func(f []string) (Event, bool) {
		return SubmapChanged{Submap: f[0]}, true
	}},
	string(KindFullscreen): {1, func(f []string) (Event, bool) {
		return Fullscreen{State: f[0] == "1"}, true
	}},
	string(KindMonitorAdded): {1, func(f []string) (Event, bool) {
		return MonitorAdded{Name: f[0]}, true
	}},
	string(KindMonitorRemoved): {1, func(f []string) (Event, bool) {
		return MonitorRemoved{Name: f[0]}, true
	}},
	string(KindCreateWorkspace): {2, func(f []string) (Event, bool) {
		id, ok := parseID(f[0])
		return WorkspaceCreated{ID: id, Name: f[1]}, ok
	}},
	string(KindDestroyWorkspace): {2, func(f []string) (Event, bool) {
		id, ok := parseID(f[0])
		return WorkspaceDestroyed{ID: id, Name: f[1]}, ok
	}},
	string(KindMoveWorkspace): {3, func(f []string) (Event, bool) {
		id, ok := parseID(f[0])
		return WorkspaceMoved{ID: id, Name: f[1], Monitor: f[2]}, ok
	}},
}

// Decode turns one line of the event stream into an Event. It never fails:
// a missing separator, an unknown name, a wrong field count or a
// non-numeric ID all produce Unknown holding the original line.
func Decode(line string) Event {
	name, data, found := strings.Cut(line, Separator)
	if !found {
		return Unknown{Raw: line}
	}

	spec, known := eventTable[name]
	if !known {
		return Unknown{Raw: line}
	}

	fields := []string{data}
	if spec.arity > 1 {
		fields = strings.SplitN(data, fieldDelimiter, spec.arity)
	}
	if len(fields) != spec.arity {
		return Unknown{Raw: line}
	}

	ev, ok := spec.build(fields)
	if !ok {
		return Unknown{Raw: line}
	}
	return ev
}

// parseID parses a 32-bit signed workspace ID. No trimming.
func parseID(s string) (int, bool) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
