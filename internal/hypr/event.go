package hypr

// Kind is the event name as it appears on the wire.
type Kind string

const (
	KindWorkspace        Kind = "workspace"
	KindFocusedMonitor   Kind = "focusedmon"
	KindActiveWindow     Kind = "activewindow"
	KindOpenWindow       Kind = "openwindow"
	KindCloseWindow      Kind = "closewindow"
	KindMoveWindow       Kind = "movewindow"
	KindWindowTitle      Kind = "windowtitle"
	KindActiveLayout     Kind = "activelayout"
	KindSubmap           Kind = "submap"
	KindFullscreen       Kind = "fullscreen"
	KindMonitorAdded     Kind = "monitoradded"
	KindMonitorRemoved   Kind = "monitorremoved"
	KindCreateWorkspace  Kind = "createworkspace"
	KindDestroyWorkspace Kind = "destroyworkspace"
	KindMoveWorkspace    Kind = "moveworkspace"

	// KindUnknown is not a wire name; it tags the catch-all variant.
	KindUnknown Kind = "unknown"
)

// Event is one decoded line of the event stream. The set of implementations
// is closed: every value is one of the types below.
type Event interface {
	Kind() Kind
	event()
}

// WorkspaceChanged: workspace>>ID,NAME
type WorkspaceChanged struct {
	ID   int
	Name string
}

// FocusedMonitor: focusedmon>>MONITOR,WORKSPACE
type FocusedMonitor struct {
	Monitor   string
	Workspace string
}

// ActiveWindow: activewindow>>CLASS,TITLE
type ActiveWindow struct {
	Class string
	Title string
}

// WindowOpened: openwindow>>ADDRESS,WORKSPACE,CLASS,TITLE
type WindowOpened struct {
	Address   string
	Workspace string
	Class     string
	Title     string
}

// WindowClosed: closewindow>>ADDRESS
type WindowClosed struct {
	Address string
}

// WindowMoved: movewindow>>ADDRESS,WORKSPACE
type WindowMoved struct {
	Address   string
	Workspace string
}

// WindowTitleChanged: windowtitle>>ADDRESS
//
// The wire carries only the address. Title is always empty; look the window
// up with a clients query if the new title is needed.
type WindowTitleChanged struct {
	Address string
	Title   string
}

// LayoutChanged: activelayout>>KEYBOARD,LAYOUT
type LayoutChanged struct {
	Keyboard string
	Layout   string
}

// SubmapChanged: submap>>NAME
type SubmapChanged struct {
	Submap string
}

// Fullscreen: fullscreen>>0|1
type Fullscreen struct {
	State bool
}

// MonitorAdded: monitoradded>>NAME
type MonitorAdded struct {
	Name string
}

// MonitorRemoved: monitorremoved>>NAME
type MonitorRemoved struct {
	Name string
}

// WorkspaceCreated: createworkspace>>ID,NAME
type WorkspaceCreated struct {
	ID   int
	Name string
}

// WorkspaceDestroyed: destroyworkspace>>ID,NAME
type WorkspaceDestroyed struct {
	ID   int
	Name string
}

// WorkspaceMoved: moveworkspace>>ID,NAME,MONITOR
type WorkspaceMoved struct {
	ID      int
	Name    string
	Monitor string
}

// Unknown carries a line that did not decode into any other variant,
// unchanged.
type Unknown struct {
	Raw string
}

func (WorkspaceChanged) Kind() Kind   { return KindWorkspace }
func (FocusedMonitor) Kind() Kind     { return KindFocusedMonitor }
func (ActiveWindow) Kind() Kind       { return KindActiveWindow }
func (WindowOpened) Kind() Kind       { return KindOpenWindow }
func (WindowClosed) Kind() Kind       { return KindCloseWindow }
func (WindowMoved) Kind() Kind        { return KindMoveWindow }
func (WindowTitleChanged) Kind() Kind { return KindWindowTitle }
func (LayoutChanged) Kind() Kind      { return KindActiveLayout }
func (SubmapChanged) Kind() Kind      { return KindSubmap }
func (Fullscreen) Kind() Kind         { return KindFullscreen }
func (MonitorAdded) Kind() Kind       { return KindMonitorAdded }
func (MonitorRemoved) Kind() Kind     { return KindMonitorRemoved }
func (WorkspaceCreated) Kind() Kind   { return KindCreateWorkspace }
func (WorkspaceDestroyed) Kind() Kind { return KindDestroyWorkspace }
func (WorkspaceMoved) Kind() Kind     { return KindMoveWorkspace }
func (Unknown) Kind() Kind            { return KindUnknown }

func (WorkspaceChanged) event()   {}
func (FocusedMonitor) event()     {}
func (ActiveWindow) event()       {}
func (WindowOpened) event()       {}
func (WindowClosed) event()       {}
func (WindowMoved) event()        {}
func (WindowTitleChanged) event() {}
func (LayoutChanged) event()      {}
func (SubmapChanged) event()      {}
func (Fullscreen) event()         {}
func (MonitorAdded) event()       {}
func (MonitorRemoved) event()     {}
func (WorkspaceCreated) event()   {}
func (WorkspaceDestroyed) event() {}
func (WorkspaceMoved) event()     {}
func (Unknown) event()            {}

// IsWindowEvent reports whether ev concerns a single window's lifecycle or
// focus. Handy as a ListenFiltered predicate.
func IsWindowEvent(ev Event) bool {
	switch ev.(type) {
	case WindowOpened, WindowClosed, WindowMoved, ActiveWindow, WindowTitleChanged:
		return true
	}
	return false
}

// KindIn returns a predicate matching any of the given kinds.
func KindIn(kinds ...Kind) func(Event) bool {
	set := make(map[Kind]struct{}, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	return func(ev Event) bool {
		_, ok := set[ev.Kind()]
		return ok
	}
}
