package engine

// EventType identifies engine events the UI can subscribe to.
type EventType int

const (
	// EventSceneChanged fires whenever the finalized sequence or the
	// pending object changes; the overlay redraws in response.
	EventSceneChanged EventType = iota

	// EventToolChanged fires when the active tool switches. Data is the
	// new Tool.
	EventToolChanged

	// EventStyleChanged fires when the pen style changes. Data is the
	// new annotation.Style.
	EventStyleChanged

	// EventTextEditRequested fires when the text tool is clicked and a
	// text entry should be captured. Data is the anchor geometry.Point2D.
	EventTextEditRequested

	// EventStatus carries a transient user-visible hint string.
	EventStatus
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// On registers an event listener for the specified event type.
// Listeners are registered during setup, before events flow.
func (e *Engine) On(event EventType, listener EventListener) {
	e.listeners[event] = append(e.listeners[event], listener)
}

// emit triggers all listeners for the specified event type.
func (e *Engine) emit(event EventType, data interface{}) {
	for _, listener := range e.listeners[event] {
		listener(data)
	}
}

// status emits a transient status hint.
func (e *Engine) status(msg string) {
	e.emit(EventStatus, msg)
}
