package redox

// Action describes a state-transition request. Type is the key used to
// select a handler from the reducer's mapping; Payload is opaque to the
// library and forwarded verbatim to the handler.
type Action struct {
	Type    string
	Payload any
}
