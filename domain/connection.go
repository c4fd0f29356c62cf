package domain

// ConnectionKind scopes a client connection to a purpose. A user may hold
// several concurrent connections of different kinds (multi-device, multi-tab).
type ConnectionKind string

const (
	ConnectionGeneral  ConnectionKind = "general"
	ConnectionMatching ConnectionKind = "matching"
	ConnectionRoom     ConnectionKind = "room"
)

// Valid reports whether the kind is one of the known connection purposes.
func (k ConnectionKind) Valid() bool {
	switch k {
	case ConnectionGeneral, ConnectionMatching, ConnectionRoom:
		return true
	}
	return false
}
