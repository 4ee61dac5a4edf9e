package web

// Type is the first byte of a message sent to clients.
type Type = uint8

const (
	// Frame carries a full frame: cache index, then the cache entry, which
	// is a compression flag followed by the frame data.
	Frame Type = iota
	// FrameCache repeats the cached frame at the given index.
	FrameCache
	// FrameSkip reports how many unchanged frames were not sent, as a
	// little endian uint32.
	FrameSkip
	// FrameCacheSync carries every cached entry to a new client, each as
	// index, length (little endian uint16) and entry.
	FrameCacheSync
	// ClientInfo carries the client's average latency in milliseconds, as
	// a little endian uint16.
	ClientInfo
	// ServerInfo carries the title and status of the emulator.
	ServerInfo
)

// Event is the first byte of a message received from clients.
type Event = uint8

const (
	// KeyEvent is followed by the keypad key and 1 for a press or 0 for a
	// release.
	KeyEvent Event = iota
	// PausePlay toggles pause.
	PausePlay
	// ResetRequest restarts the ROM.
	ResetRequest
	// SaveRequest takes a snapshot.
	SaveRequest
	// LoadRequest restores the last snapshot.
	LoadRequest
	// Closing is sent by a client that is about to disconnect.
	Closing Event = 255
)
