package message

// Break is the line break used when rendering a message.
type Break string

// Line breaks a Buffer can be rendered with. Outgoing messages on the wire
// use CRLF; LF is convenient for local files and tests.
const (
	CRLF Break = "\r\n"
	LF   Break = "\n"
)

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes.
func (b Break) Bytes() []byte {
	return []byte(b)
}
