package header

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// Errors returned by various header methods and functions.
var (
	// ErrNoSuchField is returned by Header methods when the operation
	// being performed failed because the header named does not exist.
	ErrNoSuchField = errors.New("no such header field")
)

// These are the standard header names defined in RFC 5322 that this package
// works with directly. Header names are case-sensitive as far as this
// package is concerned: "From" and "from" are two different keys.
const (
	Bcc                = "Bcc"
	Cc                 = "Cc"
	ContentDisposition = "Content-Disposition"
	Date               = "Date"
	From               = "From"
	MessageID          = "Message-ID"
	Sender             = "Sender"
	Subject            = "Subject"
	To                 = "To"
)

// These are the "Resent-" variants described by RFC 5322 section 3.6.6. When
// a message carries a Resent-Date field, the Resent- variants take precedence
// over the plain fields during sender and receiver resolution.
const (
	ResentBcc    = "Resent-Bcc"
	ResentCc     = "Resent-Cc"
	ResentDate   = "Resent-Date"
	ResentFrom   = "Resent-From"
	ResentSender = "Resent-Sender"
	ResentTo     = "Resent-To"
)

// Field is the producer side of a header entry. Anything that can name a
// header and render its body can be added to a Header. The field package
// provides the usual implementation along with generator functions for the
// common fields.
type Field interface {
	// Name returns the header field name.
	Name() string

	// Body returns the header field body as an unfolded string.
	Body() string
}

// Message is the header surface of an outgoing message. Prepare writes
// through this interface, so any MIME-style container that can remove and
// append named fields can receive a prepared header set. The message package
// provides an implementation.
type Message interface {
	// DeleteHeader removes every field with the given name.
	DeleteHeader(name string)

	// SetHeader replaces all fields with the given name with a single
	// field holding the given body.
	SetHeader(name, body string)
}

// Header holds the final set of header fields for one outgoing message. It
// deviates from raw RFC 5322 semantics deliberately: at most one value is
// kept per field name, and setting a name that is already present replaces
// the previous value. This makes lookup deterministic while a message is
// being composed. The zero value is an empty header ready for use.
//
// On top of plain key/value storage, Header resolves the sender and receiver
// addresses of the message while respecting the Resent- header variants, and
// projects itself onto an outgoing message via Prepare.
//
// A Header is not safe for concurrent use; it is expected to be owned by a
// single message-construction flow.
type Header struct {
	fields map[string]string
}

// New creates a Header pre-populated with the given fields, applied in
// order. Later fields with the same name overwrite earlier ones.
func New(fields ...Field) *Header {
	h := &Header{}
	h.Add(fields...)
	return h
}

// init initializes the field map lazily so that the zero value works.
func (h *Header) init() {
	if h.fields == nil {
		h.fields = make(map[string]string, 10)
	}
}

// Len returns the number of fields stored in the header.
func (h *Header) Len() int {
	return len(h.fields)
}

// Names returns the names of all stored fields in lexicographic order. The
// order of fields is not otherwise meaningful to this package.
func (h *Header) Names() []string {
	ns := make([]string, 0, len(h.fields))
	for n := range h.fields {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}

// Set stores body under name, overwriting any value previously stored for
// that exact name. The body is stored verbatim; validating it is the
// caller's concern.
func (h *Header) Set(name, body string) {
	h.init()
	h.fields[name] = body
}

// Add applies the given fields in order via Set. It is the usual way to feed
// the generator functions from the field package into a header:
//
//	h.Add(
//		field.Subject("Hello"),
//		field.To("alice@example.com", "bob@example.com"),
//	)
func (h *Header) Add(fields ...Field) {
	for _, f := range fields {
		h.Set(f.Name(), f.Body())
	}
}

// Get retrieves the body stored under the given name.
//
// If the named field is not set in the header, it will return an empty
// string with ErrNoSuchField.
func (h *Header) Get(name string) (string, error) {
	b, ok := h.fields[name]
	if !ok {
		return "", ErrNoSuchField
	}
	return b, nil
}

// Contains returns whether a field with the given name is set.
func (h *Header) Contains(name string) bool {
	_, ok := h.fields[name]
	return ok
}

// Delete removes the field with the given name, if present.
func (h *Header) Delete(name string) {
	delete(h.fields, name)
}

// Clone returns a deep copy of the header.
func (h *Header) Clone() *Header {
	fields := make(map[string]string, len(h.fields))
	for n, b := range h.fields {
		fields[n] = b
	}
	return &Header{fields: fields}
}

// Resent reports whether the message has been marked as resent, which is the
// case exactly when a Resent-Date field is present. When true, the Resent-
// variants take precedence during Sender and Receivers resolution.
func (h *Header) Resent() bool {
	return h.Contains(ResentDate)
}

// Sender resolves the sender address of the message. An explicit Sender
// field overrides From, as per RFC 5322; when the message is resent, only
// Resent-Sender and Resent-From are consulted and the plain fields are
// ignored entirely.
//
// It returns the body of the first candidate field present. If no candidate
// is present, it returns an empty string with ErrNoSuchField.
func (h *Header) Sender() (string, error) {
	fetch := []string{Sender, From}
	if h.Resent() {
		fetch = []string{ResentSender, ResentFrom}
	}

	for _, name := range fetch {
		if b, ok := h.fields[name]; ok {
			return b, nil
		}
	}
	return "", ErrNoSuchField
}

// Receivers resolves the receiver addresses of the message from the To, Cc,
// and Bcc fields, in that order, or from their Resent- variants when the
// message is resent. The collected field bodies are parsed as one
// comma-separated address list and only the address part of each mailbox is
// returned. Duplicates are kept.
//
// Bcc addresses are included here even though Prepare never writes them to
// the outgoing message: the delivering agent still needs them as envelope
// recipients.
//
// Missing and empty fields contribute nothing. If none of the candidate
// fields are present, Receivers returns nil.
func (h *Header) Receivers() []string {
	fetch := []string{To, Cc, Bcc}
	if h.Resent() {
		fetch = []string{ResentTo, ResentCc, ResentBcc}
	}

	bodies := make([]string, 0, len(fetch))
	for _, name := range fetch {
		if b := h.fields[name]; b != "" {
			bodies = append(bodies, b)
		}
	}
	if len(bodies) == 0 {
		return nil
	}

	al := ParseAddressList(strings.Join(bodies, ", "))
	rs := make([]string, len(al))
	for i, a := range al {
		rs[i] = a.Address()
	}
	return rs
}

// GetTime parses the named field body as a date and returns it. It will
// attempt to parse the date in many formats, not just the format specified
// by RFC 5322 (though, it will try that first).
//
// It will return the zero value and ErrNoSuchField if the field does not
// exist and the zero value with an error if the body cannot be parsed as a
// time.
func (h *Header) GetTime(name string) (time.Time, error) {
	b, err := h.Get(name)
	if err != nil {
		return time.Time{}, err
	}
	return ParseTime(b)
}

// GetDate parses the Date field, or the Resent-Date field when the message
// is resent, and returns it as a time.Time.
func (h *Header) GetDate() (time.Time, error) {
	if h.Resent() {
		return h.GetTime(ResentDate)
	}
	return h.GetTime(Date)
}

// Prepare applies every stored field onto the given outgoing message, except
// for fields named exactly Bcc or Resent-Bcc, which are never written. This
// is what makes blind copies blind: the prepared message carries no trace of
// them.
//
// Every written field replaces whatever the message already holds under that
// name, so the prepared message carries exactly one occurrence per name.
// Fields are applied in Names() order. The message is mutated in place.
func (h *Header) Prepare(m Message) {
	for _, name := range h.Names() {
		if name == Bcc || name == ResentBcc {
			continue
		}
		m.DeleteHeader(name)
		m.SetHeader(name, h.fields[name])
	}
}

// String returns the header rendered one field per line in Names() order.
// This rendering is for inspection; writing an outgoing message is the
// message package's job.
func (h *Header) String() string {
	var buf strings.Builder
	for _, name := range h.Names() {
		buf.WriteString(name)
		buf.WriteString(": ")
		buf.WriteString(h.fields[name])
		buf.WriteString("\n")
	}
	return buf.String()
}
