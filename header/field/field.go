// Package field provides the header field pair used to feed a header.Header
// and generator functions for the common RFC 5322 fields. Each generator is
// a pure formatter: it produces a name and a body and performs no validation
// beyond formatting.
package field

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/quillpost/go-headers/header"
)

// Field is a single header field, a name paired with an unfolded body held
// as an opaque string. Field values are immutable; construct a new one to
// change either part.
type Field struct {
	name string
	body string
}

// New constructs a field from a name and a body.
func New(name, body string) Field {
	return Field{name, body}
}

// Name returns the name of the header field.
func (f Field) Name() string {
	return f.name
}

// Body returns the body of the header field as a string.
func (f Field) Body() string {
	return f.body
}

// String returns the complete header field as a string.
func (f Field) String() string {
	return fmt.Sprintf("%s: %s", f.name, f.body)
}

// Subject generates a Subject field with the given text, verbatim.
func Subject(text string) Field {
	return New(header.Subject, text)
}

// Sender generates a Sender field with the given address, verbatim.
func Sender(address string) Field {
	return New(header.Sender, address)
}

// To generates a To field from the given addresses. Each address may be in
// either "Name <address>" or bare "address" form; they are joined with a
// comma and a space.
func To(addrs ...string) Field {
	return New(header.To, strings.Join(addrs, ", "))
}

// Cc generates a Cc field from the given addresses, joined the same way as
// for To.
func Cc(addrs ...string) Field {
	return New(header.Cc, strings.Join(addrs, ", "))
}

// Bcc generates a Bcc field from the given addresses, joined the same way as
// for To. This is safe to add to a header.Header because Prepare never
// writes Bcc fields onto the outgoing message.
func Bcc(addrs ...string) Field {
	return New(header.Bcc, strings.Join(addrs, ", "))
}

// ContentDisposition generates a Content-Disposition field from a
// disposition ("inline" or "attachment") and a filename. The filename must
// be a base name, not a path, and is percent-quoted.
func ContentDisposition(disposition, filename string) Field {
	body := fmt.Sprintf("%s; filename=%q", disposition, url.PathEscape(filename))
	return New(header.ContentDisposition, body)
}

// Date generates a Date field with the given body. If body is empty, the
// current local time is used, formatted as required by RFC 5322.
func Date(body string) Field {
	if body == "" {
		body = time.Now().Format(time.RFC1123Z)
	}
	return New(header.Date, body)
}

// MessageID generates a Message-ID field with the given identifier. If id is
// empty, a freshly generated unique identifier is used instead, strengthened
// by idstring when one is given. When id is supplied, idstring is ignored.
func MessageID(id, idstring string) Field {
	if id == "" {
		id = makeMessageID(idstring)
	}
	return New(header.MessageID, id)
}
