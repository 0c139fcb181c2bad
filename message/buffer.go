// Package message provides a minimal outgoing message buffer for a header
// set to be projected onto. Unlike header.Header, the buffer keeps raw RFC
// 5322 semantics: fields are ordered and a name may occur any number of
// times. Field name matching is case-insensitive here, as it is for any MIME
// header container.
package message

import (
	"bytes"
	"io"
	"strings"

	"github.com/quillpost/go-headers/header"
	"github.com/quillpost/go-headers/header/field"
)

// Buffer accumulates the header fields and body of one outgoing message. The
// zero value is an empty message ready for use. It implements
// header.Message, so a header.Header can be prepared directly onto it.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	lbr    Break
	fields []field.Field
	body   []byte
}

var _ header.Message = (*Buffer)(nil)

// Break returns the line break used when rendering the message. It defaults
// to CRLF.
func (b *Buffer) Break() Break {
	if b.lbr == "" {
		b.lbr = CRLF
	}
	return b.lbr
}

// SetBreak changes the line break used when rendering the message.
func (b *Buffer) SetBreak(lbr Break) {
	b.lbr = lbr
}

// Len returns the number of header fields on the message, counting repeats.
func (b *Buffer) Len() int {
	return len(b.fields)
}

// Fields returns a copy of all header fields in order.
func (b *Buffer) Fields() []field.Field {
	fs := make([]field.Field, len(b.fields))
	copy(fs, b.fields)
	return fs
}

// indexesNamed returns the positions of all fields matching the given name,
// ignoring case.
func (b *Buffer) indexesNamed(name string) []int {
	is := make([]int, 0, len(b.fields))
	for i, f := range b.fields {
		if strings.EqualFold(f.Name(), name) {
			is = append(is, i)
		}
	}
	return is
}

// GetHeader returns the body of the first field matching the given name,
// ignoring case. It returns an empty string with header.ErrNoSuchField when
// no field matches.
func (b *Buffer) GetHeader(name string) (string, error) {
	for _, f := range b.fields {
		if strings.EqualFold(f.Name(), name) {
			return f.Body(), nil
		}
	}
	return "", header.ErrNoSuchField
}

// GetAllHeaders returns the bodies of every field matching the given name,
// ignoring case, in order. It returns nil when no field matches.
func (b *Buffer) GetAllHeaders(name string) []string {
	var bs []string
	for _, f := range b.fields {
		if strings.EqualFold(f.Name(), name) {
			bs = append(bs, f.Body())
		}
	}
	return bs
}

// AddHeader appends a field with the given name and body to the end of the
// header, regardless of whether the name already occurs.
func (b *Buffer) AddHeader(name, body string) {
	b.fields = append(b.fields, field.New(name, body))
}

// SetHeader replaces all fields matching the given name, ignoring case, with
// a single field holding the given body. The new field takes the position of
// the first match, or is appended when there is no match.
func (b *Buffer) SetHeader(name, body string) {
	ixs := b.indexesNamed(name)
	if len(ixs) == 0 {
		b.AddHeader(name, body)
		return
	}

	b.fields[ixs[0]] = field.New(name, body)
	for i := len(ixs) - 1; i > 0; i-- {
		b.deleteField(ixs[i])
	}
}

// DeleteHeader removes every field matching the given name, ignoring case.
func (b *Buffer) DeleteHeader(name string) {
	ixs := b.indexesNamed(name)
	for i := len(ixs) - 1; i >= 0; i-- {
		b.deleteField(ixs[i])
	}
}

// deleteField removes the nth field. The index must be in range.
func (b *Buffer) deleteField(n int) {
	copy(b.fields[n:], b.fields[n+1:])
	b.fields = b.fields[:len(b.fields)-1]
}

// SetBody replaces the message body.
func (b *Buffer) SetBody(body []byte) {
	b.body = body
}

// Body returns the message body.
func (b *Buffer) Body() []byte {
	return b.body
}

// WriteTo renders the message to the given writer: one line per header field
// in order, a blank line, then the body. Header folding is not performed;
// bodies are written as-is.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes())
	return int64(n), err
}

// Bytes renders the message as a slice of bytes.
func (b *Buffer) Bytes() []byte {
	lbr := b.Break().Bytes()

	var buf bytes.Buffer
	for _, f := range b.fields {
		buf.WriteString(f.String())
		buf.Write(lbr)
	}
	buf.Write(lbr)
	buf.Write(b.body)
	return buf.Bytes()
}

// String renders the message as a string.
func (b *Buffer) String() string {
	return string(b.Bytes())
}
