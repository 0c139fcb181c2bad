package header_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillpost/go-headers/header"
	"github.com/quillpost/go-headers/header/field"
)

func TestHeader_ZeroValue(t *testing.T) {
	t.Parallel()

	// these must all be safe on a zero value Header
	testFuncs := []func(*header.Header){
		func(h *header.Header) { assert.Zero(t, h.Len()) },
		func(h *header.Header) { assert.Empty(t, h.Names()) },
		func(h *header.Header) {
			b, err := h.Get(header.Subject)
			assert.ErrorIs(t, err, header.ErrNoSuchField)
			assert.Empty(t, b)
		},
		func(h *header.Header) { assert.False(t, h.Contains(header.Subject)) },
		func(h *header.Header) { h.Delete(header.Subject) },
		func(h *header.Header) { assert.False(t, h.Resent()) },
		func(h *header.Header) {
			s, err := h.Sender()
			assert.ErrorIs(t, err, header.ErrNoSuchField)
			assert.Empty(t, s)
		},
		func(h *header.Header) { assert.Nil(t, h.Receivers()) },
		func(h *header.Header) { h.Prepare(&fakeMessage{}) },
		func(h *header.Header) { assert.Empty(t, h.String()) },
		func(h *header.Header) { h.Set(header.Subject, "works after use") },
	}
	for _, testFunc := range testFuncs {
		h := &header.Header{}
		assert.NotPanics(t, func() { testFunc(h) })
	}
}

func TestHeader_LastWriteWins(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.Set(header.Subject, "first")
	h.Set(header.To, "someone@example.com")
	h.Set(header.Subject, "second")

	assert.Equal(t, 2, h.Len())

	b, err := h.Get(header.Subject)
	require.NoError(t, err)
	assert.Equal(t, "second", b)

	h.Delete(header.To)
	assert.Equal(t, 1, h.Len())
	assert.False(t, h.Contains(header.To))
}

func TestHeader_Add(t *testing.T) {
	t.Parallel()

	h := header.New(
		field.Subject("Hello"),
		field.To("alice@example.com", "bob@example.com"),
		field.Subject("Hello again"),
	)

	assert.Equal(t, 2, h.Len())

	b, err := h.Get(header.Subject)
	require.NoError(t, err)
	assert.Equal(t, "Hello again", b)

	b, err = h.Get(header.To)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com, bob@example.com", b)
}

func TestHeader_Resent(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	assert.False(t, h.Resent())

	// Resent-From alone does not mark the message as resent
	h.Set(header.ResentFrom, "carol@example.com")
	assert.False(t, h.Resent())

	h.Set(header.ResentDate, "Tue, 06 Jun 2023 11:12:13 +0000")
	assert.True(t, h.Resent())

	h.Delete(header.ResentDate)
	assert.False(t, h.Resent())
}

func TestHeader_Sender(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.Set(header.From, "alice@example.com")

	s, err := h.Sender()
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", s)

	// an explicit Sender beats From
	h.Set(header.Sender, "bob@example.com")
	s, err = h.Sender()
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", s)
}

func TestHeader_SenderResent(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.Set(header.From, "alice@example.com")
	h.Set(header.Sender, "bob@example.com")
	h.Set(header.ResentDate, "Tue, 06 Jun 2023 11:12:13 +0000")

	// once resent, the plain fields are ignored entirely
	s, err := h.Sender()
	assert.ErrorIs(t, err, header.ErrNoSuchField)
	assert.Empty(t, s)

	h.Set(header.ResentFrom, "carol@example.com")
	s, err = h.Sender()
	require.NoError(t, err)
	assert.Equal(t, "carol@example.com", s)

	h.Set(header.ResentSender, "dave@example.com")
	s, err = h.Sender()
	require.NoError(t, err)
	assert.Equal(t, "dave@example.com", s)
}

func TestHeader_Receivers(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.Set(header.To, `"A" <a@example.com>, b@example.com`)
	h.Set(header.Cc, "c@example.com")

	assert.Equal(t, []string{
		"a@example.com",
		"b@example.com",
		"c@example.com",
	}, h.Receivers())

	// Bcc contributes to the envelope recipients even though it is never
	// written to the message
	h.Set(header.Bcc, "d@example.com")
	assert.Equal(t, []string{
		"a@example.com",
		"b@example.com",
		"c@example.com",
		"d@example.com",
	}, h.Receivers())
}

func TestHeader_ReceiversResent(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.Set(header.To, "a@example.com")
	h.Set(header.Cc, "c@example.com")
	h.Set(header.ResentDate, "Tue, 06 Jun 2023 11:12:13 +0000")

	assert.Nil(t, h.Receivers())

	h.Set(header.ResentTo, "x@example.com")
	h.Set(header.ResentBcc, "y@example.com")
	assert.Equal(t, []string{
		"x@example.com",
		"y@example.com",
	}, h.Receivers())
}

func TestHeader_ReceiversEmptyFields(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.Set(header.To, "")
	h.Set(header.Cc, "c@example.com")

	// an empty field contributes nothing
	assert.Equal(t, []string{"c@example.com"}, h.Receivers())

	h.Delete(header.Cc)
	assert.Nil(t, h.Receivers())
}

func TestHeader_ReceiversDuplicates(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.Set(header.To, "a@example.com")
	h.Set(header.Cc, "a@example.com")

	// duplicates are kept
	assert.Equal(t, []string{
		"a@example.com",
		"a@example.com",
	}, h.Receivers())
}

func TestHeader_GetDate(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.Set(header.Date, "Tue, 06 Jun 2023 11:12:13 +0000")

	d, err := h.GetDate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.June, 6, 11, 12, 13, 0, time.UTC), d.UTC())

	// resent messages report the resend date
	h.Set(header.ResentDate, "Wed, 07 Jun 2023 08:00:00 +0000")
	d, err = h.GetDate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.June, 7, 8, 0, 0, 0, time.UTC), d.UTC())
}

func TestHeader_Clone(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.Set(header.Subject, "original")

	c := h.Clone()
	c.Set(header.Subject, "changed")
	c.Set(header.To, "a@example.com")

	b, err := h.Get(header.Subject)
	require.NoError(t, err)
	assert.Equal(t, "original", b)
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 2, c.Len())
}

func TestHeader_String(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.Set(header.To, "a@example.com")
	h.Set(header.Subject, "Hello")

	assert.Equal(t, "Subject: Hello\nTo: a@example.com\n", h.String())
}

// fakeMessage records DeleteHeader and SetHeader calls in order.
type fakeMessage struct {
	ops []string
}

func (m *fakeMessage) DeleteHeader(name string) {
	m.ops = append(m.ops, "del "+name)
}

func (m *fakeMessage) SetHeader(name, body string) {
	m.ops = append(m.ops, "set "+name+": "+body)
}

func TestHeader_Prepare(t *testing.T) {
	t.Parallel()

	h := &header.Header{}
	h.Set(header.Subject, "Hello")
	h.Set(header.To, "a@example.com")
	h.Set(header.Bcc, "d@example.com")
	h.Set(header.ResentBcc, "e@example.com")

	m := &fakeMessage{}
	h.Prepare(m)

	// Names() order, delete before set, no blind-copy fields at all
	assert.Equal(t, []string{
		"del Subject",
		"set Subject: Hello",
		"del To",
		"set To: a@example.com",
	}, m.ops)
}
