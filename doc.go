// Package headers assembles RFC 5322 header sets for outgoing email
// messages. It is a composition helper, not a MIME implementation: it knows
// nothing about encoding bodies or speaking SMTP, and it assumes the message
// it writes into is managed elsewhere.
//
// The core type is header.Header, a key-unique header container with
// last-write-wins semantics. This is a deliberate deviation from raw message
// headers, which allow a name to repeat: while a message is being composed,
// keeping exactly one value per name makes lookup deterministic and makes
// "set the Subject" mean what it says. On top of that storage the Header
// resolves the envelope sender and recipients of the message, honoring the
// Resent- header variants of RFC 5322 section 3.6.6, and projects itself
// onto an outgoing message while withholding Bcc and Resent-Bcc so that
// blind copies stay blind.
//
// The header/field package provides generator functions for the common
// fields (Subject, To, Date, Message-ID, and friends), each producing a
// name/body pair ready to feed into a Header:
//
//	h := header.New(
//		field.Subject("Minutes"),
//		field.To("alice@example.com", "bob@example.com"),
//		field.Bcc("archive@example.com"),
//		field.Date(""),
//		field.MessageID("", ""),
//	)
//
//	buf := &message.Buffer{}
//	h.Prepare(buf)
//
// The message package supplies a minimal outgoing message buffer with raw
// header semantics for Prepare to write into; any other container can be
// used by implementing the two-method header.Message interface. The addrutil
// package rounds things out with formatting helpers for addresses and
// attachment types.
package headers
