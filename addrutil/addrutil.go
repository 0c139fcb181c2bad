// Package addrutil implements small helpers for working with address
// strings and attachment metadata while composing a message. Nothing here
// validates addresses; these are formatting conveniences.
package addrutil

import (
	"fmt"
	"mime"
	"net/mail"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// Guess returns the MIME type for the given filename based on its
// extension. If the type cannot be guessed, fallback is returned instead. A
// useful fallback is "application/octet-stream".
func Guess(filename, fallback string) string {
	if t := mime.TypeByExtension(filepath.Ext(filename)); t != "" {
		return t
	}
	return fallback
}

// FormatAddress renders a display name and an address as a single mailbox
// string in "Name <address>" form, quoting and word-encoding the display
// name when it needs it. With an empty name the bare address is returned.
func FormatAddress(name, address string) string {
	if name == "" {
		return address
	}
	a := mail.Address{Name: name, Address: address}
	return a.String()
}

// FormatAddresses joins mailbox strings, in either "Name <address>" or bare
// "address" form, into a single header body with a comma and a space.
func FormatAddresses(addrs ...string) string {
	return strings.Join(addrs, ", ")
}

// StringifyAddress rewrites an address so it can travel in a message header:
// an all-ASCII address passes through untouched, otherwise the domain part
// is encoded as IDNA A-labels and the local part is NFC-normalized. The
// local part is not otherwise transformed; SMTPUTF8 support is the
// transport's concern.
//
// It returns an error when the domain cannot be encoded.
func StringifyAddress(address string) (string, error) {
	if isASCII(address) {
		return address, nil
	}

	at := strings.LastIndex(address, "@")
	if at < 0 {
		return norm.NFC.String(address), nil
	}

	local := norm.NFC.String(address[:at])
	domain, err := idna.Lookup.ToASCII(address[at+1:])
	if err != nil {
		return "", fmt.Errorf("cannot encode domain of %q: %w", address, err)
	}

	return local + "@" + domain, nil
}

// isASCII reports whether s contains only ASCII bytes.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
