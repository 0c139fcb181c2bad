package header

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/zostay/go-addr/pkg/addr"
)

// ParseTime provides the date parsing used by GetTime and GetDate and may be
// used on any field body. It attempts the format specified by RFC 5322 first
// and falls back to parsing a large number of other formats seen in the
// wild.
//
// It either returns the parsed time or the parse error.
func ParseTime(body string) (time.Time, error) {
	t, err := mail.ParseDate(body)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(body)
	if err == nil {
		return t, nil
	}

	return t, fmt.Errorf("time string %q cannot be parsed", body)
}

// ParseAddressList provides the address parsing used by Receivers and can be
// used on any field body. It attempts a strict RFC 5322 parse of the address
// list first. If that fails, it falls back to a forgiving parse that will
// return some kind of result for any input, which might be weird for weird
// input. It never fails.
func ParseAddressList(body string) addr.AddressList {
	al, err := addr.ParseEmailAddressList(body)
	if err != nil {
		al = salvageAddressList(body)
	}
	return al
}

// salvageAddressList is the fallback for when strict parsing lets us down.
// Address fields found on the Internet contain all kinds of junk, so this
// takes the "liberal in what you accept" route:
//
// 1. Split the string on commas.
// 2. Trim whitespace and strip comments from each piece.
// 3. Treat the last word as the address and any words before it as the
//    display name.
//
// Group syntax is not handled; groups are rare enough in the wild that a
// group encountered here will simply parse oddly.
func salvageAddressList(body string) addr.AddressList {
	pieces := strings.Split(body, ",")
	al := make(addr.AddressList, 0, len(pieces))
	for _, orig := range pieces {
		mb, com := splitComments(orig)

		mb = strings.TrimSpace(mb)
		com = strings.TrimSpace(com)

		words := strings.Fields(mb)
		if len(words) == 0 {
			continue
		}

		email := words[len(words)-1]
		dn := strings.Join(words[:len(words)-1], " ")

		var as *addr.AddrSpec
		if i := strings.Index(email, "@"); i > -1 {
			as = addr.NewAddrSpecParsed(email[:i], email[i+1:], email)
		} else {
			as = addr.NewAddrSpecParsed(email, "", email)
		}

		mailbox, err := addr.NewMailboxParsed(dn, as, com, orig)
		if err != nil {
			mailbox, _ = addr.NewMailboxParsed(dn, as, "", orig)
		}

		al = append(al, mailbox)
	}
	return al
}

// splitComments strips RFC 5322 comments from a mailbox string and returns
// the remaining text and the comment text separately. Nested parentheses
// stay part of the comment; an unmatched close parenthesis is kept in the
// clean text.
func splitComments(s string) (string, string) {
	var clean, comment strings.Builder
	depth := 0
	for _, c := range s {
		switch {
		case c == '(':
			depth++
			if depth > 1 {
				comment.WriteRune(c)
			}
		case c == ')':
			depth--
			switch {
			case depth > 0:
				comment.WriteRune(c)
			case depth < 0:
				depth = 0
				clean.WriteRune(c)
			}
		case depth > 0:
			comment.WriteRune(c)
		default:
			clean.WriteRune(c)
		}
	}
	return clean.String(), comment.String()
}
