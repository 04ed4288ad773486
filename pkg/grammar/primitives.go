package grammar

import (
	"strings"
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlphaNumeric(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// word matches alphanumerics plus the given extra characters.
func word(label string, extra string) charRun {
	return charRun{
		label: label,
		accept: func(c byte) bool {
			return isAlphaNumeric(c) || strings.IndexByte(extra, c) >= 0
		},
	}
}

var (
	number = charRun{label: "number", accept: isDigit}

	octet = charRun{label: "octet", accept: isDigit, max: 3}

	// no range check is performed on octets.
	ipAddr = seq(octet, literal("."), octet, literal("."), octet, literal("."), octet)

	port = number

	sp = charRun{label: "whitespace", accept: isBlank}

	text = restOfLine{min: 1}

	nettype = oneOf{label: "nettype", alts: []string{"IN"}}

	addrtype = oneOf{label: "addrtype", alts: []string{"IP4", "IP6"}}
)
