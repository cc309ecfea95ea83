// Package journal encodes log records into the systemd journal native
// protocol and delivers them over a Unix datagram socket.
//
// Wire format reference: https://systemd.io/JOURNAL_NATIVE_PROTOCOL/
package journal

// maxFieldNameLen is the longest field name journald accepts.
const maxFieldNameLen = 64

// escapePrefix marks names whose original first byte was not an ASCII
// letter, so the result never starts with a digit.
const escapePrefix = "ESC_"

// SanitizeFieldName maps an arbitrary key to a journald-legal field name:
// ASCII uppercase letters, digits and underscores, at most 64 bytes. The
// function is total; it never fails. Empty input becomes "EMPTY". Input is
// processed per byte, so multi-byte characters degrade to one underscore
// per byte. Truncation keeps the first bytes and is silent.
func SanitizeFieldName(name string) string {
	if name == "" {
		return "EMPTY"
	}

	out := make([]byte, 0, maxFieldNameLen)

	if !isASCIILetter(name[0]) {
		out = append(out, escapePrefix...)
	}

	for i := 0; i < len(name) && len(out) < maxFieldNameLen; i++ {
		c := name[i]

		switch {
		case c >= 'a' && c <= 'z':
			out = append(out, c-'a'+'A')
		case (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'):
			out = append(out, c)
		default:
			out = append(out, '_')
		}
	}

	return string(out)
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
