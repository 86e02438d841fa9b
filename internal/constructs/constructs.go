package constructs

const (
	SP   = ' '
	HT   = '\t'
	CR   = '\r'
	LF   = '\n'
	Crlf = "\r\n"
)

// EqualFold compares two ASCII byte strings ignoring case.
func EqualFold(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}

	return true
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
