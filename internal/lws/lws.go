// Package lws recognizes the linear whitespace (SP / HT) that starts an
// obsolete folded header line.
package lws

import "github.com/tony-montemuro/minihttp/internal/constructs"

func Is(b byte) bool {
	return b == constructs.SP || b == constructs.HT
}

// IsFold reports whether line is an obs-fold continuation line.
func IsFold(line []byte) bool {
	return len(line) > 0 && Is(line[0])
}
