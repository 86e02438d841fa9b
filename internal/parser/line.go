package parser

import (
	"bytes"

	"github.com/tony-montemuro/minihttp/internal/constructs"
)

var methods = [][]byte{[]byte("GET"), []byte("POST")}

type ParsedRequestLine struct {
	Method  []byte
	Path    []byte
	Version []byte
}

type requestLineParser []byte

// Parse consumes the request line and its CRLF, returning the remaining input.
func (rl requestLineParser) Parse() (ParsedRequestLine, []byte, error) {
	method, rest, err := methodParser(rl).parse()
	if err != nil {
		return ParsedRequestLine{}, nil, err
	}

	if len(rest) == 0 {
		return ParsedRequestLine{}, nil, incompletef("no space after method yet")
	}
	if rest[0] != constructs.SP {
		return ParsedRequestLine{}, nil, syntaxErrorf("expected a single space after method (%q)", method)
	}
	rest = rest[1:]

	eol, err := lineEnd(rest)
	if err != nil {
		return ParsedRequestLine{}, nil, err
	}
	line, rest := rest[:eol], rest[eol+len(constructs.Crlf):]

	sp := bytes.IndexByte(line, constructs.SP)
	if sp == -1 {
		return ParsedRequestLine{}, nil, syntaxErrorf("request line has no version (%q)", line)
	}
	path, version := line[:sp], line[sp+1:]

	if len(path) == 0 {
		return ParsedRequestLine{}, nil, syntaxErrorf("empty path")
	}
	if len(version) == 0 {
		return ParsedRequestLine{}, nil, syntaxErrorf("empty version")
	}

	return ParsedRequestLine{Method: method, Path: path, Version: version}, rest, nil
}

type methodParser []byte

// parse matches a known method at the start of the input, ignoring case, and
// returns its canonical spelling.
func (mp methodParser) parse() ([]byte, []byte, error) {
	partial := false

	for _, m := range methods {
		if len(mp) < len(m) {
			if constructs.EqualFold(mp, m[:len(mp)]) {
				partial = true
			}
			continue
		}

		if constructs.EqualFold(mp[:len(m)], m) {
			return m, mp[len(m):], nil
		}
	}

	if partial {
		return nil, nil, incompletef("method not yet complete (%q)", []byte(mp))
	}

	n := bytes.IndexAny(mp, " \r\n")
	if n == -1 {
		n = len(mp)
	}
	return nil, nil, syntaxErrorf("unsupported method (%q)", mp[:n])
}

// lineEnd returns the index of the CRLF closing the first line of data.
func lineEnd(data []byte) (int, error) {
	eol := bytes.Index(data, []byte(constructs.Crlf))
	lf := bytes.IndexByte(data, constructs.LF)

	if eol == -1 {
		if lf != -1 {
			return 0, syntaxErrorf("line terminated by bare LF")
		}
		return 0, incompletef("no CRLF yet")
	}

	if lf != eol+1 {
		return 0, syntaxErrorf("line terminated by bare LF")
	}

	return eol, nil
}
