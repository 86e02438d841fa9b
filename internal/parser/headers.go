package parser

import (
	"bytes"

	"github.com/tony-montemuro/minihttp/internal/constructs"
	"github.com/tony-montemuro/minihttp/internal/lws"
)

type ParsedHeader struct {
	Name  []byte
	Value []byte
}

type requestHeadersParser []byte

// Parse consumes header lines up to and including the blank line that ends
// them. Header order and duplicates are kept as received.
func (rh requestHeadersParser) Parse() ([]ParsedHeader, []byte, error) {
	headers := []ParsedHeader{}
	rest := []byte(rh)

	for {
		eol, err := lineEnd(rest)
		if err != nil {
			return nil, nil, err
		}

		if eol == 0 {
			return headers, rest[len(constructs.Crlf):], nil
		}

		header, err := headerLineParser(rest[:eol]).parse()
		if err != nil {
			return nil, nil, err
		}

		headers = append(headers, header)
		rest = rest[eol+len(constructs.Crlf):]
	}
}

type headerLineParser []byte

func (hl headerLineParser) parse() (ParsedHeader, error) {
	line := []byte(hl)

	if lws.IsFold(line) {
		return ParsedHeader{}, syntaxErrorf("obsolete line folding is not supported (%q)", line)
	}

	colon := bytes.IndexByte(line, ':')
	if colon == -1 {
		return ParsedHeader{}, syntaxErrorf("header line without ':' (%q)", line)
	}

	name := line[:colon]
	if len(name) == 0 {
		return ParsedHeader{}, syntaxErrorf("empty header name (%q)", line)
	}

	// The name is taken as sent, and the value keeps everything after ": "
	// or ":" up to the line end.
	value := line[colon+1:]
	if len(value) > 0 && value[0] == constructs.SP {
		value = value[1:]
	}

	return ParsedHeader{Name: name, Value: value}, nil
}
