package minihttp

import (
	"strings"

	"github.com/tony-montemuro/minihttp/internal/parser"
)

type Request struct {
	Method  Method
	Path    string
	Version string
	Headers Headers
}

// decode turns received bytes into text. Invalid UTF-8 is replaced rather
// than rejected.
func decode(b []byte) string {
	return strings.ToValidUTF8(string(b), "\uFFFD")
}

// newRequest decodes a parsed head. The parser only yields the canonical
// spelling of a supported method, so the method is taken as is.
func newRequest(p parser.ParsedRequest) *Request {
	headers := make(Headers, 0, len(p.Headers))
	for _, h := range p.Headers {
		headers = append(headers, Header{Name: decode(h.Name), Value: decode(h.Value)})
	}

	return &Request{
		Method:  Method(p.Line.Method),
		Path:    decode(p.Line.Path),
		Version: decode(p.Line.Version),
		Headers: headers,
	}
}

// ParseRequest parses a complete request head from data. It never reads
// past the blank line ending the headers.
func ParseRequest(data []byte) (*Request, error) {
	p, _, err := parser.RequestParser(data).Parse()
	if err != nil {
		return nil, &ParseError{err: err}
	}

	return newRequest(p), nil
}
