package parser

type ParsedRequest struct {
	Line    ParsedRequestLine
	Headers []ParsedHeader
}

// RequestParser parses the head of a request: the request line followed by
// its header block. The returned slices alias the input.
type RequestParser []byte

// Parse returns the request head and whatever follows the blank line. When
// the input stops short of a delimiter the error wraps ErrIncomplete; any
// other failure is a SyntaxError.
func (p RequestParser) Parse() (ParsedRequest, []byte, error) {
	line, rest, err := requestLineParser(p).Parse()
	if err != nil {
		return ParsedRequest{}, nil, err
	}

	headers, rest, err := requestHeadersParser(rest).Parse()
	if err != nil {
		return ParsedRequest{}, nil, err
	}

	return ParsedRequest{Line: line, Headers: headers}, rest, nil
}
