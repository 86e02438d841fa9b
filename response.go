package minihttp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/tony-montemuro/minihttp/internal/constructs"
)

type code int

func (c code) marshal() []byte {
	return fmt.Appendf([]byte{}, "HTTP/1.1 %d %s%s", c, StatusText(int(c)), constructs.Crlf)
}

type response struct {
	code    code
	headers Headers
	body    []byte
}

func (r response) marshalHead() []byte {
	head := r.code.marshal()
	for _, h := range r.headers {
		head = fmt.Appendf(head, "%s: %s%s", h.Name, h.Value, constructs.Crlf)
	}
	return append(head, constructs.Crlf...)
}

func (r response) Marshal() []byte {
	return append(r.marshalHead(), r.body...)
}

func contentHeaders(contentType string, length int64) Headers {
	return Headers{
		{Name: "Content-Type", Value: contentType},
		{Name: "Content-Length", Value: strconv.FormatInt(length, 10)},
	}
}

func textResponse(text string) response {
	return response{
		code:    StatusOK,
		headers: contentHeaders("text/plain", int64(len(text))),
		body:    []byte(text),
	}
}

// writeRoute writes the response for route to w and reports its status and
// the number of bytes handed to w. A file that cannot be served yields an
// IOError and no status line.
func writeRoute(w *bufio.Writer, route Route, files *fileRoot) (int, int64, error) {
	var res response

	switch route.Kind {
	case RouteRoot:
		res = response{code: StatusOK}
	case RouteEcho, RouteUserAgent:
		res = textResponse(route.Text)
	case RouteFile:
		return writeFile(w, route.Text, files)
	default:
		res = response{code: StatusNotFound}
	}

	n, err := w.Write(res.Marshal())
	if err != nil {
		return int(res.code), int64(n), ioError("write", err)
	}
	return int(res.code), int64(n), nil
}

func writeFile(w *bufio.Writer, name string, files *fileRoot) (int, int64, error) {
	f, size, err := files.open(name)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	res := response{code: StatusOK, headers: contentHeaders("application/octet-stream", size)}
	n, err := w.Write(res.marshalHead())
	if err != nil {
		return int(res.code), int64(n), ioError("write", err)
	}

	copied, err := io.CopyN(w, f, size)
	if err != nil {
		return int(res.code), int64(n) + copied, ioError("copy", err)
	}

	return int(res.code), int64(n) + copied, nil
}
