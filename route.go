package minihttp

import "strings"

type RouteKind int

const (
	RouteNotFound RouteKind = iota
	RouteRoot
	RouteEcho
	RouteUserAgent
	RouteFile
)

func (k RouteKind) String() string {
	switch k {
	case RouteRoot:
		return "root"
	case RouteEcho:
		return "echo"
	case RouteUserAgent:
		return "user-agent"
	case RouteFile:
		return "file"
	default:
		return "not-found"
	}
}

// Route is the outcome of dispatching a request. Text holds the echoed
// text, the user agent, or the requested file name.
type Route struct {
	Kind RouteKind
	Text string
}

const (
	echoPrefix       = "/echo/"
	filesPrefix      = "/files/"
	userAgentPath    = "/user-agent"
	userAgentHeader  = "User-Agent"
	unknownUserAgent = "Unknown"
)

// Dispatch maps a request to a route by path alone. The method plays no part
// and the path is matched literally, query string included.
func Dispatch(r *Request) Route {
	switch {
	case r.Path == "/":
		return Route{Kind: RouteRoot}
	case strings.HasPrefix(r.Path, echoPrefix):
		return Route{Kind: RouteEcho, Text: r.Path[len(echoPrefix):]}
	case strings.HasPrefix(r.Path, filesPrefix):
		return Route{Kind: RouteFile, Text: r.Path[len(filesPrefix):]}
	case r.Path == userAgentPath:
		ua, ok := r.Headers.Get(userAgentHeader)
		if !ok {
			ua = unknownUserAgent
		}
		return Route{Kind: RouteUserAgent, Text: ua}
	}

	return Route{Kind: RouteNotFound}
}
