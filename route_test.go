package minihttp

import (
	"testing"

	"github.com/tony-montemuro/minihttp/internal/assert"
)

func TestDispatch(t *testing.T) {
	tests := []struct {
		name     string
		request  Request
		expected Route
	}{
		{
			name:     "Root",
			request:  Request{Method: MethodGet, Path: "/"},
			expected: Route{Kind: RouteRoot},
		},
		{
			name:     "Echo",
			request:  Request{Method: MethodGet, Path: "/echo/abc"},
			expected: Route{Kind: RouteEcho, Text: "abc"},
		},
		{
			name:     "Echo keeps query string and escapes",
			request:  Request{Method: MethodGet, Path: "/echo/x?y=1%20z"},
			expected: Route{Kind: RouteEcho, Text: "x?y=1%20z"},
		},
		{
			name:     "Echo with nested slashes",
			request:  Request{Method: MethodPost, Path: "/echo/a/b/c"},
			expected: Route{Kind: RouteEcho, Text: "a/b/c"},
		},
		{
			name:     "Empty echo",
			request:  Request{Method: MethodGet, Path: "/echo/"},
			expected: Route{Kind: RouteEcho, Text: ""},
		},
		{
			name:     "Echo without trailing slash is not echo",
			request:  Request{Method: MethodGet, Path: "/echo"},
			expected: Route{Kind: RouteNotFound},
		},
		{
			name:     "File",
			request:  Request{Method: MethodGet, Path: "/files/notes.txt"},
			expected: Route{Kind: RouteFile, Text: "notes.txt"},
		},
		{
			name:     "File name passed through verbatim",
			request:  Request{Method: MethodGet, Path: "/files/../etc/passwd"},
			expected: Route{Kind: RouteFile, Text: "../etc/passwd"},
		},
		{
			name: "User agent",
			request: Request{Method: MethodGet, Path: "/user-agent", Headers: Headers{
				{Name: "Host", Value: "localhost"},
				{Name: "User-Agent", Value: "test-agent"},
				{Name: "User-Agent", Value: "second"},
			}},
			expected: Route{Kind: RouteUserAgent, Text: "test-agent"},
		},
		{
			name:     "Missing user agent",
			request:  Request{Method: MethodGet, Path: "/user-agent"},
			expected: Route{Kind: RouteUserAgent, Text: "Unknown"},
		},
		{
			name: "User agent name matched exactly",
			request: Request{Method: MethodGet, Path: "/user-agent", Headers: Headers{
				{Name: "user-agent", Value: "lower"},
			}},
			expected: Route{Kind: RouteUserAgent, Text: "Unknown"},
		},
		{
			name:     "User agent with query is not found",
			request:  Request{Method: MethodGet, Path: "/user-agent?x=1"},
			expected: Route{Kind: RouteNotFound},
		},
		{
			name:     "Unknown path",
			request:  Request{Method: MethodGet, Path: "/nope"},
			expected: Route{Kind: RouteNotFound},
		},
		{
			name:     "Unknown path with POST",
			request:  Request{Method: MethodPost, Path: "/nope"},
			expected: Route{Kind: RouteNotFound},
		},
		{
			name:     "Root with query is not root",
			request:  Request{Method: MethodGet, Path: "/?a=b"},
			expected: Route{Kind: RouteNotFound},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Dispatch(&tt.request), tt.expected)
		})
	}
}

func TestRouteKind_String(t *testing.T) {
	assert.Equal(t, RouteRoot.String(), "root")
	assert.Equal(t, RouteEcho.String(), "echo")
	assert.Equal(t, RouteUserAgent.String(), "user-agent")
	assert.Equal(t, RouteFile.String(), "file")
	assert.Equal(t, RouteNotFound.String(), "not-found")
}
