package minihttp

type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

type Header struct {
	Name  string
	Value string
}

// Headers keeps header fields in the order they were received. Names are
// matched byte for byte; "user-agent" and "User-Agent" are different fields.
type Headers []Header

// Get returns the value of the first field named name.
func (h Headers) Get(name string) (string, bool) {
	for _, f := range h {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}
