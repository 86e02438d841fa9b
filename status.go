package minihttp

const (
	StatusOK       = 200
	StatusNotFound = 404
)

func StatusText(code int) string {
	switch code {
	case StatusOK:
		return "OK"
	case StatusNotFound:
		return "Not Found"
	default:
		return ""
	}
}
