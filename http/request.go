package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// ErrEmptyBody is returned by Bind for a JSON request without a body.
var ErrEmptyBody = errors.New("empty request body")

// Request reads input from an *http.Request.
type Request struct {
	r *http.Request
}

func NewRequest(r *http.Request) *Request {
	return &Request{r: r}
}

// Bind decodes the body into v. JSON bodies are decoded as is; form bodies
// are matched against v's json tags, first value per key.
func (req *Request) Bind(v any) error {
	mediaType, _, _ := mime.ParseMediaType(req.r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		return req.decodeJSON(v)
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return req.decodeForm(v)
	default:
		return fmt.Errorf("unsupported content type %q", mediaType)
	}
}

func (req *Request) decodeJSON(v any) error {
	defer req.r.Body.Close()
	err := json.NewDecoder(req.r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return ErrEmptyBody
	}
	return err
}

func (req *Request) decodeForm(v any) error {
	if err := req.r.ParseForm(); err != nil {
		return err
	}
	fields := make(map[string]string, len(req.r.PostForm))
	for key := range req.r.PostForm {
		fields[key] = req.r.PostForm.Get(key)
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
