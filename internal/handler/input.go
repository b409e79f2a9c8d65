package handler

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"net/url"
)

var (
	errBodyTooLarge = errors.New("request body too large")
	errInvalidJSON  = errors.New("invalid JSON body")
	errInvalidForm  = errors.New("invalid form body")
)

// fields is the union of form values and top-level JSON body keys.
type fields struct {
	form url.Values
	json map[string]any
}

// readFields accepts application/json, urlencoded and multipart bodies.
func readFields(r *http.Request) (fields, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				return fields{}, errBodyTooLarge
			}
			return fields{}, errInvalidJSON
		}
		return fields{json: body}, nil
	}

	var err error
	if ct == "multipart/form-data" {
		err = r.ParseMultipartForm(1 << 20)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fields{}, errBodyTooLarge
		}
		return fields{}, errInvalidForm
	}
	return fields{form: r.Form}, nil
}

// get returns the string value of key, or "" when absent.
func (f fields) get(key string) string {
	if f.json != nil {
		s, _ := f.json[key].(string)
		return s
	}
	if vs := f.form[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// list returns the repeated form values of key+"[]" (or key), or the string
// elements of a JSON array under key.
func (f fields) list(key string) []string {
	if f.json != nil {
		raw, _ := f.json[key].([]any)
		out := make([]string, 0, len(raw))
		for _, v := range raw {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	if vs, ok := f.form[key+"[]"]; ok {
		return vs
	}
	return f.form[key]
}

func badBody(w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}
