package apiclient

import (
	"bytes"
	"io"
	"mime/multipart"
)

type formFile struct {
	field    string
	filename string
	r        io.Reader
}

// FormData is a multipart body. It is sent as-is, never JSON-encoded.
type FormData struct {
	fields [][2]string
	files  []formFile
}

func NewFormData() *FormData { return &FormData{} }

func (f *FormData) AddField(name, value string) *FormData {
	f.fields = append(f.fields, [2]string{name, value})
	return f
}

func (f *FormData) AddFile(field, filename string, r io.Reader) *FormData {
	f.files = append(f.files, formFile{field: field, filename: filename, r: r})
	return f
}

func (f *FormData) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, kv := range f.fields {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", err
		}
	}
	for _, ff := range f.files {
		part, err := w.CreateFormFile(ff.field, ff.filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, ff.r); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
