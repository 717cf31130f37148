package testutil

import (
	"bytes"
	"mime/multipart"
)

// MultipartFile encodes a single file field and returns the body with its
// Content-Type header value.
func MultipartFile(field, filename string, content []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		panic(err)
	}
	if _, err := part.Write(content); err != nil {
		panic(err)
	}
	if err := writer.Close(); err != nil {
		panic(err)
	}

	return body, writer.FormDataContentType()
}
