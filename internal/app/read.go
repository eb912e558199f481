package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// ReadBody drains and closes a response or request body.
func ReadBody(body io.ReadCloser) ([]byte, error) {
	defer func() {
		if err := body.Close(); err != nil {
			slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		}
	}()

	return io.ReadAll(body)
}

// DecodeRows unmarshals a JSON array of table rows. A JSON null or empty
// input decodes to an empty slice. Fields not present on T are ignored.
func DecodeRows[T any](content []byte) ([]T, error) {
	rows := []T{}
	if len(content) == 0 {
		return rows, nil
	}

	var decoded *[]T
	err := json.Unmarshal(content, &decoded)

	if err != nil {
		return nil, err
	}

	if decoded == nil || *decoded == nil {
		return rows, nil
	}

	return *decoded, nil
}
