package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
)

type ComponentResponse struct {
	Error       error
	Code        int
	ContentType string
	Component   templ.Component
}

type ComponentHandler func(http.ResponseWriter, *http.Request) *ComponentResponse

func (ch ComponentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := ch(w, r)

	if resp.Error != nil {
		slog.ErrorContext(r.Context(), fmt.Sprintf(`Error occured: %s`, resp.Error.Error()),
			"request_id", RequestID(r.Context()))
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "text/html; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)

	if resp.Code != 0 {
		w.WriteHeader(resp.Code)
	}

	err := resp.Component.Render(r.Context(), w)

	if err != nil {
		slog.ErrorContext(r.Context(), fmt.Sprintf(`Error occured: %s`, err.Error()))
	}
}
