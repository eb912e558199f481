package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/felixbrock/matchadmin/internal/domain"
)

type ComponentBuilder struct {
	Login     func() templ.Component
	Dashboard func(interests []domain.Interest) templ.Component
	Error     func(code int, title string, msg string) templ.Component
}

type App struct {
	Interests        InterestReader
	ComponentBuilder ComponentBuilder
	Config           Config
}

func (a App) errorResp(e errCtx, err error) *ComponentResponse {
	return &ComponentResponse{
		Component: a.ComponentBuilder.Error(e.Code, e.Title, e.Msg),
		Code:      e.Code,
		Error:     err,
	}
}

func (a App) login(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	return &ComponentResponse{Component: a.ComponentBuilder.Login(), Code: http.StatusOK}
}

func (a App) dashboard(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	interests, err := a.Interests.GetAll(r.Context())

	if err != nil {
		return a.errorResp(get500(), fmt.Errorf("reading interests: %w", err))
	}

	return &ComponentResponse{Component: a.ComponentBuilder.Dashboard(interests), Code: http.StatusOK}
}

func (a App) notFound(w http.ResponseWriter, r *http.Request) *ComponentResponse {
	return a.errorResp(get404(), nil)
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Handler returns the routed app with request logging applied.
func (a App) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", entry)
	mux.Handle("GET "+LoginPath, ComponentHandler(a.login))
	mux.Handle("GET "+DashboardPath, ComponentHandler(a.dashboard))
	mux.HandleFunc("GET /healthz", healthz)
	mux.Handle("/", ComponentHandler(a.notFound))

	return logRequests(mux)
}

// Start serves the app until ctx is cancelled, then shuts down gracefully.
func (a App) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + a.Config.Port,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info(fmt.Sprintf("App running on %s...", a.Config.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	slog.Info("App stopped")
	return nil
}
