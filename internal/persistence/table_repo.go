package persistence

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/felixbrock/matchadmin/internal/app"
)

// TableRepo reads tables through the Supabase REST (PostgREST) endpoint.
type TableRepo struct {
	BaseHeaders []string
	BaseUrl     string
	Client      *http.Client
	Limiter     *rate.Limiter
}

// SupabaseHeaders returns the auth headers Supabase expects for apiKey.
func SupabaseHeaders(apiKey string) []string {
	return []string{
		fmt.Sprintf("apikey: %s", apiKey),
		fmt.Sprintf("Authorization: Bearer %s", apiKey),
		"Accept: application/json",
	}
}

func (r TableRepo) Select(ctx context.Context, q app.Query) ([]byte, error) {
	params := url.Values{}
	if len(q.Columns) > 0 {
		params.Set("select", strings.Join(q.Columns, ","))
	}
	if q.OrderBy != "" {
		direction := "asc"
		if q.Descending {
			direction = "desc"
		}
		params.Set("order", fmt.Sprintf("%s.%s", q.OrderBy, direction))
	}

	rq := requester{client: r.Client, limiter: r.Limiter}

	return rq.do(ctx, reqConfig{
		Method:    http.MethodGet,
		Url:       fmt.Sprintf("%s/%s", strings.TrimRight(r.BaseUrl, "/"), q.Table),
		UrlParams: params,
		Headers:   r.BaseHeaders},
		http.StatusOK)
}
