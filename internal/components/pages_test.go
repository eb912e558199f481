package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixbrock/matchadmin/internal/domain"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestLayoutHead(t *testing.T) {
	html := render(t, Login())

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>Match Admin</title>")
	assert.Contains(t, html, `<meta name="description" content="Administration panel for the dating app">`)
	assert.True(t, strings.HasSuffix(html, "</body></html>"))
}

func TestDashboardListsInterestsInOrder(t *testing.T) {
	html := render(t, Dashboard([]domain.Interest{{Id: "1", Name: "Art"}, {Id: "2", Name: "Yoga"}}))

	assert.Contains(t, html, "Interests (2)")
	art := strings.Index(html, `<li data-id="1">Art</li>`)
	yoga := strings.Index(html, `<li data-id="2">Yoga</li>`)
	require.NotEqual(t, -1, art)
	require.NotEqual(t, -1, yoga)
	assert.Less(t, art, yoga)
}

func TestDashboardEmpty(t *testing.T) {
	html := render(t, Dashboard(nil))

	assert.Contains(t, html, "Interests (0)")
	assert.Contains(t, html, "No interests yet.")
	assert.NotContains(t, html, "<ul>")
}

func TestDashboardEscapesNames(t *testing.T) {
	html := render(t, Dashboard([]domain.Interest{{Id: `"x"`, Name: "<script>alert(1)</script>"}}))

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, `data-id="&#34;x&#34;"`)
}

func TestError(t *testing.T) {
	html := render(t, Error(500, "Internal server error", "Sorry."))

	assert.Contains(t, html, `<p class="code">500</p>`)
	assert.Contains(t, html, "<h1>Internal server error</h1>")
	assert.Contains(t, html, "<p>Sorry.</p>")
}
