package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Welcome(t *testing.T) {
	data := NewWelcomeData("Diary", "amy", "amy@x.com",
		WithClientURL("http://localhost:5173/"),
		WithTime(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)),
	)

	subject, text, html, err := Render(Welcome, data)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Diary, amy!\n", subject)
	assert.Contains(t, text, "amy@x.com")
	assert.Contains(t, text, "Start writing: http://localhost:5173")
	assert.Contains(t, text, "01 March 2024, 09:30")
	assert.Contains(t, html, `<a href="http://localhost:5173">`)
}

func TestRender_EscapesHTML(t *testing.T) {
	data := NewWelcomeData("", "<b>x</b>", "x@x.com")
	subject, _, html, err := Render(Welcome, data)
	require.NoError(t, err)
	assert.Contains(t, subject, "Welcome to Diary")
	assert.Contains(t, html, "&lt;b&gt;x&lt;/b&gt;")
	assert.NotContains(t, html, "Open your diary")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render("missing", nil)
	assert.Error(t, err)
}
