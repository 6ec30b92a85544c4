package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wilyamx/thinkittwice/internal/feed/render"
)

const base = "https://cdn.example.com"

func TestAbsoluteURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "relative path", path: "media/photo.jpg", want: "https://cdn.example.com/media/photo.jpg"},
		{name: "leading slash", path: "/media/photo.jpg", want: "https://cdn.example.com/media/photo.jpg"},
		{name: "already absolute", path: "https://other.example.com/x.jpg", want: "https://other.example.com/x.jpg"},
		{name: "plain http", path: "http://other.example.com/x.jpg", want: "http://other.example.com/x.jpg"},
		{name: "empty", path: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := render.AbsoluteURL(base, tt.path)
			assert.Equal(t, tt.want, got)

			// Prefixing must be idempotent: rendering an already rendered
			// value cannot stack the base twice.
			assert.Equal(t, got, render.AbsoluteURL(base, got))
		})
	}
}

func TestAbsoluteURLTrailingSlashBase(t *testing.T) {
	t.Parallel()

	got := render.AbsoluteURL("https://cdn.example.com/", "/media/photo.jpg")
	assert.Equal(t, "https://cdn.example.com/media/photo.jpg", got)
}

func TestExtractImageURLs(t *testing.T) {
	t.Parallel()

	body := `<p>intro</p>
<img class="hero" src="/uploads/a.png" alt="a">
<img src='uploads/b.jpg'/>
<img src="https://other.example.com/c.gif">`

	urls := render.ExtractImageURLs(base, body)
	assert.Equal(t, []string{
		"https://cdn.example.com/uploads/a.png",
		"https://cdn.example.com/uploads/b.jpg",
		"https://other.example.com/c.gif",
	}, urls)
}

func TestExtractImageURLsNoImages(t *testing.T) {
	t.Parallel()

	assert.Nil(t, render.ExtractImageURLs(base, "<p>text only</p>"))
}
