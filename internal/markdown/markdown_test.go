package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	r := New()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain text", "hello world", "<p>hello world</p>"},
		{"emphasis", "hello **world**", "<p>hello <strong>world</strong></p>"},
		{"strikethrough", "~~gone~~", "<p><del>gone</del></p>"},
		{"inline code", "run `go vet`", "<p>run <code>go vet</code></p>"},
		{"html is escaped", "<b>bold</b>", "<p>&lt;b&gt;bold&lt;/b&gt;</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(r.Render(tt.text)))
		})
	}
}

func TestRenderStripsScript(t *testing.T) {
	r := New()

	got := string(r.Render(`<script>alert("xss")</script>`))
	assert.NotContains(t, got, "<script>")
}

func TestRenderFencedCode(t *testing.T) {
	r := New()

	got := string(r.Render("```\nfmt.Println()\n```"))
	assert.Contains(t, got, "<pre>")
	assert.Contains(t, got, "fmt.Println()")
}
