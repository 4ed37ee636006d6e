package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "  just   text ", want: "just text"},
		{name: "empty", in: "", want: ""},
		{name: "inline tags", in: "<p>Hello <b>world</b></p>", want: "Hello world"},
		{name: "paragraphs", in: "<p>first</p><p>second</p>", want: "first\nsecond"},
		{name: "line break", in: "a<br>b<br/>c", want: "a\nb\nc"},
		{name: "entities", in: "<p>Tom &amp; Jerry&#39;s &quot;show&quot;</p>", want: `Tom & Jerry's "show"`},
		{name: "links keep text", in: `<p>see <a href="https://ello.co">ello</a>.</p>`, want: "see ello."},
		{name: "script dropped", in: "<p>ok</p><script>alert(1)</script>", want: "ok"},
		{name: "list", in: "<ul><li>one</li><li>two</li></ul>", want: "one\ntwo"},
		{name: "bare entity", in: "R&amp;D", want: "R&D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTMLToText(tt.in))
		})
	}
}
