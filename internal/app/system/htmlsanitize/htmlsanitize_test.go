package htmlsanitize

import (
	"strings"
	"testing"
)

func TestSanitizeRemovesScript(t *testing.T) {
	in := `<p>hello</p><script>alert("x")</script>`
	out := Sanitize(in)
	if strings.Contains(out, "script") {
		t.Errorf("script survived: %q", out)
	}
	if !strings.Contains(out, "<p>hello</p>") {
		t.Errorf("benign markup stripped: %q", out)
	}
}

func TestSanitizeRemovesEventHandlers(t *testing.T) {
	out := Sanitize(`<b onclick="steal()">bold</b>`)
	if strings.Contains(out, "onclick") {
		t.Errorf("event handler survived: %q", out)
	}
	if !strings.Contains(out, "<b>bold</b>") {
		t.Errorf("bold tag stripped: %q", out)
	}
}

func TestSanitizeKeepsSafeLinks(t *testing.T) {
	out := Sanitize(`<a href="https://example.com">site</a>`)
	if !strings.Contains(out, `href="https://example.com"`) {
		t.Errorf("safe link stripped: %q", out)
	}

	out = Sanitize(`<a href="javascript:alert(1)">bad</a>`)
	if strings.Contains(out, "javascript:") {
		t.Errorf("javascript href survived: %q", out)
	}
}

func TestSanitizeEmpty(t *testing.T) {
	if got := Sanitize(""); got != "" {
		t.Errorf("Sanitize(\"\"): got %q", got)
	}
}

func TestSanitizePlainText(t *testing.T) {
	if got := Sanitize("just words"); got != "just words" {
		t.Errorf("plain text changed: %q", got)
	}
}
