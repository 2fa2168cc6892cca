package partials

import (
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so markup can be emitted
// without checking every call
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) rawf(format string, args ...interface{}) {
	h.raw(fmt.Sprintf(format, args...))
}

// text writes escaped character data
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// esc escapes a value for an attribute or text position
func esc(s string) string {
	return templ.EscapeString(s)
}

// classes joins the non-empty class names
func classes(names ...string) string {
	out := names[:0:0]
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}

// nonceAttr renders the CSP nonce attribute, or nothing outside a request
func nonceAttr(nonce string) string {
	if nonce == "" {
		return ""
	}
	return fmt.Sprintf(` nonce="%s"`, esc(nonce))
}
