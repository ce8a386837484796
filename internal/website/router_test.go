package website

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraced(t *testing.T) {
	for path, want := range map[string]bool{
		"/":                   true,
		"/blog/chat-commands": true,
		"/health":             false,
		"/static/styles.css":  false,
	} {
		assert.Equal(t, want, traced(httptest.NewRequest("GET", path, nil)), path)
	}
}
