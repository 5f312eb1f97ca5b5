package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	assert.Equal(t, "Christian", Strip("<b>Christian</b>"))
	assert.Equal(t, "Rua das Flores, 10", Strip("  Rua das Flores, 10  "))
	// Script contents are dropped entirely, not just the tags
	assert.Equal(t, "", Strip("<script>alert('x')</script>"))
	assert.Equal(t, "Mouse & Teclado", Strip("Mouse & Teclado"))
	assert.Equal(t, "", Strip("<img src=x onerror=alert(1)>"))
	assert.Equal(t, "12345678910", Strip("12345678910"))
}
