package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"asha@example.com",
		"a.b+c@sub.example.co.in",
		"  padded@example.com  ",
	}
	for _, s := range valid {
		assert.True(t, ValidEmail(s), s)
	}

	invalid := []string{
		"",
		"plain",
		"no-at.example.com",
		"two@@example.com",
		"spaces in@example.com",
		"nodot@example",
	}
	for _, s := range invalid {
		assert.False(t, ValidEmail(s), s)
	}
}
