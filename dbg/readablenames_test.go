package dbg

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	defer Forget()

	a, b := new(int), new(int)
	nameA := Name(a)
	assert.NotEmpty(t, nameA)
	assert.True(t, unicode.IsUpper([]rune(nameA)[0]))
	assert.Equal(t, nameA, Name(a), "names are stable")
	assert.NotEqual(t, nameA, Name(b))

	var nilPtr *int
	assert.Equal(t, "Ø", Name(nilPtr))
	assert.Equal(t, "Ø", Name(nil))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Happy", capitalize("happy"))
	assert.Equal(t, "", capitalize(""))
}
