package calci

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCType(t *testing.T) {
	cases := []struct {
		tag  TypeTag
		want string
	}{
		{TagNat, "unsigned int"},
		{TagInt, "int"},
		{TagReal, "double"},
		{TagStr, "char[100]"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, cType(tc.tag))
	}
}

func TestScanFormat(t *testing.T) {
	cases := []struct {
		tag  TypeTag
		want string
	}{
		{TagNat, "%d"},
		{TagInt, "%d"},
		{TagReal, "%lf"},
		{TagStr, `%[^\n]%*c`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, scanFormat(tc.tag))
	}
}

// printFormatForToken only recognizes the three literal type-name
// spellings; everything else — including a real number or identifier
// text — falls through to "%s". It is not a type check, just a string
// comparison against the token text seen at dispatch time, and is kept
// that way on purpose.
func TestPrintFormatForTokenQuirk(t *testing.T) {
	assert.Equal(t, "%d", printFormatForToken("nat"))
	assert.Equal(t, "%d", printFormatForToken("int"))
	assert.Equal(t, "%lf", printFormatForToken("real"))

	// A numeric literal's own text is never "int"/"real"/"nat", so it
	// falls into the default branch despite being a real number.
	assert.Equal(t, "%s", printFormatForToken("3.14"))
	assert.Equal(t, "%s", printFormatForToken("42"))
	assert.Equal(t, "%s", printFormatForToken("total"))
}
