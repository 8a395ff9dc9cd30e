package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignature_Value(t *testing.T) {
	v, err := Signature{0.1, 0.2, -3}.Value()
	require.NoError(t, err)
	assert.Equal(t, "[0.1,0.2,-3]", v)

	v, err = Signature(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestSignature_Scan(t *testing.T) {
	var s Signature
	require.NoError(t, s.Scan("[0.5,1.25]"))
	assert.Equal(t, Signature{0.5, 1.25}, s)

	require.NoError(t, s.Scan([]byte("[]")))
	assert.Empty(t, s)

	require.NoError(t, s.Scan(nil))
	assert.Nil(t, s)

	assert.Error(t, s.Scan(42))
	assert.Error(t, s.Scan("not json"))
}
