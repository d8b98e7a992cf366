package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.33, Round2(1.0/3.0*100))
	assert.Equal(t, 100.0, Round2(100))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 66.67, Round2(2.0/3.0*100))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("0", 1))
}
