package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("Asia/Kolkata"))
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))
}

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, "Asia/Kolkata", Location("").String())
	assert.Equal(t, "Asia/Kolkata", Location("Mars/Olympus").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}
