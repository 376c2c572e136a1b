package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMustParseDate(t *testing.T) {
	parsed := MustParseDate(t, "2026-03-10")
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 10, parsed.Day())
}

func TestPtr(t *testing.T) {
	v := Ptr("hello")
	assert.Equal(t, "hello", *v)

	f := FloatPtr(750.0)
	assert.Equal(t, 750.0, *f)
}

func TestFutureDate(t *testing.T) {
	date := FutureDate(30)
	parsed, err := time.Parse("2006-01-02", date)
	assert.NoError(t, err)
	assert.True(t, parsed.After(time.Now()))
}
