package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))

	a := GetTraceID(SetTraceID(context.Background()))
	b := GetTraceID(SetTraceID(context.Background()))
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestClerkUserID(t *testing.T) {
	_, ok := GetClerkUserID(context.Background())
	assert.False(t, ok)

	id, ok := GetClerkUserID(SetClerkUserID(context.Background(), "user_2abc"))
	assert.True(t, ok)
	assert.Equal(t, "user_2abc", id)
}
