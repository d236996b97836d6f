package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestCheckHealth(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ok := CheckHealth(context.Background(), []*redis.Client{client}, func(context.Context) error { return nil })
	assert.True(t, ok.Healthy())
	assert.Equal(t, ok, GetHealthStatus())

	down := CheckHealth(context.Background(), []*redis.Client{client}, func(context.Context) error { return errors.New("offline") })
	assert.False(t, down.Store)
	assert.False(t, down.Healthy())

	mr.Close()
	lost := CheckHealth(context.Background(), []*redis.Client{client}, nil)
	assert.True(t, lost.Store)
	assert.Equal(t, []bool{false}, lost.Redis)
}
