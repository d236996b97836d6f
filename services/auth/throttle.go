package auth

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	debouncePrefix = "login:debounce:"
	failurePrefix  = "login:failures:"
)

// LoginThrottle limits sign-in attempts per email and client. Attempts closer
// together than the debounce interval are rejected outright, and an
// email/client pair is locked once it has MaxAttempts failures inside Window.
type LoginThrottle struct {
	client      *redis.Client
	MaxAttempts int
	Window      time.Duration
	Debounce    time.Duration
	Now         func() time.Time
}

func NewLoginThrottle(client *redis.Client, maxAttempts int, window time.Duration) *LoginThrottle {
	return &LoginThrottle{
		client:      client,
		MaxAttempts: maxAttempts,
		Window:      window,
		Debounce:    time.Second,
		Now:         time.Now,
	}
}

// Key identifies the email/client pair a throttle entry belongs to.
func Key(email, clientKey string) string {
	return strings.ToLower(strings.TrimSpace(email)) + "|" + clientKey
}

// Allow is called before every attempt.
func (t *LoginThrottle) Allow(ctx context.Context, key string) error {
	ok, err := t.client.SetNX(ctx, debouncePrefix+key, 1, t.Debounce).Result()
	if err != nil {
		return fmt.Errorf("login debounce: %w", err)
	}
	if !ok {
		return ErrLoginInProgress
	}

	fk := failurePrefix + key
	cutoff := t.Now().Add(-t.Window).UnixMilli()
	if err := t.client.ZRemRangeByScore(ctx, fk, "-inf", strconv.FormatInt(cutoff, 10)).Err(); err != nil {
		return fmt.Errorf("login throttle prune: %w", err)
	}
	n, err := t.client.ZCard(ctx, fk).Result()
	if err != nil {
		return fmt.Errorf("login throttle count: %w", err)
	}
	if n >= int64(t.MaxAttempts) {
		return ErrTooManyAttempts
	}
	return nil
}

// RecordFailure counts a failed attempt.
func (t *LoginThrottle) RecordFailure(ctx context.Context, key string) error {
	now := t.Now()
	fk := failurePrefix + key
	pipe := t.client.TxPipeline()
	pipe.ZAdd(ctx, fk, &redis.Z{Score: float64(now.UnixMilli()), Member: strconv.FormatInt(now.UnixNano(), 10)})
	pipe.Expire(ctx, fk, t.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record login failure: %w", err)
	}
	return nil
}

// Reset clears the failures after a successful sign-in.
func (t *LoginThrottle) Reset(ctx context.Context, key string) error {
	return t.client.Del(ctx, failurePrefix+key, debouncePrefix+key).Err()
}
