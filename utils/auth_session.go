// File: katwate/utils/auth_session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// AdminSession is the server side record of a signed-in staff member.
type AdminSession struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	TokenHash string    `json:"tokenHash"`
	CreatedAt time.Time `json:"createdAt"`
}

// SaveAdminSession stores the session in Redis with a TTL. A new sign-in
// replaces the previous session of the same user.
func SaveAdminSession(ctx context.Context, client *redis.Client, session AdminSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal admin session: %w", err)
	}
	if err := client.Set(ctx, AdminSessionPrefix+session.UID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save admin session: %w", err)
	}
	return nil
}

// GetAdminSession retrieves the session of uid. It returns redis.Nil when the
// session has expired or was revoked.
func GetAdminSession(ctx context.Context, client *redis.Client, uid string) (*AdminSession, error) {
	data, err := client.Get(ctx, AdminSessionPrefix+uid).Result()
	if err != nil {
		return nil, err
	}
	var session AdminSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal admin session: %w", err)
	}
	return &session, nil
}

// DeleteAdminSession removes the session of uid from Redis.
func DeleteAdminSession(ctx context.Context, client *redis.Client, uid string) error {
	return client.Del(ctx, AdminSessionPrefix+uid).Err()
}
