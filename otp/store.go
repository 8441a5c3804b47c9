// Package otp holds the transient one-time codes issued at registration
// and login, keyed by role + user id. Codes are single-use and expire
// after a TTL; a resend overwrites any previous code for the same key.
package otp

import (
	"context"
	"fmt"
	"time"

	"github.com/betterspace/better-space-api/config"
)

// Entry is one stored code.
type Entry struct {
	Code     string `json:"code"`
	Email    string `json:"email"`
	UserID   uint   `json:"user_id"`
	UserType string `json:"user_type"`
}

// Store abstracts where codes live. Both implementations enforce the TTL.
// Consume checks and deletes in one step, so a code verifies at most once
// even under concurrent attempts; a wrong code leaves the entry in place.
type Store interface {
	Set(ctx context.Context, userType string, userID uint, entry Entry) error
	Get(ctx context.Context, userType string, userID uint) (Entry, bool, error)
	Consume(ctx context.Context, userType string, userID uint, code string) (bool, error)
	Delete(ctx context.Context, userType string, userID uint) error
}

// Codes is the process-wide store, selected by Init.
var Codes Store

// Init picks the redis store when REDIS_ADDR is configured and the
// mutex-guarded in-memory store otherwise.
func Init() error {
	ttl := time.Duration(config.C.OTPTTLMin) * time.Minute
	if config.C.RedisAddr != "" {
		store, err := NewRedisStore(config.C.RedisAddr, ttl)
		if err != nil {
			return err
		}
		Codes = store
		return nil
	}
	Codes = NewMemoryStore(ttl)
	return nil
}

func key(userType string, userID uint) string {
	return fmt.Sprintf("otp:%s:%d", userType, userID)
}
