// Package redisotp stores pending email verification codes in Redis so they
// expire on their own and survive process restarts.
package redisotp

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"staffing/internal/pkg/errs"
)

// otpTTL bounds how long a code stays valid after registration.
const otpTTL = 10 * time.Minute

// RedisOTPStore implements ports.OTPStore on a shared Redis client.
type RedisOTPStore struct {
	client *redis.Client
}

func NewRedisOTPStore(client *redis.Client) *RedisOTPStore {
	return &RedisOTPStore{client: client}
}

// Save stores the code under the account email, replacing any earlier code.
func (s *RedisOTPStore) Save(ctx context.Context, email, code string) error {
	return s.client.Set(ctx, key(email), code, otpTTL).Err()
}

// Get returns the pending code, or errs.ErrObjectNotFound when no code is
// stored or it has expired.
func (s *RedisOTPStore) Get(ctx context.Context, email string) (string, error) {
	code, err := s.client.Get(ctx, key(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errs.NewObjectNotFoundError("email", email)
		}
		return "", err
	}
	return code, nil
}

// Delete consumes the code after a successful verification.
func (s *RedisOTPStore) Delete(ctx context.Context, email string) error {
	return s.client.Del(ctx, key(email)).Err()
}

func key(email string) string {
	return "otp:" + email
}
