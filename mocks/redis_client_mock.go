package mocks

import (
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"

	"github.com/Acr0no/fcg-users-app/utils/redislog"
)

// NewRedisMock returns a real *redis.Client backed by a redismock controller,
// so tests can ExpectLPush/LTrim/Expire and assert expectations.
func NewRedisMock() (*redis.Client, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return db, mock
}

// NewAuditLoggerWithMock builds a real redislog.Logger over a mocked client,
// for checking what Info/Warn/Error actually push to Redis.
func NewAuditLoggerWithMock() (*redislog.Logger, redismock.ClientMock) {
	rc, mock := redismock.NewClientMock()
	return redislog.New(rc, "logs:dashboard", 100, 24*time.Hour), mock
}
