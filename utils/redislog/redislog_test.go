package redislog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Acr0no/fcg-users-app/mocks"
	"github.com/Acr0no/fcg-users-app/utils/redislog"
)

func TestLogger_PushesTrimsAndExpires(t *testing.T) {
	logger, mock := mocks.NewAuditLoggerWithMock()

	// the entry is JSON with a runtime timestamp, so match by regex
	mock.Regexp().ExpectLPush("logs:dashboard",
		`\{"level":"info","msg":"csv imported","time":".+","meta":\{"file":"users\.csv"\}\}`).SetVal(1)
	mock.ExpectLTrim("logs:dashboard", 0, 99).SetVal("OK")
	mock.ExpectExpire("logs:dashboard", 24*time.Hour).SetVal(true)

	logger.Info("csv imported", map[string]string{"file": "users.csv"})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogger_LevelTagsEntries(t *testing.T) {
	logger, mock := mocks.NewAuditLoggerWithMock()

	mock.Regexp().ExpectLPush("logs:dashboard", `\{"level":"error",.+\}`).SetVal(1)
	mock.ExpectLTrim("logs:dashboard", 0, 99).SetVal("OK")
	mock.ExpectExpire("logs:dashboard", 24*time.Hour).SetVal(true)

	logger.Error("load page failed", nil)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogger_NilSafe(t *testing.T) {
	// no client configured: every call must be a silent no-op
	noop := redislog.New(nil, "logs:dashboard", 100, 0)
	noop.Info("ignored", nil)
	noop.Warn("ignored", nil)
	noop.Error("ignored", nil)

	var nilLogger *redislog.Logger
	nilLogger.Info("still fine", nil)
}
