// Audit trail for dashboard actions, stored in a capped Redis LIST.

package redislog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Entry is one structured audit record saved into Redis as JSON.
type Entry struct {
	Level string            `json:"level"`
	Msg   string            `json:"msg"`
	Time  string            `json:"time"`
	Meta  map[string]string `json:"meta,omitempty"`
}

// Logger pushes entries to a Redis LIST (e.g. "logs:dashboard") and trims it
// to the last max entries. All methods are nil-safe: a Logger built over a
// nil client is a no-op, which is how tests and redis-less deployments run.
type Logger struct {
	rdb       *redis.Client
	key       string
	max       int64
	retention time.Duration // optional expire on the list key
}

// New creates the audit logger. retention <= 0 disables the key expire.
func New(rdb *redis.Client, key string, max int64, retention time.Duration) *Logger {
	return &Logger{rdb: rdb, key: key, max: max, retention: retention}
}

// push marshals the entry and runs LPUSH + LTRIM (+ optional EXPIRE).
// Redis failures are swallowed: the audit trail must never break a request.
func (l *Logger) push(level, msg string, meta map[string]string) {
	if l == nil || l.rdb == nil {
		return
	}
	en := Entry{
		Level: level,
		Msg:   msg,
		Time:  time.Now().UTC().Format(time.RFC3339),
		Meta:  meta,
	}
	b, _ := json.Marshal(en)
	ctx := context.Background()
	_ = l.rdb.LPush(ctx, l.key, string(b)).Err()
	_ = l.rdb.LTrim(ctx, l.key, 0, l.max-1).Err()
	if l.retention > 0 {
		_ = l.rdb.Expire(ctx, l.key, l.retention).Err()
	}
}

func (l *Logger) Info(msg string, meta map[string]string)  { l.push("info", msg, meta) }
func (l *Logger) Warn(msg string, meta map[string]string)  { l.push("warn", msg, meta) }
func (l *Logger) Error(msg string, meta map[string]string) { l.push("error", msg, meta) }
