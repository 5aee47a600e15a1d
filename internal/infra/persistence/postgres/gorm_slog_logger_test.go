package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"vidtube/config"
	deliverycontext "vidtube/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newCapturedGormLogger(cfg *config.Config) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)

	return l.(*gormSlogLogger), &buf
}

func sqlResult(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_DropsBoundParameters(t *testing.T) {
	l, _ := newCapturedGormLogger(&config.Config{})

	sql, params := l.ParamsFilter(context.Background(), `UPDATE "users" SET "refresh_token_hash"=$1 WHERE id = $2`, "secret-hash", "id")

	assert.Contains(t, sql, "$1")
	assert.Nil(t, params)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("record not found is quiet", func(t *testing.T) {
		l, buf := newCapturedGormLogger(&config.Config{})

		l.Trace(context.Background(), time.Now(), sqlResult("SELECT 1"), gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("deadline is logged as timeout", func(t *testing.T) {
		l, buf := newCapturedGormLogger(&config.Config{})

		l.Trace(context.Background(), time.Now(), sqlResult("SELECT 1"), errors.WithStack(context.DeadlineExceeded))

		assert.Contains(t, buf.String(), "GORM query timed out")
		assert.Contains(t, buf.String(), `"level":"WARN"`)
	})

	t.Run("failure uses the request logger", func(t *testing.T) {
		l, _ := newCapturedGormLogger(&config.Config{})
		var reqBuf bytes.Buffer
		reqLogger := slog.New(slog.NewJSONHandler(&reqBuf, nil)).With(slog.String("request_id", "req-9"))
		ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

		l.Trace(ctx, time.Now(), sqlResult("INSERT INTO users"), errors.New("duplicate key"))

		assert.Contains(t, reqBuf.String(), "GORM query failed")
		assert.Contains(t, reqBuf.String(), `"request_id":"req-9"`)
	})

	t.Run("slow query", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Store.Timeout = 400 * time.Millisecond
		l, buf := newCapturedGormLogger(cfg)
		assert.Equal(t, 100*time.Millisecond, l.slowThreshold)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlResult("SELECT 1"), nil)

		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("successful queries only in debug", func(t *testing.T) {
		l, buf := newCapturedGormLogger(&config.Config{})
		l.Trace(context.Background(), time.Now(), sqlResult("SELECT 1"), nil)
		assert.Empty(t, buf.String())

		cfg := &config.Config{}
		cfg.Env.Debug = true
		l, buf = newCapturedGormLogger(cfg)
		l.Trace(context.Background(), time.Now(), sqlResult("SELECT 1"), nil)
		assert.Contains(t, buf.String(), `"msg":"GORM query"`)
	})
}
