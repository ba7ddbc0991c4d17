package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool, slowThreshold time.Duration) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, debug, slowThreshold), &buf
}

func logRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		records = append(records, record)
	}

	return records
}

func sqlFn(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("errors are logged", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false, time.Second)
		l.Trace(ctx, time.Now(), sqlFn("SELECT 1", 0), errors.New("syntax error"))

		records := logRecords(t, buf)
		require.Len(t, records, 1)
		assert.Equal(t, "GORM query failed", records[0]["msg"])
		assert.Equal(t, "syntax error", records[0]["error"])
		assert.Equal(t, "SELECT 1", records[0]["sql"])
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false, time.Second)
		l.Trace(ctx, time.Now(), sqlFn("SELECT 1", 0), gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow queries are warned", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false, time.Millisecond)
		l.Trace(ctx, time.Now().Add(-time.Second), sqlFn("SELECT * FROM notification_events", 12), nil)

		records := logRecords(t, buf)
		require.Len(t, records, 1)
		assert.Equal(t, "GORM slow query", records[0]["msg"])
		assert.Equal(t, "WARN", records[0]["level"])
	})

	t.Run("fast queries only in debug", func(t *testing.T) {
		quiet, quietBuf := newBufferedGormLogger(false, time.Second)
		quiet.Trace(ctx, time.Now(), sqlFn("SELECT 1", 1), nil)
		assert.Empty(t, quietBuf.String())

		verbose, verboseBuf := newBufferedGormLogger(true, time.Second)
		verbose.Trace(ctx, time.Now(), sqlFn("SELECT 1", 1), nil)
		records := logRecords(t, verboseBuf)
		require.Len(t, records, 1)
		assert.Equal(t, "GORM query", records[0]["msg"])
	})

	t.Run("silent mode", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true, time.Second)
		l.LogMode(logger.Silent).Trace(ctx, time.Now(), sqlFn("SELECT 1", 0), errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}

func TestGormSlogLogger_DefaultSlowThreshold(t *testing.T) {
	l := newGormSlogLogger(slog.Default(), false, 0).(*gormSlogLogger)

	assert.Equal(t, defaultGormSlowThreshold, l.slowThreshold)
}
