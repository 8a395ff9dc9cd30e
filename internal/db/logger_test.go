package db

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"handpay/internal/config"
	"handpay/internal/model"
)

func captureDefault(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestQueryLogger_SkipsDuplicateKey(t *testing.T) {
	buf := captureDefault(t)

	gormDB, err := Open(config.Database{
		Driver:       DriverSQLite,
		DSN:          filepath.Join(t.TempDir(), "handpay_log.db"),
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gormDB) })
	require.NoError(t, InitSchema(gormDB))

	require.NoError(t, gormDB.Create(&model.User{Name: "alice"}).Error)
	buf.Reset()

	err = gormDB.Create(&model.User{Name: "alice"}).Error
	require.Error(t, err)
	assert.NotContains(t, buf.String(), "duplicated key")
	assert.NotContains(t, buf.String(), "level=ERROR")
}

func TestQueryLogger_KeepsOtherErrors(t *testing.T) {
	var buf bytes.Buffer
	l := NewQueryLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 0
	}, errors.New("disk I/O error"))

	assert.Contains(t, buf.String(), "disk I/O error")
}
