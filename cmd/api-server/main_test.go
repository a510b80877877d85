package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestReportFailureFlushesBufferedOutput(t *testing.T) {
	var out bytes.Buffer
	ws := &zapcore.BufferedWriteSyncer{WS: zapcore.AddSync(&out), Size: 64 * 1024, FlushInterval: time.Hour}
	defer ws.Stop() //nolint:errcheck
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), ws, zapcore.InfoLevel)

	reportFailure(zap.New(core), errors.New("listen tcp :5001: bind: address already in use"))

	assert.Contains(t, out.String(), "server stopped with error")
	assert.Contains(t, out.String(), "address already in use")
}
