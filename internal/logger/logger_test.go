package logger

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromContext_AddsRequestAndUserID(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	defer Init("test")

	ctx := WithUserID(WithRequestID(context.Background(), "req-42"), "user-7")
	CtxInfo(ctx, "job created", "job_id", "1")

	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-42"`)
	assert.Contains(t, out, `"user_id":"user-7"`)
	assert.Contains(t, out, `"job_id":"1"`)
}

func TestInitWithWriter_CLILevelHidesInfo(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("cli", &buf)
	defer Init("test")

	Info("hidden")
	Warn("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

func TestServiceLog(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("development", &buf)
	defer Init("test")

	ServiceLog("jobs", "GetJobs", 300*time.Millisecond, nil)
	assert.Contains(t, buf.String(), "operation=GetJobs")
	assert.Contains(t, buf.String(), "latency_ms=300")

	buf.Reset()
	ServiceLog("auth", "Login", 500*time.Millisecond, context.Canceled)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "context canceled")
}
