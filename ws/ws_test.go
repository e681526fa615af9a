package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tekfix_jobboard/internal/models"
	"tekfix_jobboard/internal/services/dto"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobsFeed_BroadcastsEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := NewWebSocketManager()
	go manager.Run(ctx)

	r := gin.New()
	NewWebSocketHandler(manager).RegisterRoutes(r.Group(""))
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/jobs"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return manager.GetClientCount() == 1 }, time.Second, 10*time.Millisecond)

	job := &models.Job{BaseModel: models.BaseModel{ID: "42"}, Title: "Go Engineer"}
	manager.PublishJobEvent(dto.JobEvent{Type: dto.JobEventCreated, JobID: "42", Job: job})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got dto.JobEvent
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, dto.JobEventCreated, got.Type)
	assert.Equal(t, "Go Engineer", got.Job.Title)

	conn.Close()
	assert.Eventually(t, func() bool { return manager.GetClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestPublishJobEvent_NilAndStopped(t *testing.T) {
	var nilManager *WebSocketManager
	assert.NotPanics(t, func() { nilManager.PublishJobEvent(dto.JobEvent{Type: dto.JobEventDeleted}) })

	manager := NewWebSocketManager()
	for i := 0; i < 100; i++ {
		manager.PublishJobEvent(dto.JobEvent{Type: dto.JobEventDeleted})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	manager.Run(ctx)
	assert.False(t, manager.Register(&Client{Send: make(chan dto.JobEvent)}))
}
