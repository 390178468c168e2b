//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"talent-notify/internal/handler/api"
	"talent-notify/internal/infra"
	"talent-notify/internal/usecase/queries"
	"talent-notify/tests/common/builder"
	commandsmock "talent-notify/tests/mock/commands"
	queriesmock "talent-notify/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupNotificationRouter(t *testing.T) (*gin.Engine, *queriesmock.MockNotificationQueries, *commandsmock.MockNotificationCommands) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	q := queriesmock.NewMockNotificationQueries(ctrl)
	cmds := commandsmock.NewMockNotificationCommands(ctrl)
	h := api.NewNotificationHandler(q, cmds)

	engine := gin.New()
	engine.GET("/api/notifications", h.ListNotifications)
	engine.GET("/api/notifications/:id", h.GetNotification)
	engine.POST("/api/notifications/:id/read", h.MarkRead)
	engine.POST("/api/notifications/:id/dismiss", h.MarkDismissed)

	return engine, q, cmds
}

func TestNotificationHandler_ListNotifications(t *testing.T) {
	t.Run("returns rows newest first with filters applied", func(t *testing.T) {
		engine, q, _ := setupNotificationRouter(t)

		views := []*queries.NotificationLogView{
			builder.NewNotificationViewBuilder().WithStatus("failed").Build(),
			builder.NewNotificationViewBuilder().Build(),
		}
		q.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, filter queries.NotificationLogFilter) ([]*queries.NotificationLogView, error) {
				require.NotNil(t, filter.Status)
				assert.Equal(t, "failed", string(*filter.Status))
				assert.Equal(t, int32(10), filter.Limit)
				return views[:1], nil
			})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/notifications?status=failed&limit=10", nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "failed", body[0]["status"])
	})

	t.Run("invalid status filter is a 400", func(t *testing.T) {
		engine, _, _ := setupNotificationRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/notifications?status=bogus", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNotificationHandler_GetNotification(t *testing.T) {
	t.Run("returns the row", func(t *testing.T) {
		engine, q, _ := setupNotificationRouter(t)

		id := uuid.New()
		q.EXPECT().
			GetByID(gomock.Any(), id).
			Return(builder.NewNotificationViewBuilder().WithID(id).Build(), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/notifications/"+id.String(), nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, id.String(), body["id"])
	})

	t.Run("missing row is a 404", func(t *testing.T) {
		engine, q, _ := setupNotificationRouter(t)

		id := uuid.New()
		q.EXPECT().
			GetByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "notification log not found", nil))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/notifications/"+id.String(), nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		engine, _, _ := setupNotificationRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/notifications/not-a-uuid", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	t.Run("marks and returns 204", func(t *testing.T) {
		engine, _, cmds := setupNotificationRouter(t)

		id := uuid.New()
		cmds.EXPECT().MarkRead(gomock.Any(), id).Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/notifications/"+id.String()+"/read", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("missing row is a 404", func(t *testing.T) {
		engine, _, cmds := setupNotificationRouter(t)

		id := uuid.New()
		cmds.EXPECT().
			MarkRead(gomock.Any(), id).
			Return(infra.WrapRepoErr(infra.KindNotFound, "notification log not found", nil))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/notifications/"+id.String()+"/read", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestNotificationHandler_MarkDismissed(t *testing.T) {
	engine, _, cmds := setupNotificationRouter(t)

	id := uuid.New()
	cmds.EXPECT().MarkDismissed(gomock.Any(), id).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/"+id.String()+"/dismiss", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
