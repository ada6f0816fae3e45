package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/Codenidhi/-hustlehub-jobportal/api"
	"github.com/Codenidhi/-hustlehub-jobportal/internal/notify"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/ids"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/models"
	"github.com/Codenidhi/-hustlehub-jobportal/pkg/repository/mock"
)

func newNotificationsHandler(m *mock.Mocks) *api.NotificationsHandler {
	engine := notify.NewEngine(m.Users, m.Jobs, m.Apps, m.Notifs, &ids.Sequence{Prefix: "n"}, nil, nil)
	return api.NewNotificationsHandler(engine)
}

func seedNotifications(m *mock.Mocks) {
	m.Notifs.Stored = []models.Notification{
		{ID: "n-1", UserID: "u-1", Read: true},
		{ID: "n-2", UserID: "u-1"},
		{ID: "n-3", UserID: "u-2"},
	}
}

func TestNotificationsHandlers(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		vars       map[string]string
		invoke     func(h *api.NotificationsHandler, w http.ResponseWriter, r *http.Request)
		wantStatus int
		checkBody  func(t *testing.T, m *mock.Mocks, body []byte)
	}{
		{
			name:   "ListForUser",
			method: http.MethodGet,
			path:   "/notifications/u-1",
			vars:   map[string]string{"userId": "u-1"},
			invoke: func(h *api.NotificationsHandler, w http.ResponseWriter, r *http.Request) {
				h.ListForUser(w, r)
			},
			wantStatus: http.StatusOK,
			checkBody: func(t *testing.T, m *mock.Mocks, b []byte) {
				var ns []models.Notification
				if err := json.Unmarshal(b, &ns); err != nil {
					t.Fatalf("unmarshal: %v", err)
				}
				if len(ns) != 2 || ns[0].ID != "n-1" || ns[1].ID != "n-2" {
					t.Fatalf("unexpected notifications: %+v", ns)
				}
			},
		},
		{
			name:   "ListForUser_EmptyIsArray",
			method: http.MethodGet,
			path:   "/notifications/nobody",
			vars:   map[string]string{"userId": "nobody"},
			invoke: func(h *api.NotificationsHandler, w http.ResponseWriter, r *http.Request) {
				h.ListForUser(w, r)
			},
			wantStatus: http.StatusOK,
			checkBody: func(t *testing.T, m *mock.Mocks, b []byte) {
				if string(bytes.TrimSpace(b)) != "[]" {
					t.Fatalf("expected empty array, got %s", string(b))
				}
			},
		},
		{
			name:   "UnreadCount",
			method: http.MethodGet,
			path:   "/notifications/u-1/unread-count",
			vars:   map[string]string{"userId": "u-1"},
			invoke: func(h *api.NotificationsHandler, w http.ResponseWriter, r *http.Request) {
				h.UnreadCount(w, r)
			},
			wantStatus: http.StatusOK,
			checkBody: func(t *testing.T, m *mock.Mocks, b []byte) {
				var resp struct {
					Count int `json:"count"`
				}
				if err := json.Unmarshal(b, &resp); err != nil {
					t.Fatalf("unmarshal: %v", err)
				}
				if resp.Count != 1 {
					t.Fatalf("count = %d", resp.Count)
				}
			},
		},
		{
			name:   "MarkRead_Success",
			method: http.MethodPut,
			path:   "/notifications/n-2/read",
			vars:   map[string]string{"notificationId": "n-2"},
			invoke: func(h *api.NotificationsHandler, w http.ResponseWriter, r *http.Request) {
				h.MarkRead(w, r)
			},
			wantStatus: http.StatusOK,
			checkBody: func(t *testing.T, m *mock.Mocks, b []byte) {
				if !m.Notifs.Stored[1].Read {
					t.Fatalf("notification left unread")
				}
			},
		},
		{
			name:   "MarkRead_NotFound",
			method: http.MethodPut,
			path:   "/notifications/ghost/read",
			vars:   map[string]string{"notificationId": "ghost"},
			invoke: func(h *api.NotificationsHandler, w http.ResponseWriter, r *http.Request) {
				h.MarkRead(w, r)
			},
			wantStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, m *mock.Mocks, b []byte) {
				if !bytes.Contains(b, []byte("Notification not found")) {
					t.Fatalf("unexpected body: %s", string(b))
				}
			},
		},
		{
			name:   "MarkAllRead",
			method: http.MethodPut,
			path:   "/notifications/u-1/read-all",
			vars:   map[string]string{"userId": "u-1"},
			invoke: func(h *api.NotificationsHandler, w http.ResponseWriter, r *http.Request) {
				h.MarkAllRead(w, r)
			},
			wantStatus: http.StatusOK,
			checkBody: func(t *testing.T, m *mock.Mocks, b []byte) {
				if !m.Notifs.Stored[0].Read || !m.Notifs.Stored[1].Read {
					t.Fatalf("notifications left unread: %+v", m.Notifs.Stored)
				}
				if m.Notifs.Stored[2].Read {
					t.Fatalf("mark-all leaked into other user")
				}
			},
		},
		{
			name:   "Clear",
			method: http.MethodDelete,
			path:   "/notifications/u-1",
			vars:   map[string]string{"userId": "u-1"},
			invoke: func(h *api.NotificationsHandler, w http.ResponseWriter, r *http.Request) {
				h.Clear(w, r)
			},
			wantStatus: http.StatusOK,
			checkBody: func(t *testing.T, m *mock.Mocks, b []byte) {
				if len(m.Notifs.Stored) != 1 || m.Notifs.Stored[0].UserID != "u-2" {
					t.Fatalf("clear scoped wrong: %+v", m.Notifs.Stored)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := mock.NewMocks()
			seedNotifications(mocks)
			handler := newNotificationsHandler(mocks)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = mux.SetURLVars(req, tt.vars)
			w := httptest.NewRecorder()

			tt.invoke(handler, w, req)

			res := w.Result()
			defer res.Body.Close()
			data, _ := io.ReadAll(res.Body)
			if res.StatusCode != tt.wantStatus {
				t.Fatalf("%s: expected status %d got %d body=%s", tt.name, tt.wantStatus, res.StatusCode, string(data))
			}
			if tt.checkBody != nil {
				tt.checkBody(t, mocks, data)
			}
		})
	}
}
