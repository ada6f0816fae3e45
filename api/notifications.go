package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Codenidhi/-hustlehub-jobportal/internal/notify"
)

type NotificationsHandler struct {
	engine *notify.Engine
}

// NewNotificationsHandler creates a new NotificationsHandler with required dependencies.
func NewNotificationsHandler(e *notify.Engine) *NotificationsHandler {
	return &NotificationsHandler{engine: e}
}

func (h *NotificationsHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	ns, err := h.engine.GetForUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ns)
}

func (h *NotificationsHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	count, err := h.engine.GetUnreadCount(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{"count": count})
}

func (h *NotificationsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	notificationID := mux.Vars(r)["notificationId"]

	if err := h.engine.MarkRead(r.Context(), notificationID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Notification marked as read"})
}

func (h *NotificationsHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := h.engine.MarkAllRead(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{"success": true, "message": "All notifications marked as read"})
}

func (h *NotificationsHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := h.engine.ClearForUser(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Notifications cleared"})
}
