package notifications

import (
	"errors"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"chirp/engine"
	"chirp/middleware"
	"chirp/utils"
)

// Handler maps the notification routes onto the interaction engine.
type Handler struct {
	engine *engine.Engine
}

func NewHandler(e *engine.Engine) *Handler {
	return &Handler{engine: e}
}

// GET /api/notifications
//
// Fetching is destructive: every notification addressed to the requester
// is marked read as part of this call.
func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	actorID := middleware.UserIDFromRequest(r)

	notifications, err := h.engine.ListAndAcknowledge(r.Context(), actorID)
	if err != nil {
		log.Printf("Error in get notifications handler: %v", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Internal Server Error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, notifications)
}

// DELETE /api/notifications
func (h *Handler) DeleteNotifications(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	actorID := middleware.UserIDFromRequest(r)

	if err := h.engine.DeleteAllNotifications(r.Context(), actorID); err != nil {
		log.Printf("Error in delete notifications handler: %v", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Internal Server Error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Notifications Deleted Successfully"})
}

// DELETE /api/notifications/:id
func (h *Handler) DeleteNotification(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	actorID := middleware.UserIDFromRequest(r)

	err := h.engine.DeleteNotification(r.Context(), ps.ByName("id"), actorID)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Notification Not Found")
		case errors.Is(err, engine.ErrForbidden):
			utils.RespondWithError(w, http.StatusForbidden, "You are not Allowed to delete this notification")
		default:
			log.Printf("Error in delete notification handler: %v", err)
			utils.RespondWithError(w, http.StatusBadRequest, "Internal Server Error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Notification Deleted Successfully"})
}
