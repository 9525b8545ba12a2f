package profile

import (
	"errors"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"chirp/engine"
	"chirp/middleware"
	"chirp/utils"
)

// Handler maps the follow routes onto the interaction engine.
type Handler struct {
	engine *engine.Engine
}

func NewHandler(e *engine.Engine) *Handler {
	return &Handler{engine: e}
}

// POST /api/profile/follow/:id
func (h *Handler) Follow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.handleFollowAction(w, r, ps, "follow")
}

// POST /api/profile/unfollow/:id
func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.handleFollowAction(w, r, ps, "unfollow")
}

func (h *Handler) handleFollowAction(w http.ResponseWriter, r *http.Request, ps httprouter.Params, action string) {
	actorID := middleware.UserIDFromRequest(r)
	targetID := ps.ByName("id")

	var err error
	if action == "follow" {
		err = h.engine.Follow(r.Context(), actorID, targetID)
	} else {
		err = h.engine.Unfollow(r.Context(), actorID, targetID)
	}
	if err != nil {
		if errors.Is(err, engine.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User Not Found")
			return
		}
		log.Printf("Error updating follow relationship: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update follow relationship")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"ok":          true,
		"isFollowing": action == "follow",
	})
}
