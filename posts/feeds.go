package posts

import (
	"errors"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"chirp/engine"
	"chirp/middleware"
	"chirp/utils"
)

// GET /api/posts
func (h *Handler) GetAllPosts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	posts, err := h.engine.GlobalFeed(r.Context())
	if err != nil {
		log.Printf("Error in global feed handler: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, posts)
}

// GET /api/posts/following
func (h *Handler) GetFollowingPosts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	actorID := middleware.UserIDFromRequest(r)

	posts, err := h.engine.FollowingFeed(r.Context(), actorID)
	if err != nil {
		if errors.Is(err, engine.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User Not Found")
			return
		}
		log.Printf("Error in following feed handler: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, posts)
}

// GET /api/posts/user/:username
func (h *Handler) GetUserPosts(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	posts, err := h.engine.UserFeed(r.Context(), ps.ByName("username"))
	if err != nil {
		if errors.Is(err, engine.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User Not Found")
			return
		}
		log.Printf("Error in user feed handler: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, posts)
}

// GET /api/posts/likes/:id
func (h *Handler) GetLikedPosts(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	posts, err := h.engine.LikedFeed(r.Context(), ps.ByName("id"))
	if err != nil {
		if errors.Is(err, engine.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User Not Found")
			return
		}
		log.Printf("Error in liked feed handler: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, posts)
}
