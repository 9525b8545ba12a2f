package posts

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"chirp/engine"
	"chirp/middleware"
	"chirp/utils"
)

// Handler maps the post routes onto the interaction engine.
type Handler struct {
	engine *engine.Engine
}

func NewHandler(e *engine.Engine) *Handler {
	return &Handler{engine: e}
}

type postPayload struct {
	Text string `json:"text"`
	Img  string `json:"img"`
}

// POST /api/posts
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	actorID := middleware.UserIDFromRequest(r)

	var payload postPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	post, err := h.engine.CreatePost(r.Context(), actorID, payload.Text, payload.Img)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User Not Found")
		case errors.Is(err, engine.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, "Post must have text or image")
		default:
			log.Printf("Error in create post handler: %v", err)
			utils.RespondWithError(w, http.StatusBadRequest, "Internal Server Error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, post)
}

// DELETE /api/posts/:id
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	actorID := middleware.UserIDFromRequest(r)

	err := h.engine.DeletePost(r.Context(), ps.ByName("id"), actorID)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Post Not Found")
		case errors.Is(err, engine.ErrForbidden):
			utils.RespondWithError(w, http.StatusUnauthorized, "You are not Authorized to Delete This Post")
		default:
			log.Printf("Error in delete post handler: %v", err)
			utils.RespondWithError(w, http.StatusBadRequest, "Internal Server Error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Post Deleted Successfully"})
}

// POST /api/posts/comment/:postid
func (h *Handler) CommentOnPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	actorID := middleware.UserIDFromRequest(r)

	var payload struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	post, err := h.engine.AddComment(r.Context(), ps.ByName("postid"), actorID, payload.Text)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, "Text field is required")
		case errors.Is(err, engine.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Post Not Found")
		default:
			log.Printf("Error in comment handler: %v", err)
			utils.RespondWithError(w, http.StatusBadRequest, "Internal Server Error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, post)
}

// POST /api/posts/like/:id
func (h *Handler) LikePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	actorID := middleware.UserIDFromRequest(r)

	likes, err := h.engine.ToggleLike(r.Context(), ps.ByName("id"), actorID)
	if err != nil {
		if errors.Is(err, engine.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Post Not Found")
			return
		}
		log.Printf("Error in like handler: %v", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Internal Server Error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, likes)
}
