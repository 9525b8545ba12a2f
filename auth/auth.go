package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"

	"chirp/db"
	"chirp/globals"
	"chirp/middleware"
	"chirp/models"
	"chirp/utils"
)

const tokenTTL = 72 * time.Hour

// Handler owns the credential boundary: signup, signin, signout and the
// current-user lookup. Everything past this boundary trusts the user id
// resolved by middleware.Authenticate.
type Handler struct {
	users *db.UserRepo
}

func NewHandler(users *db.UserRepo) *Handler {
	return &Handler{users: users}
}

type credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func issueToken(user *models.User) (string, error) {
	claims := &middleware.Claims{
		Username: user.Username,
		UserID:   user.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

// POST /api/auth/signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if input.Username == "" || input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username, email and password are required")
		return
	}

	_, err := h.users.GetByUsername(r.Context(), input.Username)
	if err == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Username is already taken")
		return
	}
	if !errors.Is(err, db.ErrNotFound) {
		log.Printf("Error in signup handler: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	user := &models.User{
		UserID:     utils.GenerateID(),
		Username:   input.Username,
		Email:      input.Email,
		Password:   string(hash),
		Following:  []string{},
		Followers:  []string{},
		LikedPosts: []string{},
		CreatedAt:  time.Now(),
	}
	if err := h.users.Insert(r.Context(), user); err != nil {
		log.Printf("Error inserting user: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	token, err := issueToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"token": token, "user": user})
}

// POST /api/auth/signin
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if input.Username == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.users.GetByUsername(r.Context(), input.Username)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := issueToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"token": token, "user": user})
}

// POST /api/auth/signout
//
// Tokens are stateless; signout is an acknowledgement for the client to
// discard its copy.
func (h *Handler) Signout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Signed out successfully"})
}

// GET /api/auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	actorID := middleware.UserIDFromRequest(r)

	user, err := h.users.GetByID(r.Context(), actorID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User Not Found")
			return
		}
		log.Printf("Error in me handler: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}
