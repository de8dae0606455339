package handlers

import (
	"net/http"

	"github.com/Ricozl/commerce/internal/auctionerrors"
	"github.com/Ricozl/commerce/internal/auth"
	"github.com/Ricozl/commerce/internal/models"
	"github.com/Ricozl/commerce/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService    Authenticator
	accountService AccountManager
	secureCookies  bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService Authenticator, accountService AccountManager, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		accountService: accountService,
		secureCookies:  secureCookies,
	}
}

// Register creates an account and signs the new user in.
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, "Register", err, "/register")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		Confirmation: req.Confirmation,
	})
	if err != nil {
		respondError(c, "Register", err, "/register")
		return
	}

	h.startSession(c, http.StatusCreated, user)
}

// Login checks credentials and starts a session.
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, "Login", err, loginPath)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, "Login", err, loginPath)
		return
	}

	h.startSession(c, http.StatusOK, user)
}

// Logout clears the session cookie. Bearer tokens simply expire.
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", h.secureCookies, true)
	respondMessage(c, http.StatusOK, LevelInfo, "Logged out.", indexPath, nil)
}

// Me returns the signed-in user's profile.
// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		respondError(c, "Me", auctionerrors.ErrUnauthorized, "")
		return
	}

	user, err := h.accountService.GetUserByID(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, "Me", err, "")
		return
	}

	respondOK(c, http.StatusOK, toUserResponse(user))
}

// DeleteMe deletes the signed-in user's account.
// DELETE /auth/me
func (h *AuthHandler) DeleteMe(c *gin.Context) {
	identity, ok := auth.CurrentIdentity(c)
	if !ok {
		respondError(c, "DeleteMe", auctionerrors.ErrUnauthorized, "")
		return
	}

	if err := h.accountService.DeleteAccount(c.Request.Context(), identity); err != nil {
		respondError(c, "DeleteMe", err, "")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", h.secureCookies, true)
	respondMessage(c, http.StatusOK, LevelSuccess, "Account deleted.", indexPath, nil)
}

func (h *AuthHandler) startSession(c *gin.Context, status int, user *models.User) {
	token, err := auth.GenerateToken(user.ID, user.Username)
	if err != nil {
		respondError(c, "startSession", err, "")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookie, token, int(auth.SessionTTL().Seconds()), "/", "", h.secureCookies, true)

	respondMessage(c, status, LevelSuccess, "Welcome, "+user.Username+".", indexPath, sessionResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}
