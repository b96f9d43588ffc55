package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users UserService
	log   *slog.Logger
}

func NewUserHandler(users UserService, log *slog.Logger) *UserHandler {
	return &UserHandler{users: users, log: orDiscard(log)}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /register.
func (h *UserHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}
	name, err := h.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		userFailure.respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": name, "status": "User registered successfully"})
}

// Login handles POST /login.
func (h *UserHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}
	name, err := h.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		userFailure.respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": name, "status": "Login successful"})
}

// Profile handles GET /users/:username.
func (h *UserHandler) Profile(c *gin.Context) {
	name, err := h.users.GetProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		userFailure.respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": name, "status": "User details fetched"})
}
