// Package handler provides the HTTP handlers for the user feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/user/domain"
	"user_backend/internal/feature/user/domain/entity"
	"user_backend/internal/feature/user/transport/http/dto"
)

// FindUserUsecase looks a single user up by ID.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type FindUserUsecase interface {
	Execute(ctx context.Context, userID uint) (*entity.User, error)
}

// UserService covers the remaining user operations exposed over HTTP.
type UserService interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	DeleteUser(ctx context.Context, userID uint) error
}

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	findUser FindUserUsecase
	users    UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(findUser FindUserUsecase, users UserService) *UserHandler {
	return &UserHandler{findUser: findUser, users: users}
}

// Get handles GET /users/:id.
// - 400 when the id is not a positive integer
// - 404 when the user does not exist
// - 500 on any other failure
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.findUser.Execute(c.Request.Context(), id)
	if err != nil {
		slog.Error("find user failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "user not found"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// Create handles POST /users. The store always assigns the ID; an "id" in the body is ignored.
// - 400 on an invalid body or unknown role
// - 409 when the email is already taken
// - 201 with the persisted user on success
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	user, err := req.ToEntity()
	if err != nil {
		slog.Warn("create user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	saved, err := h.users.CreateUser(c.Request.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			slog.Warn("create user conflict", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, dto.ErrorRes{Error: "email already exists"})
		case errors.Is(err, domain.ErrInvalidUser), errors.Is(err, domain.ErrInvalidUserID), errors.Is(err, domain.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		default:
			slog.Error("create user failed", "error", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
		}
		return
	}

	slog.Info("user created", "user_id", saved.ID())
	c.JSON(http.StatusCreated, dto.NewUserRes(saved))
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		slog.Error("list users failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
		return
	}
	out := make([]dto.UserRes, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserRes(u))
	}
	c.JSON(http.StatusOK, out)
}

// Delete handles DELETE /users/:id. Deleting a missing user still returns 204.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		slog.Error("delete user failed", "error", err, "user_id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
		return
	}
	slog.Info("user deleted", "user_id", id)
	c.Status(http.StatusNoContent)
}

// parseID reads the :id path parameter, writing a 400 response when it is invalid.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid user id"})
		return 0, false
	}
	return uint(id), true
}
