package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/campusbridge/student-support-api/internal/application"
	"github.com/campusbridge/student-support-api/internal/domain/repository"
	"github.com/campusbridge/student-support-api/pkg/response"
	"github.com/campusbridge/student-support-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	StudentID string `json:"studentId" binding:"required"`
	Phone     string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		StudentID: req.StudentID,
		Phone:     req.Phone,
	})
	if err != nil {
		if field := repository.DuplicateField(err); field != "" {
			response.Error[any](c, http.StatusBadRequest, "An account with this "+field+" already exists.", nil)
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Error[any](c, http.StatusInternalServerError, "Server error", nil)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"token": res.Token, "user": res.User}, "registered", nil)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			// uniform message whether the email exists or not
			response.Error[any](c, http.StatusBadRequest, "Invalid credentials", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error[any](c, http.StatusInternalServerError, "Server error", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": res.Token, "user": res.User}, "logged in", nil)
}
