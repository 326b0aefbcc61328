package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zaqqye/facetrack_backend/internal/config"
	"github.com/zaqqye/facetrack_backend/internal/middleware"
	"github.com/zaqqye/facetrack_backend/internal/models"
	"github.com/zaqqye/facetrack_backend/internal/utils"
)

type AuthController struct {
	Operators []models.Operator
	Auth      middleware.AuthConfig
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// NewAuthController hashes the configured operator passwords once at startup.
// The operator account is optional; the admin account is always present.
func NewAuthController(cfg *config.Config) (*AuthController, error) {
	type account struct {
		email, password, fullName, role string
	}
	accounts := []account{
		{cfg.AdminEmail, cfg.AdminPassword, cfg.AdminFullName, models.RoleAdmin},
	}
	if cfg.OperatorEmail != "" && cfg.OperatorPassword != "" {
		accounts = append(accounts, account{cfg.OperatorEmail, cfg.OperatorPassword, "Operator", models.RoleOperator})
	}

	ctrl := &AuthController{
		Auth: middleware.AuthConfig{JWTSecret: cfg.JWTSecret, JWTExpiresIn: cfg.AccessTTL()},
	}
	for _, a := range accounts {
		if !IsValidRole(a.role) {
			return nil, fmt.Errorf("invalid role %q", a.role)
		}
		hashed, err := utils.HashPassword(a.password)
		if err != nil {
			return nil, err
		}
		ctrl.Operators = append(ctrl.Operators, models.Operator{
			Email:    strings.ToLower(strings.TrimSpace(a.email)),
			FullName: a.fullName,
			Password: hashed,
			Role:     a.role,
		})
	}
	return ctrl, nil
}

func (a *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var op *models.Operator
	for i := range a.Operators {
		if a.Operators[i].Email == email {
			op = &a.Operators[i]
			break
		}
	}
	if op == nil || !utils.CheckPassword(op.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := middleware.IssueToken(a.Auth, *op, time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   int(a.Auth.JWTExpiresIn.Seconds()),
		"role":         op.Role,
	})
}

func (a *AuthController) Me(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)
	c.JSON(http.StatusOK, gin.H{
		"email":     p.Email,
		"full_name": p.FullName,
		"role":      p.Role,
	})
}

// Logout for stateless JWT: client should discard token
func (a *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
