package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vimco/vimco-api/internal/middleware"
	"github.com/vimco/vimco-api/internal/modules/serializer"
	"github.com/vimco/vimco-api/internal/modules/service"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email" example:"admin@gmail.com"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
//
//	@Summary		Admin login
//	@Description	Exchange the back-office credentials for a bearer token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.LoginReq	true	"Credentials"
//	@Success		200	{object}	serializer.Response{data=service.Token}
//	@Failure		401	{object}	serializer.Response
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	req := LoginReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}

	tok, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, serializer.AuthErr("Invalid email or password"))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr(err))
		return
	}

	c.JSON(http.StatusOK, serializer.OK("Login successful", tok))
}

// Logout godoc
//
//	@Summary		Admin logout
//	@Description	Revoke the bearer token used for this request
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, _ := middleware.AdminClaims(c)
	if err := h.svc.Logout(c.Request.Context(), claims); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr(err))
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Logged out", nil))
}

type MeResp struct {
	Email string `json:"email"`
}

// Me godoc
//
//	@Summary		Current admin
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=handler.MeResp}
//	@Failure		401	{object}	serializer.Response
//	@Router			/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.AdminClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", MeResp{Email: claims.Subject}))
}
