package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"courseroom/api/internal/middleware"
	"courseroom/api/internal/models"
	"courseroom/api/internal/service"
)

const genericFailure = "Ошибка сервера, попробуйте позже"

func (h HandlerSet) Root(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h HandlerSet) LoginPage(c *gin.Context) {
	data := gin.H{}
	if c.Query("registered") == "1" {
		data["Status"] = "Регистрация успешна, теперь войдите"
	}
	c.HTML(http.StatusOK, "login.html", data)
}

func (h HandlerSet) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	session, err := h.auth.Login(c.Request.Context(), email, password)
	if err != nil {
		status := http.StatusUnauthorized
		var msg string
		switch {
		case errors.Is(err, service.ErrUnknownUser):
			msg = "Нет такого пользователя"
		case errors.Is(err, service.ErrWrongPassword):
			msg = "Неверный пароль"
		default:
			h.log.Error().Err(err).Msg("login failed")
			status = http.StatusInternalServerError
			msg = genericFailure
		}
		c.HTML(status, "login.html", gin.H{"Error": msg, "Email": email})
		return
	}

	h.setSessionCookie(c, session.ID)

	if session.Role == models.UserRoleAdmin {
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}
	c.Redirect(http.StatusSeeOther, "/cabinet")
}

func (h HandlerSet) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

func (h HandlerSet) RegisterSubmit(c *gin.Context) {
	input := service.RegisterInput{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}

	if _, err := h.auth.Register(c.Request.Context(), input); err != nil {
		status := http.StatusBadRequest
		var msg string
		switch {
		case errors.Is(err, service.ErrMissingRequired):
			msg = "Заполните все поля"
		case errors.Is(err, service.ErrEmailTaken):
			msg = "Такой email уже зарегистрирован"
		default:
			h.log.Error().Err(err).Msg("registration failed")
			status = http.StatusInternalServerError
			msg = genericFailure
		}
		c.HTML(status, "register.html", gin.H{"Error": msg, "Name": input.Name, "Email": input.Email})
		return
	}

	c.Redirect(http.StatusSeeOther, "/login?registered=1")
}

func (h HandlerSet) Logout(c *gin.Context) {
	if session, ok := middleware.CurrentSession(c); ok {
		if err := h.auth.Logout(c.Request.Context(), session.ID); err != nil {
			h.log.Error().Err(err).Msg("logout failed")
		}
	}

	h.clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h HandlerSet) setSessionCookie(c *gin.Context, sessionID string) {
	c.SetCookie(
		h.cfg.Session.CookieName,
		sessionID,
		int(h.cfg.Session.TTL.Seconds()),
		"/",
		"",
		h.cfg.Session.CookieSecure,
		true,
	)
}

func (h HandlerSet) clearSessionCookie(c *gin.Context) {
	c.SetCookie(h.cfg.Session.CookieName, "", -1, "/", "", h.cfg.Session.CookieSecure, true)
}
