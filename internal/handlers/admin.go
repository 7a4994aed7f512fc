package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"courseroom/api/internal/service"
)

func (h HandlerSet) AdminPage(c *gin.Context) {
	h.renderAdmin(c, http.StatusOK, "", "")
}

func (h HandlerSet) AdminSubmit(c *gin.Context) {
	input := service.AssignmentInput{
		Email:    c.PostForm("email"),
		Name:     c.PostForm("name"),
		Password: c.PostForm("password"),
		CourseID: c.PostForm("course"),
		LessonID: c.PostForm("lesson"),
		Grade:    c.PostForm("grade"),
		Access:   c.PostForm("access"),
	}

	if err := h.assignments.Apply(c.Request.Context(), input); err != nil {
		status := http.StatusBadRequest
		var msg string
		switch {
		case errors.Is(err, service.ErrEmailRequired):
			msg = "Укажите email пользователя"
		case errors.Is(err, service.ErrCourseRequired):
			msg = "Укажите курс"
		case errors.Is(err, service.ErrLessonRequired):
			msg = "Укажите урок"
		case errors.Is(err, service.ErrPasswordRequired):
			msg = "Для нового пользователя нужен пароль"
		default:
			h.log.Error().Err(err).Str("email", input.Email).Msg("assignment failed")
			status = http.StatusInternalServerError
			msg = genericFailure
		}
		h.renderAdmin(c, status, "", msg)
		return
	}

	h.renderAdmin(c, http.StatusOK, "Назначение сохранено", "")
}

func (h HandlerSet) renderAdmin(c *gin.Context, status int, statusMsg, errMsg string) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list users failed")
		c.HTML(http.StatusInternalServerError, "admin.html", gin.H{"Error": genericFailure})
		return
	}

	courses, err := h.courses.ListCourses(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list courses failed")
		c.HTML(http.StatusInternalServerError, "admin.html", gin.H{"Error": genericFailure})
		return
	}

	c.HTML(status, "admin.html", gin.H{
		"Users":   users,
		"Courses": courses,
		"Status":  statusMsg,
		"Error":   errMsg,
	})
}
