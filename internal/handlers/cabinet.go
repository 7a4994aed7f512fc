package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courseroom/api/internal/middleware"
)

func (h HandlerSet) Cabinet(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	courses, err := h.progress.Cabinet(c.Request.Context(), session)
	if err != nil {
		h.log.Error().Err(err).Str("email", session.Email).Msg("cabinet build failed")
		c.HTML(http.StatusInternalServerError, "cabinet.html", gin.H{
			"Name":  session.Name,
			"Error": genericFailure,
		})
		return
	}

	c.HTML(http.StatusOK, "cabinet.html", gin.H{
		"Name":    session.Name,
		"Courses": courses,
	})
}
