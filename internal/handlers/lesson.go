package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"courseroom/api/internal/content"
	"courseroom/api/internal/middleware"
	"courseroom/api/internal/models"
)

// LessonFile serves gated lesson material. The composite key must be in the
// session's frozen access list; the resolved object key may not leave the
// course/lesson subtree.
func (h HandlerSet) LessonFile(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	courseID := c.Param("course")
	lessonID := c.Param("lesson")

	key := models.LessonKey{CourseID: courseID, LessonID: lessonID}
	if !session.HasAccess(key) {
		c.String(http.StatusForbidden, "Доступ к уроку закрыт")
		return
	}

	objectKey, ok := content.ResolveKey(courseID, lessonID, c.Param("filepath"))
	if !ok {
		c.String(http.StatusForbidden, "Доступ к уроку закрыт")
		return
	}

	reader, info, err := h.content.Open(c.Request.Context(), objectKey)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			c.String(http.StatusNotFound, "Файл не найден")
			return
		}
		h.log.Error().Err(err).Str("key", objectKey).Msg("open lesson content failed")
		c.String(http.StatusInternalServerError, genericFailure)
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, info.Size, info.ContentType, reader, nil)
}
