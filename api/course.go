package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listCourses returns the course catalog
func (s *Server) listCourses(c *gin.Context) {
	courses, err := s.store.ListCourses()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": courses})
}
