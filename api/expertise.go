package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutolink/tutolink-api/schema"
	"github.com/tutolink/tutolink-api/store"
)

// listExpertise returns the calling tuto's declared course expertise
func (s *Server) listExpertise(c *gin.Context) {
	requester := c.GetString("requester")

	entries, err := s.store.ListExpertise(requester)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": entries})
}

// addExpertise declares proficiency in a course for the calling tuto
func (s *Server) addExpertise(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		CourseID    string `json:"course_id" binding:"required"`
		Proficiency string `json:"proficiency" binding:"required"`
		Semester    string `json:"semester"`
		Year        int    `json:"year"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	proficiency := schema.Proficiency(params.Proficiency)
	if !schema.ValidProficiency(proficiency) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	switch params.Semester {
	case "", schema.SEMESTER_SPRING, schema.SEMESTER_SUMMER, schema.SEMESTER_FALL:
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if _, err := s.store.GetCourse(params.CourseID); err != nil {
		if err == store.ErrCourseNotFound {
			abortWithEncoding(c, http.StatusBadRequest, errorCourseNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	entry, err := s.store.AddExpertise(requester, params.CourseID, proficiency, params.Semester, params.Year)
	if err != nil {
		if err == store.ErrDuplicateExpertise {
			abortWithEncoding(c, http.StatusConflict, errorDuplicateExpertise, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": entry})
}

// removeExpertise drops one of the calling tuto's expertise entries
func (s *Server) removeExpertise(c *gin.Context) {
	requester := c.GetString("requester")
	entryID := c.Param("entryID")

	if err := s.store.RemoveExpertise(requester, entryID); err != nil {
		if err == store.ErrExpertiseNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorExpertiseNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
