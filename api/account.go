package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutolink/tutolink-api/schema"
	"github.com/tutolink/tutolink-api/store"
)

// accountRegister is the API for register a new account
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")
	requester := c.GetString("requester")
	role := c.GetString("requesterRole")

	var params struct {
		Name string `json:"name"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if !schema.ValidRole(role) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidRole)
		return
	}

	a, err := s.store.CreateAccount(requester, params.Name, role)
	if err != nil {
		if err == store.ErrAccountTaken {
			abortWithEncoding(c, http.StatusForbidden, errorAccountTaken)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": a,
	})
}

// accountDetail is the API to query an account
func (s *Server) accountDetail(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account,
	})
}
