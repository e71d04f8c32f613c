package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) readyJobs(c *gin.Context) {
	jobs, err := s.scheduler.ReadyJobs(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (s *Server) readyChatJobs(c *gin.Context) {
	jobs, err := s.scheduler.ReadyChatJobs(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (s *Server) queueStatus(c *gin.Context) {
	status, err := s.scheduler.QueueStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (s *Server) allAssignments(c *gin.Context) {
	assignments, err := s.scheduler.AllAssignments(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}
