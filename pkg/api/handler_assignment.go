package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dirigent-io/dirigent/pkg/models"
)

func (s *Server) listAssignments(c *gin.Context) {
	var status *string
	if v := c.Query("status"); v != "" {
		status = &v
	}
	assignments, err := s.assignmentService.List(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

func (s *Server) createAssignment(c *gin.Context) {
	var req models.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	asg, err := s.assignmentService.Create(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, asg)
}

func (s *Server) getAssignment(c *gin.Context) {
	asg, err := s.assignmentService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, asg)
}

func (s *Server) getAssignmentWithGroups(c *gin.Context) {
	full, err := s.assignmentService.GetWithGroups(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, full)
}

func (s *Server) getGroupChain(c *gin.Context) {
	chain, err := s.assignmentService.GetGroupChain(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, chain)
}

func (s *Server) updateAssignment(c *gin.Context) {
	var req models.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	asg, err := s.assignmentService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, asg)
}

func (s *Server) completeAssignment(c *gin.Context) {
	asg, err := s.assignmentService.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, asg)
}

func (s *Server) blockAssignment(c *gin.Context) {
	var req BlockAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	asg, err := s.assignmentService.Block(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, asg)
}

func (s *Server) unblockAssignment(c *gin.Context) {
	asg, err := s.assignmentService.Unblock(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, asg)
}

func (s *Server) removeAssignment(c *gin.Context) {
	result, err := s.assignmentService.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
