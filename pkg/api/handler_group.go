package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dirigent-io/dirigent/pkg/models"
)

func (s *Server) listGroups(c *gin.Context) {
	groups, err := s.groupService.ListGroups(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (s *Server) createGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := s.groupService.CreateGroup(c.Request.Context(), c.Param("id"), req.Jobs)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (s *Server) insertGroupAfter(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := s.groupService.InsertGroupAfter(c.Request.Context(), c.Param("id"), req.Jobs)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (s *Server) getGroup(c *gin.Context) {
	group, err := s.groupService.GetGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

func (s *Server) getGroupWithJobs(c *gin.Context) {
	full, err := s.groupService.GetGroupWithJobs(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, full)
}

func (s *Server) listJobs(c *gin.Context) {
	var groupID, status *string
	if v := c.Query("group_id"); v != "" {
		groupID = &v
	}
	if v := c.Query("status"); v != "" {
		status = &v
	}
	jobs, err := s.groupService.ListJobs(c.Request.Context(), groupID, status)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (s *Server) getJob(c *gin.Context) {
	j, err := s.groupService.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

func (s *Server) getJobWithAssignment(c *gin.Context) {
	full, err := s.groupService.GetJobWithAssignment(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, full)
}

func (s *Server) startJob(c *gin.Context) {
	var req StartJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	j, err := s.groupService.StartJob(c.Request.Context(), c.Param("id"), req.Prompt)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

func (s *Server) completeJob(c *gin.Context) {
	var req CompleteJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	j, err := s.groupService.CompleteJob(c.Request.Context(), c.Param("id"), req.Result, req.Metrics)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

func (s *Server) failJob(c *gin.Context) {
	var req FailJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	j, err := s.groupService.FailJob(c.Request.Context(), c.Param("id"), req.Result, req.Metrics)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

func (s *Server) updateJobMetrics(c *gin.Context) {
	var metrics models.JobMetrics
	if err := c.ShouldBindJSON(&metrics); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	j, err := s.groupService.UpdateMetrics(c.Request.Context(), c.Param("id"), metrics)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}
