package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dirigent-io/dirigent/ent"
	"github.com/dirigent-io/dirigent/pkg/models"
)

func (s *Server) listThreads(c *gin.Context) {
	threads, err := s.threadService.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, threads)
}

func (s *Server) createThread(c *gin.Context) {
	var req models.CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	thread, err := s.threadService.Create(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, thread)
}

func (s *Server) getThread(c *gin.Context) {
	thread, err := s.threadService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

func (s *Server) removeThread(c *gin.Context) {
	if err := s.threadService.Remove(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

func (s *Server) updateThreadMode(c *gin.Context) {
	s.updateThreadField(c, s.threadService.UpdateMode)
}

func (s *Server) updateThreadTitle(c *gin.Context) {
	s.updateThreadField(c, s.threadService.UpdateTitle)
}

func (s *Server) updateThreadSessionID(c *gin.Context) {
	s.updateThreadField(c, s.threadService.UpdateSessionID)
}

func (s *Server) updateThreadLastPromptMode(c *gin.Context) {
	s.updateThreadField(c, s.threadService.UpdateLastPromptMode)
}

func (s *Server) updateThreadField(c *gin.Context, update func(ctx context.Context, threadID, value string) (*ent.ChatThread, error)) {
	var req UpdateThreadFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	thread, err := update(c.Request.Context(), c.Param("id"), req.Value)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

func (s *Server) linkThreadAssignment(c *gin.Context) {
	var req LinkAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	thread, err := s.threadService.LinkAssignment(c.Request.Context(), c.Param("id"), req.AssignmentID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

func (s *Server) enableGuardianMode(c *gin.Context) {
	var req EnableGuardianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	thread, err := s.threadService.EnableGuardianMode(c.Request.Context(), c.Param("id"), req.AssignmentID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

func (s *Server) listMessages(c *gin.Context) {
	messages, err := s.threadService.ListMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (s *Server) addMessage(c *gin.Context) {
	var req models.AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ThreadID = c.Param("id")
	msg, err := s.threadService.AddMessage(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (s *Server) getActiveChatJobForThread(c *gin.Context) {
	job, err := s.chatJobService.GetActiveForThread(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if job == nil {
		c.JSON(http.StatusOK, gin.H{"active_job": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"active_job": job})
}

func (s *Server) getGuardianThread(c *gin.Context) {
	thread, err := s.threadService.GetGuardianThread(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

func (s *Server) triggerChatJob(c *gin.Context) {
	var req models.TriggerChatJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	job, err := s.chatJobService.Trigger(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (s *Server) getChatJob(c *gin.Context) {
	job, err := s.chatJobService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (s *Server) startChatJob(c *gin.Context) {
	var req StartJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	job, err := s.chatJobService.Start(c.Request.Context(), c.Param("id"), req.Prompt)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (s *Server) completeChatJob(c *gin.Context) {
	var req CompleteJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	job, err := s.chatJobService.Complete(c.Request.Context(), c.Param("id"), req.Result, req.Metrics)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (s *Server) failChatJob(c *gin.Context) {
	var req FailJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	job, err := s.chatJobService.Fail(c.Request.Context(), c.Param("id"), req.Result, req.Metrics)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (s *Server) updateChatJobMetrics(c *gin.Context) {
	var metrics models.JobMetrics
	if err := c.ShouldBindJSON(&metrics); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	job, err := s.chatJobService.UpdateMetrics(c.Request.Context(), c.Param("id"), metrics)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (s *Server) getPendingChatJobs(c *gin.Context) {
	jobs, err := s.chatJobService.GetPending(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}
