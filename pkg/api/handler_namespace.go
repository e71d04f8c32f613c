package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dirigent-io/dirigent/pkg/models"
	"github.com/dirigent-io/dirigent/pkg/services"
)

func (s *Server) listNamespaces(c *gin.Context) {
	namespaces, err := s.namespaceService.List(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, namespaces)
}

func (s *Server) createNamespace(c *gin.Context) {
	var req models.CreateNamespaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ns, err := s.namespaceService.Create(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ns)
}

func (s *Server) getNamespace(c *gin.Context) {
	ns, err := s.namespaceService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"namespace":         ns,
		"assignment_counts": services.Counts(ns),
	})
}

func (s *Server) getNamespaceByName(c *gin.Context) {
	ns, err := s.namespaceService.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ns)
}

func (s *Server) updateNamespace(c *gin.Context) {
	var req models.UpdateNamespaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ns, err := s.namespaceService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ns)
}

func (s *Server) removeNamespace(c *gin.Context) {
	if err := s.namespaceService.Remove(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

func (s *Server) backfillNamespaceCounts(c *gin.Context) {
	repaired, err := s.namespaceService.BackfillCounts(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"namespaces_repaired": repaired})
}
