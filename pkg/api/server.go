// Package api exposes the engine over HTTP: REST operations for every
// service plus a WebSocket feed for queue-change events.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/dirigent-io/dirigent/pkg/config"
	"github.com/dirigent-io/dirigent/pkg/database"
	"github.com/dirigent-io/dirigent/pkg/events"
	"github.com/dirigent-io/dirigent/pkg/scheduler"
	"github.com/dirigent-io/dirigent/pkg/services"
)

// Server wires the HTTP layer to the service layer.
type Server struct {
	cfg      *config.ServerConfig
	password string

	dbClient *database.Client

	namespaceService  *services.NamespaceService
	assignmentService *services.AssignmentService
	groupService      *services.GroupService
	threadService     *services.ChatThreadService
	chatJobService    *services.ChatJobService
	scheduler         *scheduler.Scheduler

	connManager *events.ConnectionManager
}

// Services bundles the service-layer dependencies of the server.
type Services struct {
	Namespaces  *services.NamespaceService
	Assignments *services.AssignmentService
	Groups      *services.GroupService
	Threads     *services.ChatThreadService
	ChatJobs    *services.ChatJobService
	Scheduler   *scheduler.Scheduler
}

// NewServer creates a new API server. password is the shared secret
// every operation is gated on; an empty password makes the gate fail
// closed with 500 rather than letting requests through.
func NewServer(cfg *config.ServerConfig, password string, dbClient *database.Client, svcs Services, connManager *events.ConnectionManager) *Server {
	return &Server{
		cfg:               cfg,
		password:          password,
		dbClient:          dbClient,
		namespaceService:  svcs.Namespaces,
		assignmentService: svcs.Assignments,
		groupService:      svcs.Groups,
		threadService:     svcs.Threads,
		chatJobService:    svcs.ChatJobs,
		scheduler:         svcs.Scheduler,
		connManager:       connManager,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), securityHeaders())

	router.GET("/health", s.healthHandler)

	v1 := router.Group("/api/v1", s.passwordAuth())
	{
		v1.GET("/namespaces", s.listNamespaces)
		v1.POST("/namespaces", s.createNamespace)
		v1.POST("/namespaces/backfill-counts", s.backfillNamespaceCounts)
		v1.GET("/namespaces/by-name/:name", s.getNamespaceByName)
		v1.GET("/namespaces/:id", s.getNamespace)
		v1.PATCH("/namespaces/:id", s.updateNamespace)
		v1.DELETE("/namespaces/:id", s.removeNamespace)

		v1.GET("/namespaces/:id/assignments", s.listAssignments)
		v1.POST("/assignments", s.createAssignment)
		v1.GET("/assignments/:id", s.getAssignment)
		v1.GET("/assignments/:id/full", s.getAssignmentWithGroups)
		v1.GET("/assignments/:id/chain", s.getGroupChain)
		v1.PATCH("/assignments/:id", s.updateAssignment)
		v1.POST("/assignments/:id/complete", s.completeAssignment)
		v1.POST("/assignments/:id/block", s.blockAssignment)
		v1.POST("/assignments/:id/unblock", s.unblockAssignment)
		v1.DELETE("/assignments/:id", s.removeAssignment)

		v1.GET("/assignments/:id/groups", s.listGroups)
		v1.POST("/assignments/:id/groups", s.createGroup)
		v1.POST("/groups/:id/insert-after", s.insertGroupAfter)
		v1.GET("/groups/:id", s.getGroup)
		v1.GET("/groups/:id/full", s.getGroupWithJobs)

		v1.GET("/jobs", s.listJobs)
		v1.GET("/jobs/:id", s.getJob)
		v1.GET("/jobs/:id/full", s.getJobWithAssignment)
		v1.POST("/jobs/:id/start", s.startJob)
		v1.POST("/jobs/:id/complete", s.completeJob)
		v1.POST("/jobs/:id/fail", s.failJob)
		v1.POST("/jobs/:id/metrics", s.updateJobMetrics)

		v1.GET("/namespaces/:id/ready-jobs", s.readyJobs)
		v1.GET("/namespaces/:id/ready-chat-jobs", s.readyChatJobs)
		v1.GET("/namespaces/:id/queue-status", s.queueStatus)
		v1.GET("/namespaces/:id/all-assignments", s.allAssignments)

		v1.GET("/namespaces/:id/chat/threads", s.listThreads)
		v1.POST("/chat/threads", s.createThread)
		v1.GET("/chat/threads/:id", s.getThread)
		v1.DELETE("/chat/threads/:id", s.removeThread)
		v1.POST("/chat/threads/:id/mode", s.updateThreadMode)
		v1.POST("/chat/threads/:id/title", s.updateThreadTitle)
		v1.POST("/chat/threads/:id/session", s.updateThreadSessionID)
		v1.POST("/chat/threads/:id/last-prompt-mode", s.updateThreadLastPromptMode)
		v1.POST("/chat/threads/:id/link", s.linkThreadAssignment)
		v1.POST("/chat/threads/:id/guardian", s.enableGuardianMode)
		v1.GET("/chat/threads/:id/messages", s.listMessages)
		v1.POST("/chat/threads/:id/messages", s.addMessage)
		v1.GET("/chat/threads/:id/active-job", s.getActiveChatJobForThread)
		v1.GET("/assignments/:id/guardian-thread", s.getGuardianThread)

		v1.POST("/chat/jobs", s.triggerChatJob)
		v1.GET("/chat/jobs/:id", s.getChatJob)
		v1.POST("/chat/jobs/:id/start", s.startChatJob)
		v1.POST("/chat/jobs/:id/complete", s.completeChatJob)
		v1.POST("/chat/jobs/:id/fail", s.failChatJob)
		v1.POST("/chat/jobs/:id/metrics", s.updateChatJobMetrics)
		v1.GET("/namespaces/:id/chat/jobs/pending", s.getPendingChatJobs)

		v1.GET("/ws", s.wsHandler)
	}

	return router
}
