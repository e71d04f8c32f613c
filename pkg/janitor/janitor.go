// Package janitor runs the background maintenance loops: the stale-job
// sweep, catchup event retention, and the namespace counter audit.
package janitor

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/dirigent-io/dirigent/ent"
	"github.com/dirigent-io/dirigent/ent/chatjob"
	"github.com/dirigent-io/dirigent/ent/job"
	"github.com/dirigent-io/dirigent/pkg/config"
	"github.com/dirigent-io/dirigent/pkg/models"
	"github.com/dirigent-io/dirigent/pkg/services"
)

// Janitor periodically:
//   - Force-fails running jobs and chat jobs whose runner has gone quiet
//   - Deletes persisted catchup events past their TTL
//   - Audits and repairs namespace assignment counters
//
// All operations are idempotent and safe to run from multiple replicas.
type Janitor struct {
	config           *config.JanitorConfig
	client           *ent.Client
	groupService     *services.GroupService
	chatJobService   *services.ChatJobService
	namespaceService *services.NamespaceService
	eventService     *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a new janitor.
func New(
	cfg *config.JanitorConfig,
	client *ent.Client,
	groupService *services.GroupService,
	chatJobService *services.ChatJobService,
	namespaceService *services.NamespaceService,
	eventService *services.EventService,
) *Janitor {
	return &Janitor{
		config:           cfg,
		client:           client,
		groupService:     groupService,
		chatJobService:   chatJobService,
		namespaceService: namespaceService,
		eventService:     eventService,
	}
}

// Start launches the background loops.
func (j *Janitor) Start(ctx context.Context) {
	if j.cancel != nil {
		return
	}
	ctx, j.cancel = context.WithCancel(ctx)
	j.done = make(chan struct{})

	go j.run(ctx)

	slog.Info("Janitor started",
		"stale_job_threshold", j.config.StaleJobThreshold,
		"sweep_interval", j.config.SweepInterval,
		"event_ttl", j.config.EventTTL,
		"cleanup_interval", j.config.CleanupInterval)
}

// Stop signals the loops to exit and waits for them to finish.
func (j *Janitor) Stop() {
	if j.cancel == nil {
		return
	}
	j.cancel()
	<-j.done
	slog.Info("Janitor stopped")
}

func (j *Janitor) run(ctx context.Context) {
	defer close(j.done)

	sweepTimer := time.NewTimer(j.sweepInterval())
	defer sweepTimer.Stop()

	cleanupTicker := time.NewTicker(j.config.CleanupInterval)
	defer cleanupTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-sweepTimer.C:
			j.sweepStaleJobs(ctx)
			sweepTimer.Reset(j.sweepInterval())
		case <-cleanupTicker.C:
			j.cleanupEvents(ctx)
			j.auditCounters(ctx)
		}
	}
}

// sweepInterval returns the sweep period with jitter so replicas
// don't sweep in lockstep.
func (j *Janitor) sweepInterval() time.Duration {
	base := j.config.SweepInterval
	jitter := j.config.SweepIntervalJitter
	if jitter <= 0 {
		return base
	}
	return base - jitter + time.Duration(rand.Int64N(int64(2*jitter)))
}

// sweepStaleJobs force-fails running jobs whose runner has not reported
// an event within the stale threshold. Finishing a job through the
// service layer keeps group derivation and counters consistent.
func (j *Janitor) sweepStaleJobs(ctx context.Context) {
	cutoff := time.Now().Add(-j.config.StaleJobThreshold)

	stale, err := j.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.LastEventAtNotNil(),
			job.LastEventAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		slog.Error("Stale job query failed", "error", err)
	} else {
		for _, stuck := range stale {
			j.failStaleJob(ctx, stuck, cutoff)
		}
	}

	staleChat, err := j.client.ChatJob.Query().
		Where(
			chatjob.StatusEQ(chatjob.StatusRunning),
			chatjob.LastEventAtNotNil(),
			chatjob.LastEventAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		slog.Error("Stale chat job query failed", "error", err)
		return
	}
	for _, stuck := range staleChat {
		j.failStaleChatJob(ctx, stuck)
	}
}

func (j *Janitor) failStaleJob(ctx context.Context, stuck *ent.Job, cutoff time.Time) {
	log := slog.With("job_id", stuck.ID, "job_type", stuck.JobType)

	lastEvent := "unknown"
	if stuck.LastEventAt != nil {
		lastEvent = stuck.LastEventAt.Format(time.RFC3339)
	}

	result := "Runner went silent; job force-failed by the stale sweep. Last event at " + lastEvent + "."
	forced := true
	_, err := j.groupService.FailJob(ctx, stuck.ID, &result, &models.JobMetrics{ExitForced: &forced})
	if err != nil {
		log.Error("Failed to force-fail stale job", "error", err)
		return
	}
	log.Warn("Stale job force-failed", "last_event_at", lastEvent, "cutoff", cutoff.Format(time.RFC3339))
}

func (j *Janitor) failStaleChatJob(ctx context.Context, stuck *ent.ChatJob) {
	log := slog.With("chat_job_id", stuck.ID, "thread_id", stuck.ThreadID)

	lastEvent := "unknown"
	if stuck.LastEventAt != nil {
		lastEvent = stuck.LastEventAt.Format(time.RFC3339)
	}

	result := "Runner went silent; chat job force-failed by the stale sweep. Last event at " + lastEvent + "."
	forced := true
	_, err := j.chatJobService.Fail(ctx, stuck.ID, &result, &models.JobMetrics{ExitForced: &forced})
	if err != nil {
		log.Error("Failed to force-fail stale chat job", "error", err)
		return
	}
	log.Warn("Stale chat job force-failed", "last_event_at", lastEvent)
}

// cleanupEvents deletes persisted catchup events older than the TTL.
func (j *Janitor) cleanupEvents(ctx context.Context) {
	cutoff := time.Now().Add(-j.config.EventTTL)
	deleted, err := j.eventService.DeleteEventsBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Event cleanup failed", "error", err)
		return
	}
	if deleted > 0 {
		slog.Info("Expired catchup events deleted", "count", deleted)
	}
}

// auditCounters recomputes namespace assignment counters from the
// assignments table and repairs any drift.
func (j *Janitor) auditCounters(ctx context.Context) {
	repaired, err := j.namespaceService.BackfillCounts(ctx)
	if err != nil {
		slog.Error("Counter audit failed", "error", err)
		return
	}
	if repaired > 0 {
		slog.Warn("Namespace counters repaired", "count", repaired)
	}
}
