package jobs

import (
	"context"
	"time"

	"studygroups-backend/internal/domain"
	"studygroups-backend/internal/logger"
)

// ReconcileMemberCounts re-derives every active group's cached member count
// from its membership rows. Counts that drifted during concurrent joins and
// leaves converge here.
func (jr *JobRunner) ReconcileMemberCounts() {
	jr.runWithRecovery("ReconcileMemberCounts", func() {
		ctx := context.Background()

		groups, err := jr.store.GroupRepository.ListByStatus(ctx, domain.GroupStatusActive)
		if err != nil {
			logger.Error("Failed to list active groups", "error", err)
			return
		}

		reconciled := 0
		for _, group := range groups {
			count, err := jr.services.Membership.RecountMembers(ctx, group.ID)
			if err != nil {
				logger.Error("Failed to recount members", "group_id", group.ID, "error", err)
				continue
			}
			if int32(count) != group.MemberCount {
				logger.Info("Corrected drifted member count",
					"group_id", group.ID,
					"cached", group.MemberCount,
					"actual", count)
				reconciled++
			}
		}

		logger.Info("Reconciled member counts", "groups", len(groups), "corrected", reconciled)
	})
}

// ArchiveIdleGroups archives active groups whose newest message is older than
// the configured idle window. Groups with no messages at all are judged by
// their creation time instead.
func (jr *JobRunner) ArchiveIdleGroups() {
	jr.runWithRecovery("ArchiveIdleGroups", func() {
		ctx := context.Background()
		cutoff := time.Now().AddDate(0, 0, -jr.config.Scheduler.IdleDays)

		groups, err := jr.store.GroupRepository.ListByStatus(ctx, domain.GroupStatusActive)
		if err != nil {
			logger.Error("Failed to list active groups", "error", err)
			return
		}

		archived := 0
		for _, group := range groups {
			latest, err := jr.store.MessageRepository.LatestByGroup(ctx, group.ID)
			if err != nil {
				logger.Error("Failed to look up latest message", "group_id", group.ID, "error", err)
				continue
			}
			if latest.IsZero() {
				latest = group.CreatedAt
			}
			if latest.After(cutoff) {
				continue
			}

			if err := jr.store.GroupRepository.UpdateStatus(ctx, group.ID, domain.GroupStatusArchived); err != nil {
				logger.Error("Failed to archive group", "group_id", group.ID, "error", err)
				continue
			}
			logger.Debug("Archived idle group", "group_id", group.ID, "last_activity", latest)
			archived++
		}

		logger.Info("Archived idle groups", "count", archived, "idle_days", jr.config.Scheduler.IdleDays)
	})
}

// PurgeProcessedRequests deletes approved and rejected join requests older
// than the retention window. Pending requests are never touched.
func (jr *JobRunner) PurgeProcessedRequests() {
	jr.runWithRecovery("PurgeProcessedRequests", func() {
		ctx := context.Background()
		cutoff := time.Now().AddDate(0, 0, -jr.config.Scheduler.RequestRetentionDays)

		deleted, err := jr.store.JoinRequestRepository.DeleteProcessedBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to purge processed join requests", "error", err)
			return
		}

		logger.Info("Purged processed join requests", "count", deleted, "retention_days", jr.config.Scheduler.RequestRetentionDays)
	})
}
