package cron

import (
	"log"
	"time"

	"github.com/meprashantkumar/todo-api/model"
)

// deletedRetention is how long soft-deleted todos are kept before the purge
// job removes them permanently.
const deletedRetention = 30 * 24 * time.Hour

// purgeCutoff returns the instant before which soft-deleted todos are
// purged.
func purgeCutoff(now time.Time) time.Time {
	return now.Add(-deletedRetention)
}

// PurgeDeletedTodos permanently removes todos that were soft-deleted more
// than the retention window ago.
func (m *Manager) PurgeDeletedTodos() {
	cutoff := purgeCutoff(time.Now().UTC())

	res := m.db.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&model.Todo{})
	if res.Error != nil {
		log.Printf("[CRON] purge_deleted_todos failed: %v", res.Error)
		return
	}

	log.Printf("[CRON] purge_deleted_todos completed, removed %d rows", res.RowsAffected)
}
