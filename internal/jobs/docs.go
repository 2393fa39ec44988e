// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager, which offers a unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(ordersCreatedSinceHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// DailySummaryJob runs at 23:59 local time and logs how many orders were
// placed since local midnight, broken down by status. It is strictly
// read-only: orders are never expired, archived, or otherwise mutated by a
// job.
package jobs
