// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field, so
// schedules have six fields: "0 * * * * *" runs at the start of every minute.
//
// # Available Jobs
//
//  1. StockMonitorJob - lists products at or below the low stock threshold,
//     logs them and publishes their count as a gauge.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(stockMonitorJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing run is logged and the next scheduled run proceeds normally.
// Failed job starts stop any already running jobs.
package jobs
