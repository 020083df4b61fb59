// Package jobs provides scheduled background tasks for the shipment system.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager:
//
//	jobManager := jobs.NewJobManager(db, staleAge, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// StaleShipmentReportJob runs daily and logs shipments that have sat in
// pending or onHold longer than the configured age. It is strictly
// read-only: status transitions happen only through explicit requests,
// never on a schedule.
package jobs
