package worker

// Log Messages - Worker Pool
const LogMsgWorkerJobFailed = "Worker job failed"

// Log Messages - Save Worker
const (
	LogMsgSaveSweepStarting  = "Save sweep starting"
	LogMsgSaveSweepCompleted = "Save sweep completed"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
