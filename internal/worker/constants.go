package worker

// LogMsgWorkerJobFailed is logged when a job returns an error. The worker keeps running.
const LogMsgWorkerJobFailed = "Worker job failed"

// Pool sizes and waits used by pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
	TestDrainTimeout     = 500 // milliseconds
)
