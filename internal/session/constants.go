package session

import (
	"errors"
	"time"
)

// ErrNotRunning is reported by CheckHealth before Run or after Stop
var ErrNotRunning = errors.New("session tick loop is not running")

// Run defaults, used when Options leaves a field zero
const (
	DefaultTickInterval = 250 * time.Millisecond
	DefaultWorkerCount  = 1
	DefaultQueueSize    = 4
)

// Log messages
const (
	LogMsgSessionCreated   = "Session created"
	LogMsgResumeStarted    = "Resuming session after absence"
	LogMsgResumeClockSkew  = "Last-seen time is in the future, treating absence as zero"
	LogMsgResumeSkipped    = "Skill idle during absence, nothing to reconcile"
	LogMsgResumeFinished   = "Session resumed"
	LogMsgTickClockSkew    = "Clock moved backwards between ticks, skipping delta"
	LogMsgTickFailed       = "Tick failed"
	LogMsgResourceReceived = "Resources received"
	LogMsgRunStarted       = "Session tick loop started"
	LogMsgRunStopped       = "Session tick loop stopped"
)
