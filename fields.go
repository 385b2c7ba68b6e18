package redox

import "github.com/zoobzio/capitan"

// Field keys for redox events.
var (
	// KeyChain identifies which collection a dropped entry came from:
	// "before", "after", or "handlers".
	KeyChain = capitan.NewStringKey("chain")

	// KeyIndex is the dropped entry's position within its chain, -1 for
	// handler mapping entries.
	KeyIndex = capitan.NewIntKey("index")

	// KeyActionType is the action type of a dispatch or of a dropped
	// handler mapping entry.
	KeyActionType = capitan.NewStringKey("action_type")

	// KeyError is the error message when a dispatch fails.
	KeyError = capitan.NewStringKey("error")

	// KeyDuration is the time taken to process a dispatch.
	KeyDuration = capitan.NewDurationKey("duration")

	// KeyBeforeCount is the validated before-chain length of a new reducer.
	KeyBeforeCount = capitan.NewIntKey("before_count")

	// KeyAfterCount is the validated after-chain length of a new reducer.
	KeyAfterCount = capitan.NewIntKey("after_count")

	// KeyHandlerCount is the validated handler mapping size of a new reducer.
	KeyHandlerCount = capitan.NewIntKey("handler_count")
)
