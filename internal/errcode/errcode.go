package errcode

// Business error codes shared between the worker and WebSocket clients:
// - 0: no error
// - 4xxx: recoverable/warning class (generation continued with degraded data)
// - 5xxx: system errors (generation aborted)
const (
	OK                  = 0
	PartialContent      = 4005
	SystemError         = 5000
	RendererUnavailable = 5001
)
