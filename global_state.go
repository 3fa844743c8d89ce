package devcycle

import "sync"

// Using global state variables directly will lead to race conditions
// Instead, define an accessor below using the Mutex lock
type GlobalState struct {
	logger *OutputLogger
	mu     sync.RWMutex
}

var global GlobalState

func Logger() *OutputLogger {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.logger
}

func InitializeGlobalOutputLogger(options OutputLoggerOptions, observabilityClient IObservabilityClient) {
	logger := &OutputLogger{
		options:             options,
		observabilityClient: observabilityClient,
	}
	global.mu.Lock()
	global.logger = logger
	global.mu.Unlock()
	logger.Initialize()
}

func ShutdownGlobalOutputLogger() {
	global.mu.Lock()
	logger := global.logger
	global.logger = nil
	global.mu.Unlock()
	logger.Shutdown()
}
