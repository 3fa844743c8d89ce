package devcycle

import (
	"sync"

	"github.com/ua-parser/uap-go/uaparser"
)

type UAParser struct {
	parser  *uaparser.Parser
	wg      sync.WaitGroup
	options UAParserOptions
	mu      sync.RWMutex
}

// Starts loading the bundled regex definitions in the background. Unless LazyLoad is
// set, NewUAParser waits for loading to finish before returning.
func NewUAParser(options UAParserOptions) *UAParser {
	uaParser := &UAParser{
		parser:  nil,
		wg:      sync.WaitGroup{},
		options: options,
	}
	uaParser.delayedSetup()
	uaParser.init()
	return uaParser
}

func (u *UAParser) isReady() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.parser != nil
}

func (u *UAParser) delayedSetup() {
	if u.options.Disabled {
		return
	}
	u.wg.Add(1)
	go func() {
		defer u.wg.Done()
		p := uaparser.NewFromSaved()
		u.mu.Lock()
		u.parser = p
		u.mu.Unlock()
	}()
}

func (u *UAParser) init() {
	if !u.options.LazyLoad {
		u.ensureLoaded()
	}
}

func (u *UAParser) ensureLoaded() {
	if u.options.Disabled {
		return
	}
	u.wg.Wait()
}

func (u *UAParser) parse(ua string) *uaparser.Client {
	if u == nil || u.options.Disabled || ua == "" {
		return nil
	}
	if u.options.EnsureLoaded {
		u.ensureLoaded()
	}
	if u.isReady() {
		u.mu.RLock()
		defer u.mu.RUnlock()
		return u.parser.Parse(ua)
	}
	return nil
}
