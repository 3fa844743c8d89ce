package devcycle

import (
	"sync"

	countrylookup "github.com/statsig-io/ip3country-go"
)

// Resolves an IP address to an ISO 3166 alpha-2 country code
type CountryResolver interface {
	LookupIp(ip string) (string, bool)
}

type CountryLookup struct {
	lookup  *countrylookup.CountryLookup
	wg      sync.WaitGroup
	options IPCountryOptions
	mu      sync.RWMutex
}

func NewCountryLookup(options IPCountryOptions) *CountryLookup {
	countryLookup := &CountryLookup{
		lookup:  nil,
		wg:      sync.WaitGroup{},
		options: options,
	}
	countryLookup.delayedSetup()
	countryLookup.init()
	return countryLookup
}

func (c *CountryLookup) isReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lookup != nil
}

func (c *CountryLookup) delayedSetup() {
	if c.options.Disabled {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		l := countrylookup.New()
		c.mu.Lock()
		c.lookup = l
		c.mu.Unlock()
	}()
}

func (c *CountryLookup) init() {
	if !c.options.LazyLoad {
		c.ensureLoaded()
	}
}

func (c *CountryLookup) ensureLoaded() {
	if c.options.Disabled {
		return
	}
	c.wg.Wait()
}

func (c *CountryLookup) LookupIp(ip string) (string, bool) {
	if c.options.Disabled || ip == "" {
		return "", false
	}
	if c.options.EnsureLoaded {
		c.wg.Wait()
	}
	if c.isReady() {
		c.mu.RLock()
		defer c.mu.RUnlock()
		return c.lookup.LookupIp(ip)
	}
	return "", false
}
