package devcycle

// Options for building users
type UserOptions struct {
	// Source of platform, platformVersion and deviceModel. Defaults to RuntimeEnvironment.
	Environment EnvironmentProvider
	// Used by UserBuilder.CountryFromIP. Left nil, CountryFromIP is a no-op.
	CountryResolver CountryResolver
}

func (o *UserOptions) environment() EnvironmentProvider {
	if o == nil || o.Environment == nil {
		return RuntimeEnvironment{}
	}
	return o.Environment
}

func (o *UserOptions) countryResolver() CountryResolver {
	if o == nil {
		return nil
	}
	return o.CountryResolver
}

type IPCountryOptions struct {
	Disabled     bool // Fully disable IP to country lookup
	LazyLoad     bool // Load in background
	EnsureLoaded bool // Wait until loaded when needed
}

type UAParserOptions struct {
	Disabled     bool // Fully disable UA parser
	LazyLoad     bool // Load in background
	EnsureLoaded bool // Wait until loaded when needed
}
