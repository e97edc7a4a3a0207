package tree

// Config holds tree parameters shared by every node of one tree.
type Config struct {
	Capacity int  // entries per leaf before it splits, default 16
	MaxDepth int  // depth at which leaves stop splitting, default 32
	Hook     Hook // structural and search events, default NoopHook
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Capacity: 16,
		MaxDepth: 32,
		Hook:     NoopHook{},
	}
}

// OrDefault returns DefaultConfig if c is nil, otherwise normalizes c.
func (c *Config) OrDefault() *Config {
	if c == nil {
		return DefaultConfig()
	}
	if c.Capacity <= 0 {
		c.Capacity = 16
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = 32
	}
	if c.Hook == nil {
		c.Hook = NoopHook{}
	}
	return c
}
