package deque

// config carries construction settings for a Deque.
type config struct {
	capacity int
	strategy Strategy
}

func defaultConfig() config {
	return config{capacity: DefaultCapacity, strategy: StrategyRing}
}

// Option is a functional option for constructing a Deque.
type Option func(*config)

// WithCapacity sets the initial backing array size. Negative values are
// ignored; zero defers the first allocation until the first push.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.capacity = n
		}
	}
}

// WithStrategy selects the backing strategy.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}

// WithRing selects the ring strategy (the default).
func WithRing() Option {
	return WithStrategy(StrategyRing)
}

// WithMargin selects the margin strategy.
func WithMargin() Option {
	return WithStrategy(StrategyMargin)
}
