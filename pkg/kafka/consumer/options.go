package consumer

import "time"

type Option func(*Consumer)

func ConnAttempts(attempts int) Option {
	return func(c *Consumer) {
		c.connAttempts = attempts
	}
}

func ConnTimeout(timeout time.Duration) Option {
	return func(c *Consumer) {
		c.connTimeout = timeout
	}
}

// MaxBytes bounds a single fetch; request batches are small JSON documents.
func MaxBytes(n int) Option {
	return func(c *Consumer) {
		c.maxBytes = n
	}
}

func Logf(f func(format string, args ...any)) Option {
	return func(c *Consumer) {
		c.logf = f
	}
}
