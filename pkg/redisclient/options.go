package redisclient

import "time"

type Option func(*RedisClient)

func ConnAttempts(attempts int) Option {
	return func(c *RedisClient) {
		c.connAttempts = attempts
	}
}

func ConnTimeout(timeout time.Duration) Option {
	return func(c *RedisClient) {
		c.connTimeout = timeout
	}
}

func Password(password string) Option {
	return func(c *RedisClient) {
		c.password = password
	}
}

func DB(db int) Option {
	return func(c *RedisClient) {
		c.db = db
	}
}

func Logf(f func(format string, args ...any)) Option {
	return func(c *RedisClient) {
		c.logf = f
	}
}
