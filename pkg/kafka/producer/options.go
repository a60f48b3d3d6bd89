package producer

import "time"

type Option func(*Producer)

func ConnAttempts(attempts int) Option {
	return func(p *Producer) {
		p.connAttempts = attempts
	}
}

func ConnTimeout(timeout time.Duration) Option {
	return func(p *Producer) {
		p.connTimeout = timeout
	}
}

// BatchTimeout caps how long the writer holds a partial batch. Outcome events are
// emitted one at a time, so the kafka-go default of 1s would delay every event.
func BatchTimeout(timeout time.Duration) Option {
	return func(p *Producer) {
		p.batchTimeout = timeout
	}
}

func Logf(f func(format string, args ...any)) Option {
	return func(p *Producer) {
		p.logf = f
	}
}
