package httpserver

import (
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Option func(*Server)

func Port(port string) Option {
	return func(s *Server) {
		s.address = net.JoinHostPort("", port)
	}
}

func Prefork(prefork bool) Option {
	return func(s *Server) {
		s.prefork = prefork
	}
}

func ReadTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.readTimeout = timeout
	}
}

func WriteTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.writeTimeout = timeout
	}
}

func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = timeout
	}
}

// BodyLimit caps request bodies; batches of paths are small.
func BodyLimit(bytes int) Option {
	return func(s *Server) {
		s.bodyLimit = bytes
	}
}

// ErrorHandler replaces fiber's plain-text error page, e.g. for 413 on oversized bodies.
func ErrorHandler(h fiber.ErrorHandler) Option {
	return func(s *Server) {
		s.errorHandler = h
	}
}
