package errs

import "errors"

var (
	// codec
	ErrIO                = errors.New("io error")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrDecode            = errors.New("decode error")
	ErrEncode            = errors.New("encode error")
	ErrUnsupportedTarget = errors.New("unsupported encode target")

	// resize
	ErrInvalidDimensions = errors.New("invalid target dimensions")

	// listener / transport
	ErrListenerClosed   = errors.New("listener closed")
	ErrUnknownOperation = errors.New("unknown operation")
	ErrInvalidPayload   = errors.New("invalid payload")
)
