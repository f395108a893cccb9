package bridge

import "errors"

var (
	ErrBridgeClosed = errors.New("bridge is closed")
	ErrSeqMismatch  = errors.New("ack sequence does not match command")
)

// Transport carries opaque frames between the bridge and the remote host.
// Implementations must preserve frame boundaries. Send and Receive need not
// be goroutine safe; the bridge serializes its calls.
type Transport interface {
	Send(data []byte) error
	Receive() ([]byte, error)
	Close() error
}
