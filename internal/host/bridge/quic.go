package bridge

import (
	"context"
	"crypto/tls"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/quic-go/quic-go"
)

const quicALPN = "motus-bridge"

// maxFrameSize bounds a single length-prefixed frame.
const maxFrameSize = 1 << 20

var _ Transport = (*quicTransport)(nil)

// quicTransport carries length-prefixed frames over a single bidirectional
// QUIC stream.
type quicTransport struct {
	session *quic.Conn
	stream  *quic.Stream
}

// DialQUIC connects the bridge transport to a remote host over QUIC. A nil
// tlsConfig uses an insecure config suited only to local hosts.
func DialQUIC(ctx context.Context, addr string, tlsConfig *tls.Config) (Transport, error) {
	if tlsConfig == nil {
		tlsConfig = &tls.Config{
			InsecureSkipVerify: true,
			NextProtos:         []string{quicALPN},
		}
	}
	quicConfig := &quic.Config{
		MaxIdleTimeout:  60 * time.Second,
		KeepAlivePeriod: 15 * time.Second,
	}

	session, err := quic.DialAddr(ctx, addr, tlsConfig, quicConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to dial host bridge %s: %w", addr, err)
	}
	stream, err := session.OpenStreamSync(ctx)
	if err != nil {
		_ = session.CloseWithError(0, "no stream")
		return nil, fmt.Errorf("failed to open bridge stream: %w", err)
	}

	return &quicTransport{session: session, stream: stream}, nil
}

func (t *quicTransport) Send(data []byte) error {
	if len(data) > maxFrameSize {
		return fmt.Errorf("frame of %d bytes exceeds limit", len(data))
	}
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(data)))
	if _, err := t.stream.Write(length[:]); err != nil {
		return fmt.Errorf("failed to write frame length: %w", err)
	}
	if _, err := t.stream.Write(data); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

func (t *quicTransport) Receive() ([]byte, error) {
	var length [4]byte
	if _, err := io.ReadFull(t.stream, length[:]); err != nil {
		return nil, fmt.Errorf("failed to read frame length: %w", err)
	}
	size := binary.BigEndian.Uint32(length[:])
	if size > maxFrameSize {
		return nil, fmt.Errorf("frame of %d bytes exceeds limit", size)
	}
	data := make([]byte, size)
	if _, err := io.ReadFull(t.stream, data); err != nil {
		return nil, fmt.Errorf("failed to read frame: %w", err)
	}
	return data, nil
}

func (t *quicTransport) Close() error {
	_ = t.stream.Close()
	return t.session.CloseWithError(0, "bridge closed")
}
