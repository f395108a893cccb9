// Package bridge implements the host scene binding over a network transport,
// for driving a 3D application running out of process. Each binding call is a
// JSON command answered by an ack; host-side failures surface to the caller
// verbatim.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/motus3d/motus/internal/core/linalg"
	"github.com/motus3d/motus/internal/core/observability/log"
	"github.com/motus3d/motus/internal/core/scene"
)

var _ scene.Host = (*Bridge)(nil)

// Bridge is a scene.Host whose calls are shipped to a remote host process.
type Bridge struct {
	transport Transport
	log       log.Log
	keepalive time.Duration

	seq    atomic.Uint64
	closed atomic.Bool

	// rpcMu keeps each command/ack exchange atomic on the transport.
	rpcMu sync.Mutex
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithKeepalive sets the idle ping interval used by Run.
func WithKeepalive(d time.Duration) Option {
	return func(b *Bridge) { b.keepalive = d }
}

// New creates a bridge over an established transport.
func New(t Transport, lg log.Log, opts ...Option) *Bridge {
	b := &Bridge{
		transport: t,
		log:       lg,
		keepalive: 15 * time.Second,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run supervises the bridge until ctx is done: it keeps the connection alive
// with periodic pings and closes the transport on exit. Run is optional; the
// binding calls work without it for short sessions.
func (b *Bridge) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		return b.Close()
	})
	g.Go(func() error {
		ticker := time.NewTicker(b.keepalive)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if _, err := b.call(ctx, Command{Op: OpPing}); err != nil {
					if b.closed.Load() {
						return nil
					}
					return fmt.Errorf("bridge keepalive failed: %w", err)
				}
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, ErrBridgeClosed) {
		return nil
	}
	return err
}

// Close shuts the transport down. Further calls fail with ErrBridgeClosed.
func (b *Bridge) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}
	return b.transport.Close()
}

func (b *Bridge) CreateObject(ctx context.Context, name string, kind scene.ObjectKind) (scene.Handle, error) {
	ack, err := b.call(ctx, Command{Op: OpCreateObject, Name: name, Kind: string(kind)})
	if err != nil {
		return "", err
	}
	return scene.Handle(ack.Handle), nil
}

func (b *Bridge) SetPosition(ctx context.Context, h scene.Handle, pos linalg.Vector) error {
	p := [4]float64{pos.X, pos.Y, pos.Z, pos.W}
	_, err := b.call(ctx, Command{Op: OpSetPosition, Handle: string(h), Position: &p})
	return err
}

func (b *Bridge) Select(ctx context.Context, h scene.Handle) error {
	_, err := b.call(ctx, Command{Op: OpSelect, Handle: string(h)})
	return err
}

func (b *Bridge) DeselectAll(ctx context.Context) error {
	_, err := b.call(ctx, Command{Op: OpDeselectAll})
	return err
}

func (b *Bridge) InsertKeyframe(ctx context.Context, h scene.Handle, frame int, property string) error {
	_, err := b.call(ctx, Command{Op: OpInsertKeyframe, Handle: string(h), Frame: frame, Property: property})
	return err
}

// call performs one command/ack round trip.
func (b *Bridge) call(ctx context.Context, cmd Command) (Ack, error) {
	if b.closed.Load() {
		return Ack{}, ErrBridgeClosed
	}
	if err := ctx.Err(); err != nil {
		return Ack{}, err
	}

	b.rpcMu.Lock()
	defer b.rpcMu.Unlock()

	cmd.Seq = b.seq.Add(1)

	data, err := EncodeCommand(cmd)
	if err != nil {
		return Ack{}, err
	}
	if err = b.transport.Send(data); err != nil {
		return Ack{}, err
	}

	reply, err := b.transport.Receive()
	if err != nil {
		return Ack{}, err
	}
	ack, err := DecodeAck(reply)
	if err != nil {
		return Ack{}, err
	}
	if ack.Seq != cmd.Seq {
		return Ack{}, fmt.Errorf("%w: sent %d, got %d", ErrSeqMismatch, cmd.Seq, ack.Seq)
	}
	if !ack.OK {
		// The remote host's own failure, passed through unmodified.
		return Ack{}, errors.New(ack.Error)
	}

	b.log.Debug("bridge command acknowledged",
		log.String("op", cmd.Op),
		log.Uint64("seq", cmd.Seq),
	)
	return ack, nil
}
