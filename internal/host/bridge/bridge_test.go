package bridge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motus3d/motus/internal/core/linalg"
	"github.com/motus3d/motus/internal/core/observability/log"
	"github.com/motus3d/motus/internal/core/scene"
)

// pipeTransport loops frames through an in-process fake host.
type pipeTransport struct {
	reply  func(Command) Ack
	queued [][]byte
	closed bool
}

func (p *pipeTransport) Send(data []byte) error {
	cmd, err := DecodeCommand(data)
	if err != nil {
		return err
	}
	ack := p.reply(cmd)
	out, err := EncodeAck(ack)
	if err != nil {
		return err
	}
	p.queued = append(p.queued, out)
	return nil
}

func (p *pipeTransport) Receive() ([]byte, error) {
	next := p.queued[0]
	p.queued = p.queued[1:]
	return next, nil
}

func (p *pipeTransport) Close() error {
	p.closed = true
	return nil
}

// echoHost acks every command, handing out sequential handles.
func echoHost() (*pipeTransport, *[]Command) {
	var seen []Command
	t := &pipeTransport{
		reply: func(cmd Command) Ack {
			seen = append(seen, cmd)
			return Ack{Seq: cmd.Seq, OK: true, Handle: "h-1"}
		},
	}
	return t, &seen
}

func TestBridge_CommandRoundTrip(t *testing.T) {
	transport, seen := echoHost()
	b := New(transport, log.Nop())
	ctx := context.Background()

	handle, err := b.CreateObject(ctx, "p_1", scene.KindEmpty)
	require.NoError(t, err)
	assert.Equal(t, scene.Handle("h-1"), handle)

	require.NoError(t, b.SetPosition(ctx, handle, linalg.Point3(1, 2, 3)))
	require.NoError(t, b.Select(ctx, handle))
	require.NoError(t, b.DeselectAll(ctx))
	require.NoError(t, b.InsertKeyframe(ctx, handle, 48, scene.PropertyLocation))

	cmds := *seen
	require.Len(t, cmds, 5)

	assert.Equal(t, OpCreateObject, cmds[0].Op)
	assert.Equal(t, "p_1", cmds[0].Name)
	assert.Equal(t, string(scene.KindEmpty), cmds[0].Kind)

	assert.Equal(t, OpSetPosition, cmds[1].Op)
	require.NotNil(t, cmds[1].Position)
	assert.Equal(t, [4]float64{1, 2, 3, 1}, *cmds[1].Position)

	assert.Equal(t, OpInsertKeyframe, cmds[4].Op)
	assert.Equal(t, 48, cmds[4].Frame)
	assert.Equal(t, scene.PropertyLocation, cmds[4].Property)

	// Sequence numbers are strictly increasing.
	for i := 1; i < len(cmds); i++ {
		assert.Greater(t, cmds[i].Seq, cmds[i-1].Seq)
	}
}

func TestBridge_HostErrorPassesThrough(t *testing.T) {
	transport := &pipeTransport{
		reply: func(cmd Command) Ack {
			return Ack{Seq: cmd.Seq, OK: false, Error: "host object missing"}
		},
	}
	b := New(transport, log.Nop())

	err := b.DeselectAll(context.Background())
	require.Error(t, err)
	assert.EqualError(t, err, "host object missing")
}

func TestBridge_SeqMismatch(t *testing.T) {
	transport := &pipeTransport{
		reply: func(cmd Command) Ack {
			return Ack{Seq: cmd.Seq + 7, OK: true}
		},
	}
	b := New(transport, log.Nop())

	err := b.DeselectAll(context.Background())
	assert.ErrorIs(t, err, ErrSeqMismatch)
}

func TestBridge_Close(t *testing.T) {
	transport, _ := echoHost()
	b := New(transport, log.Nop())

	require.NoError(t, b.Close())
	assert.True(t, transport.closed)

	err := b.DeselectAll(context.Background())
	assert.ErrorIs(t, err, ErrBridgeClosed)

	assert.NoError(t, b.Close(), "closing twice is harmless")
}

func TestBridge_RunStopsWithContext(t *testing.T) {
	transport, _ := echoHost()
	b := New(transport, log.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, b.Run(ctx))
	assert.True(t, transport.closed)
}

func TestMessages_CommandRoundTrip(t *testing.T) {
	pos := [4]float64{1, 2, 3, 1}
	in := Command{Seq: 9, Op: OpSetPosition, Handle: "h-1", Position: &pos}

	data, err := EncodeCommand(in)
	require.NoError(t, err)
	out, err := DecodeCommand(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = DecodeAck([]byte("{nope"))
	assert.Error(t, err)
}
