package bridge

import (
	"encoding/json"
	"fmt"
)

// Wire operations. One command per host binding call, plus a keepalive.
const (
	OpCreateObject   = "create_object"
	OpSetPosition    = "set_position"
	OpSelect         = "select"
	OpDeselectAll    = "deselect_all"
	OpInsertKeyframe = "insert_keyframe"
	OpPing           = "ping"
)

// Command is one host binding call on the wire. Seq ties it to its Ack.
type Command struct {
	Seq      uint64      `json:"seq"`
	Op       string      `json:"op"`
	Name     string      `json:"name,omitempty"`
	Kind     string      `json:"kind,omitempty"`
	Handle   string      `json:"handle,omitempty"`
	Position *[4]float64 `json:"position,omitempty"`
	Frame    int         `json:"frame,omitempty"`
	Property string      `json:"property,omitempty"`
}

// Ack is the host's reply to a command. Error carries the host-side failure
// verbatim; the bridge passes it through unmodified.
type Ack struct {
	Seq    uint64 `json:"seq"`
	OK     bool   `json:"ok"`
	Handle string `json:"handle,omitempty"`
	Error  string `json:"error,omitempty"`
}

// EncodeCommand marshals a command for the wire.
func EncodeCommand(cmd Command) ([]byte, error) {
	return json.Marshal(cmd)
}

// DecodeAck unmarshals and sanity-checks an ack.
func DecodeAck(data []byte) (Ack, error) {
	var ack Ack
	if err := json.Unmarshal(data, &ack); err != nil {
		return Ack{}, fmt.Errorf("malformed ack: %w", err)
	}
	return ack, nil
}

// DecodeCommand unmarshals a command, for host-side consumers of the protocol.
func DecodeCommand(data []byte) (Command, error) {
	var cmd Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		return Command{}, fmt.Errorf("malformed command: %w", err)
	}
	return cmd, nil
}

// EncodeAck marshals an ack, for host-side consumers of the protocol.
func EncodeAck(ack Ack) ([]byte, error) {
	return json.Marshal(ack)
}
