package core

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
)

// rawHeaderLen is the size of the fixed-width portion of the canonical
// message encoding: version(1) + nonce(4) + origin(4) + sender(32) +
// destination(4) + recipient(32).
const rawHeaderLen = 77

// Message is the protocol-neutral cross-chain message envelope. Sender and
// recipient are 32-byte identifiers; origin and destination are domain IDs.
type Message struct {
	Version     uint8
	Nonce       uint32
	Origin      uint32
	Sender      common.Hash
	Destination uint32
	Recipient   common.Hash
	Body        []byte
}

// Raw returns the canonical byte encoding of the message. Integer fields are
// big-endian; the body is appended unframed.
func (m *Message) Raw() []byte {
	buf := make([]byte, 0, rawHeaderLen+len(m.Body))
	buf = append(buf, m.Version)
	buf = binary.BigEndian.AppendUint32(buf, m.Nonce)
	buf = binary.BigEndian.AppendUint32(buf, m.Origin)
	buf = append(buf, m.Sender.Bytes()...)
	buf = binary.BigEndian.AppendUint32(buf, m.Destination)
	buf = append(buf, m.Recipient.Bytes()...)
	buf = append(buf, m.Body...)

	return buf
}
