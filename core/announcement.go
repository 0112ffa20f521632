package core

import "github.com/ethereum/go-ethereum/common"

// Announcement is a validator's publication of where its off-chain
// attestation data can be retrieved.
type Announcement struct {
	Validator       common.Address
	StorageLocation string
}

// SignedAnnouncement carries an announcement and the validator's signature
// over it. Adapters forward the signature untouched; verification belongs to
// the contract.
type SignedAnnouncement struct {
	Value     Announcement
	Signature []byte
}
