package core

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Domain identifies a ledger/network within the protocol. Domain IDs are
// protocol-assigned and independent of any chain's own chain ID.
type Domain struct {
	ID   uint32
	Name string
}

// String returns domain name and id "<name> (<id>)".
func (d Domain) String() string {
	return fmt.Sprintf("%s (%d)", d.Name, d.ID)
}

// ContractLocator identifies a deployed contract instance: the domain it
// lives on and its 32-byte on-chain address. Locators are supplied once at
// adapter construction and never mutated.
type ContractLocator struct {
	Domain  Domain
	Address common.Hash
}
