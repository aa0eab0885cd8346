// Package registry maps known contract deployments to contract-type tags.
//
// Protocol visualizers use it to restrict their claims to known
// deployments instead of matching on selector alone, which would
// false-positive on unrelated contracts reusing a common selector.
// The registry is populated once at process initialization from static
// configuration and is read-only afterward, so concurrent lookups need no
// synchronization.
package registry

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ContractType tags a class of contract, e.g. "ERC20Token".
type ContractType string

// TypeAndVersion identifies a contract class plus an optional deployed
// version. Many addresses may share one TypeAndVersion.
type TypeAndVersion struct {
	Type    ContractType
	Version *semver.Version
}

// MustTypeAndVersion builds a TypeAndVersion, panicking on an invalid
// version string. Intended for static registration tables.
func MustTypeAndVersion(t ContractType, version string) TypeAndVersion {
	return TypeAndVersion{Type: t, Version: semver.MustParse(version)}
}

func (tv TypeAndVersion) String() string {
	if tv.Version == nil {
		return string(tv.Type)
	}

	return string(tv.Type) + " " + tv.Version.String()
}

// ContractTypeRegistry is a multi-map from (chain ID, address) to a
// contract type tag. Addresses compare case-insensitively so checksummed
// and lowercase forms both resolve.
type ContractTypeRegistry struct {
	byChain map[uint64]map[string]TypeAndVersion
}

func New() *ContractTypeRegistry {
	return &ContractTypeRegistry{byChain: make(map[uint64]map[string]TypeAndVersion)}
}

// Register records addresses for a contract type on one chain. Call only
// during initialization; the registry must not be mutated once lookups
// begin.
func (r *ContractTypeRegistry) Register(chainID uint64, tv TypeAndVersion, addresses ...string) {
	chain, ok := r.byChain[chainID]
	if !ok {
		chain = make(map[string]TypeAndVersion)
		r.byChain[chainID] = chain
	}
	for _, addr := range addresses {
		chain[strings.ToLower(addr)] = tv
	}
}

// Lookup returns the contract type registered for an address on a chain.
func (r *ContractTypeRegistry) Lookup(chainID uint64, address string) (TypeAndVersion, bool) {
	chain, ok := r.byChain[chainID]
	if !ok {
		return TypeAndVersion{}, false
	}
	tv, ok := chain[strings.ToLower(address)]

	return tv, ok
}

// Is reports whether the address on the chain carries the given type tag.
func (r *ContractTypeRegistry) Is(chainID uint64, address string, t ContractType) bool {
	tv, ok := r.Lookup(chainID, address)

	return ok && tv.Type == t
}

// KnownAddresses flattens the registry into chainID -> address -> tag for
// display-context annotations.
func (r *ContractTypeRegistry) KnownAddresses() map[uint64]map[string]string {
	out := make(map[uint64]map[string]string, len(r.byChain))
	for chainID, chain := range r.byChain {
		addrs := make(map[string]string, len(chain))
		for addr, tv := range chain {
			addrs[addr] = tv.String()
		}
		out[chainID] = addrs
	}

	return out
}
