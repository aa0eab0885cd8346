// Package uniswap visualizes calls to the Uniswap Universal Router.
package uniswap

import "github.com/clearsign-labs/clearsign/registry"

// UniversalRouterAddress is the Universal Router V1.2 deployment, shared
// across the chains listed in UniversalRouterChains.
//
// Source: https://github.com/Uniswap/universal-router/tree/main/deploy-addresses
const UniversalRouterAddress = "0x3fC91A3afd70395Cd496C647d5a6CC9D4B2b7FAD"

// UniversalRouterChains lists the EVM chain IDs where the V1.2 router is
// deployed: Ethereum, Optimism, Polygon, Base, Arbitrum One.
var UniversalRouterChains = []uint64{1, 10, 137, 8453, 42161}

// RegisterDeployments records the known router deployments in a contract
// type registry, for gating the visualizer's claims.
func RegisterDeployments(reg *registry.ContractTypeRegistry) {
	tv := registry.TypeAndVersion{Type: registry.UniswapUniversalRouter, Version: registry.Version1_2_0}
	for _, chainID := range UniversalRouterChains {
		reg.Register(chainID, tv, UniversalRouterAddress)
	}
}
