package registry

import "github.com/Masterminds/semver/v3"

var (
	Version1_0_0 = semver.MustParse("1.0.0")
	Version1_2_0 = semver.MustParse("1.2.0")
)

const (
	// Token standards
	ERC20Token  ContractType = "ERC20Token"
	ERC721Token ContractType = "ERC721Token"
	WETH9       ContractType = "WETH9"

	// Protocols
	UniswapUniversalRouter ContractType = "UniswapUniversalRouter"
	SafeProxy              ContractType = "SafeProxy"
)
