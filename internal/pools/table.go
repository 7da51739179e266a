package pools

import (
	"github.com/ethereum/go-ethereum/common"

	"launchpool/internal/model"
)

const (
	ChainBSC        uint64 = 56
	ChainBSCTestnet uint64 = 97
)

const (
	SubtractGasLimit    = 100000
	StartRewardAtBlock  = 3525595
	NumberBlocksPerYear = 10512000

	// StartNewPoolAt is 2020-12-29 22:30 local launch time.
	StartNewPoolAt = 1609255800

	// RedeemActiveAt is the first unix second exit() is accepted.
	RedeemActiveAt = 1597172400

	// MaxApproval is the allowance granted by approve.
	MaxApproval = "999999999900000000000000000000000000000"

	// EarnToken is the reward token of every farm.
	EarnToken = "bscx"
)

// Projects lists display metadata by project tag.
var Projects = map[string]model.Project{
	"BSCX": {
		Name: "BSCX",
		Logo: "https://nextyezpay.s3-ap-southeast-1.amazonaws.com/bscx.png",
	},
	"ZD": {
		Name: "ezDeFi",
		Logo: "https://github.com/ezDeFi/ezdefi-media/blob/master/ezdefi-logo/icon.png",
	},
}

// ContractAddresses holds the protocol contracts deployed on one chain.
type ContractAddresses struct {
	Sushi      common.Address `json:"sushi"`
	XSushi     common.Address `json:"xsushi"`
	Maker      common.Address `json:"maker"`
	MasterChef common.Address `json:"master_chef"`
	WETH       common.Address `json:"weth"`
}

var contractAddresses = map[uint64]ContractAddresses{
	ChainBSC: {
		Sushi:      common.HexToAddress("0x5ac52ee5b2a633895292ff6d8a89bb9190451587"),
		XSushi:     common.HexToAddress("0xF1CE70C337EcCD47A998be0Bb07E49188Bc60A3c"),
		Maker:      common.HexToAddress("0xE162A4ac31086bb0B135c2bFE6434BA22b759c59"),
		MasterChef: common.HexToAddress("0x1070B9a998C4457C5f393e389F275012e91b31d2"),
		WETH:       common.HexToAddress("0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c"),
	},
	ChainBSCTestnet: {
		Sushi:      common.HexToAddress("0xEFceA9c937D8a4c91244F16dBA188C33F27A7Dba"),
		XSushi:     common.HexToAddress("0x5838ef045E4125aE63bE5CD9752cF007B9E82ceD"),
		Maker:      common.HexToAddress("0xefC5f524F40bda7481E0714349068c547cC9F08d"),
		MasterChef: common.HexToAddress("0xD79D36EC312ba78543Fc4A15249A5EFf7afdD253"),
		WETH:       common.HexToAddress("0xae13d989dac2f0debff460ac112a837c89baa7cd"),
	},
}

const (
	bscxLogo  = "https://nextyezpay.s3-ap-southeast-1.amazonaws.com/bscx.png"
	wbnbLogo  = "https://raw.githubusercontent.com/trustwallet/assets/master/blockchains/smartchain/assets/0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c/logo.png"
	swapBase  = "https://swap.bscex.org/#/"
	bscxToken = "0x5Ac52EE5b2a633895292Ff6d8A89bB9190451587"
	busdToken = "0xe9e7CEA3DedcA5984780Bafc599bD69ADd087D56"
	wbnbToken = "0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c"
)

var bscxAddresses = map[uint64]common.Address{
	ChainBSC:        common.HexToAddress("0x5ac52ee5b2a633895292ff6d8a89bb9190451587"),
	ChainBSCTestnet: common.HexToAddress("0x7d7f7bbc88239cc2463797632faf94aa1088c7d2"),
}

// zdPool is listed three times; every listing is a farm of its own.
var zdPool = model.Pool{
	PID:     1,
	Project: "ZD",
	LPAddresses: map[uint64]common.Address{
		ChainBSC:        common.HexToAddress("0x20781bc3701c5309ac75291f5d09bdc23d7b7fa8"),
		ChainBSCTestnet: common.HexToAddress("0x8390ba50006860538936c96c1f283019fbe72bfd"),
	},
	TokenAddresses: bscxAddresses,
	Token2Addresses: map[uint64]common.Address{
		ChainBSC:        common.HexToAddress("0xbb4cdb9cbd36b01bd1cbaebf2de08d9173bc095c"),
		ChainBSCTestnet: common.HexToAddress("0xed24fc36d5ee211ea25a80239fb8c4cfd80f12ee"),
	},
	Name:                "BSCX - ZD 2",
	Symbol:              "BSCX-ZD 2 LP",
	SymbolShort:         "BSCX-ZD",
	Description:         "Deposit BSCX-ZD LP Earn BSCX",
	TokenSymbol:         "BSCX",
	Token2Symbol:        "ZD",
	Icon:                bscxLogo,
	Icon2:               wbnbLogo,
	IsHot:               true,
	IsNew:               true,
	Protocol:            "BSCEX",
	IconProtocol:        bscxLogo,
	PairLink:            "/",
	AddLiquidityLink:    swapBase + "add/" + bscxToken + "/" + wbnbToken,
	RemoveLiquidityLink: swapBase + "remove/" + bscxToken + "/" + wbnbToken,
}

var supportedPools = []model.Pool{
	{
		PID:     0,
		Project: "BSCX",
		LPAddresses: map[uint64]common.Address{
			ChainBSC:        common.HexToAddress("0xaAc5ee3361dA99d3770ff480fC0E2686FfEba302"),
			ChainBSCTestnet: common.HexToAddress("0xaC6A00ec0224cC582AFC6c9119fc80D4466238d3"),
		},
		TokenAddresses: bscxAddresses,
		Token2Addresses: map[uint64]common.Address{
			ChainBSC:        common.HexToAddress("0xe9e7cea3dedca5984780bafc599bd69add087d56"),
			ChainBSCTestnet: common.HexToAddress("0xae13d989dac2f0debff460ac112a837c89baa7cd"),
		},
		Name:                "BSCX - BUSD",
		Symbol:              "BSCX-BUSD LP",
		SymbolShort:         "BSCX-BUSD",
		Description:         "Deposit BSCX-BUSD LP Earn BSCX",
		TokenSymbol:         "BSCX",
		Token2Symbol:        "BUSD",
		Icon:                bscxLogo,
		Icon2:               "https://s2.coinmarketcap.com/static/img/coins/128x128/4687.png",
		IsHot:               true,
		IsNew:               true,
		Protocol:            "BSCEX",
		IconProtocol:        bscxLogo,
		PairLink:            "/",
		AddLiquidityLink:    swapBase + "add/" + busdToken + "/" + bscxToken,
		RemoveLiquidityLink: swapBase + "remove/" + busdToken + "/" + bscxToken,
	},
	{
		PID:     1,
		Project: "BSCX",
		LPAddresses: map[uint64]common.Address{
			ChainBSC:        common.HexToAddress("0x20781bc3701c5309ac75291f5d09bdc23d7b7fa8"),
			ChainBSCTestnet: common.HexToAddress("0x8390ba50006860538936c96c1f283019fbe72bfd"),
		},
		TokenAddresses: bscxAddresses,
		Token2Addresses: map[uint64]common.Address{
			ChainBSC:        common.HexToAddress("0xbb4cdb9cbd36b01bd1cbaebf2de08d9173bc095c"),
			ChainBSCTestnet: common.HexToAddress("0xed24fc36d5ee211ea25a80239fb8c4cfd80f12ee"),
		},
		Name:                "BSCX - BUSD 2",
		Symbol:              "BSCX-BUSD 2 LP",
		SymbolShort:         "BSCX-BUSD",
		Description:         "Deposit BSCX-BUSD LP Earn BSCX",
		TokenSymbol:         "BSCX",
		Token2Symbol:        "BUSD",
		Icon:                bscxLogo,
		Icon2:               wbnbLogo,
		IsHot:               true,
		IsNew:               true,
		Protocol:            "BSCEX",
		IconProtocol:        bscxLogo,
		PairLink:            "/",
		AddLiquidityLink:    swapBase + "add/" + bscxToken + "/" + wbnbToken,
		RemoveLiquidityLink: swapBase + "remove/" + bscxToken + "/" + wbnbToken,
	},
	zdPool,
	zdPool,
	zdPool,
}
