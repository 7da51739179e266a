package contract

import (
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const masterChefABIJSON = `[
  {"inputs": [{"internalType": "uint256", "name": "_pid", "type": "uint256"}], "name": "poolInfo", "outputs": [
    {"internalType": "address", "name": "lpToken", "type": "address"},
    {"internalType": "uint256", "name": "allocPoint", "type": "uint256"},
    {"internalType": "uint256", "name": "lastRewardBlock", "type": "uint256"},
    {"internalType": "uint256", "name": "accRewardPerShare", "type": "uint256"},
    {"internalType": "address", "name": "rewardToken", "type": "address"}
  ], "stateMutability": "view", "type": "function"},
  {"inputs": [{"internalType": "address", "name": "_rewardToken", "type": "address"}], "name": "totalAllocPoints", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [{"internalType": "uint256", "name": "_pid", "type": "uint256"}, {"internalType": "address", "name": "_user", "type": "address"}], "name": "pendingReward", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [], "name": "totalLock", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [{"internalType": "address", "name": "_holder", "type": "address"}, {"internalType": "uint256", "name": "_pid", "type": "uint256"}], "name": "lockOf", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [{"internalType": "uint256", "name": "_pid", "type": "uint256"}, {"internalType": "address", "name": "_user", "type": "address"}], "name": "userInfo", "outputs": [
    {"internalType": "uint256", "name": "amount", "type": "uint256"},
    {"internalType": "uint256", "name": "rewardDebt", "type": "uint256"}
  ], "stateMutability": "view", "type": "function"},
  {"inputs": [{"internalType": "uint256", "name": "_pid", "type": "uint256"}], "name": "getNewRewardPerBlock", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [{"internalType": "uint256", "name": "_pid", "type": "uint256"}, {"internalType": "uint256", "name": "_amount", "type": "uint256"}, {"internalType": "address", "name": "_referrer", "type": "address"}], "name": "deposit", "outputs": [], "stateMutability": "nonpayable", "type": "function"},
  {"inputs": [{"internalType": "uint256", "name": "_pid", "type": "uint256"}, {"internalType": "uint256", "name": "_amount", "type": "uint256"}], "name": "withdraw", "outputs": [], "stateMutability": "nonpayable", "type": "function"},
  {"inputs": [{"internalType": "uint256", "name": "_pid", "type": "uint256"}], "name": "claimReward", "outputs": [], "stateMutability": "nonpayable", "type": "function"},
  {"inputs": [], "name": "exit", "outputs": [], "stateMutability": "nonpayable", "type": "function"}
]`

const erc20ABIJSON = `[
  {"inputs": [{"internalType": "address", "name": "account", "type": "address"}], "name": "balanceOf", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [], "name": "totalSupply", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [], "name": "decimals", "outputs": [{"internalType": "uint8", "name": "", "type": "uint8"}], "stateMutability": "view", "type": "function"},
  {"inputs": [], "name": "symbol", "outputs": [{"internalType": "string", "name": "", "type": "string"}], "stateMutability": "view", "type": "function"},
  {"inputs": [{"internalType": "address", "name": "owner", "type": "address"}, {"internalType": "address", "name": "spender", "type": "address"}], "name": "allowance", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [{"internalType": "address", "name": "spender", "type": "address"}, {"internalType": "uint256", "name": "amount", "type": "uint256"}], "name": "approve", "outputs": [{"internalType": "bool", "name": "", "type": "bool"}], "stateMutability": "nonpayable", "type": "function"}
]`

// The BSCX token adds a vesting lock on top of ERC20.
const bscxABIJSON = `[
  {"inputs": [{"internalType": "address", "name": "account", "type": "address"}], "name": "balanceOf", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [], "name": "totalSupply", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [], "name": "circulatingSupply", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [], "name": "decimals", "outputs": [{"internalType": "uint8", "name": "", "type": "uint8"}], "stateMutability": "view", "type": "function"},
  {"inputs": [{"internalType": "address", "name": "_holder", "type": "address"}], "name": "canUnlockAmount", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [{"internalType": "address", "name": "_holder", "type": "address"}], "name": "lockOf", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [], "name": "unlock", "outputs": [], "stateMutability": "nonpayable", "type": "function"},
  {"inputs": [{"internalType": "address", "name": "spender", "type": "address"}, {"internalType": "uint256", "name": "amount", "type": "uint256"}], "name": "approve", "outputs": [{"internalType": "bool", "name": "", "type": "bool"}], "stateMutability": "nonpayable", "type": "function"}
]`

const xSushiStakingABIJSON = `[
  {"inputs": [{"internalType": "uint256", "name": "_amount", "type": "uint256"}], "name": "enter", "outputs": [], "stateMutability": "nonpayable", "type": "function"},
  {"inputs": [{"internalType": "uint256", "name": "_share", "type": "uint256"}], "name": "leave", "outputs": [], "stateMutability": "nonpayable", "type": "function"},
  {"inputs": [], "name": "totalSupply", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
  {"inputs": [{"internalType": "address", "name": "account", "type": "address"}], "name": "balanceOf", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"}
]`

const makerABIJSON = `[
  {"inputs": [{"internalType": "address", "name": "token0", "type": "address"}, {"internalType": "address", "name": "token1", "type": "address"}], "name": "convert", "outputs": [], "stateMutability": "nonpayable", "type": "function"}
]`

type lazyABI struct {
	json   string
	once   sync.Once
	parsed abi.ABI
	err    error
}

func (l *lazyABI) get() (abi.ABI, error) {
	l.once.Do(func() {
		l.parsed, l.err = abi.JSON(strings.NewReader(l.json))
	})
	return l.parsed, l.err
}

var (
	masterChefABI    = &lazyABI{json: masterChefABIJSON}
	erc20ABI         = &lazyABI{json: erc20ABIJSON}
	bscxABI          = &lazyABI{json: bscxABIJSON}
	xSushiStakingABI = &lazyABI{json: xSushiStakingABIJSON}
	makerABI         = &lazyABI{json: makerABIJSON}
)

// MasterChefABI returns the parsed MasterChef ABI.
func MasterChefABI() (abi.ABI, error) { return masterChefABI.get() }

// ERC20ABI returns the parsed ERC20 / LP pair ABI.
func ERC20ABI() (abi.ABI, error) { return erc20ABI.get() }

// BSCXABI returns the parsed BSCX token ABI.
func BSCXABI() (abi.ABI, error) { return bscxABI.get() }

// XSushiStakingABI returns the parsed BSCXSafe staking ABI.
func XSushiStakingABI() (abi.ABI, error) { return xSushiStakingABI.get() }

// MakerABI returns the parsed maker ABI.
func MakerABI() (abi.ABI, error) { return makerABI.get() }
