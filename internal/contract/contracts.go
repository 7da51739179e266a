package contract

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"launchpool/internal/model"
	"launchpool/internal/pools"
)

// Contracts is the per-chain session: protocol contracts plus per-pool handles.
type Contracts struct {
	ChainID   uint64
	Addresses pools.ContractAddresses

	backend       Backend
	masterChef    *Contract
	sushi         *Contract
	xSushiStaking *Contract
	maker         *Contract
	farms         []Farm
}

// Farm is a farm view model together with its contract handles.
type Farm struct {
	model.Farm
	LPContract     *Contract
	TokenContract  *Contract
	Token2Contract *Contract
}

// NewContracts binds every protocol and pool contract for chainID.
func NewContracts(chainID uint64, backend Backend, list []model.Pool) (*Contracts, error) {
	addrs, err := pools.AddressesFor(chainID)
	if err != nil {
		return nil, err
	}

	chefABI, err := MasterChefABI()
	if err != nil {
		return nil, fmt.Errorf("parse masterchef abi: %w", err)
	}
	tokenABI, err := BSCXABI()
	if err != nil {
		return nil, fmt.Errorf("parse bscx abi: %w", err)
	}
	safeABI, err := XSushiStakingABI()
	if err != nil {
		return nil, fmt.Errorf("parse xsushi abi: %w", err)
	}
	makerParsed, err := MakerABI()
	if err != nil {
		return nil, fmt.Errorf("parse maker abi: %w", err)
	}
	pairABI, err := ERC20ABI()
	if err != nil {
		return nil, fmt.Errorf("parse erc20 abi: %w", err)
	}

	s := &Contracts{
		ChainID:       chainID,
		Addresses:     addrs,
		backend:       backend,
		masterChef:    New(addrs.MasterChef, chefABI, backend),
		sushi:         New(addrs.Sushi, tokenABI, backend),
		xSushiStaking: New(addrs.XSushi, safeABI, backend),
		maker:         New(addrs.Maker, makerParsed, backend),
	}

	s.farms = make([]Farm, 0, len(list))
	for _, p := range list {
		lp, ok := p.LPAddresses[chainID]
		if !ok {
			return nil, fmt.Errorf("pool %d (%s) has no lp address on chain %d", p.PID, p.Symbol, chainID)
		}
		token := p.TokenAddresses[chainID]
		token2 := p.Token2Addresses[chainID]
		s.farms = append(s.farms, Farm{
			Farm:           farmView(p, lp, token, token2, addrs.Sushi),
			LPContract:     New(lp, pairABI, backend),
			TokenContract:  New(token, pairABI, backend),
			Token2Contract: New(token2, pairABI, backend),
		})
	}

	return s, nil
}

func farmView(p model.Pool, lp, token, token2, earn common.Address) model.Farm {
	return model.Farm{
		PID:                 p.PID,
		Project:             p.Project,
		ID:                  p.Symbol,
		Name:                p.Name,
		LPToken:             p.Symbol,
		LPTokenAddress:      lp,
		TokenAddress:        token,
		Token2Address:       token2,
		TokenSymbol:         p.TokenSymbol,
		Token2Symbol:        p.Token2Symbol,
		Symbol:              p.Symbol,
		SymbolShort:         p.SymbolShort,
		IsHot:               p.IsHot,
		IsNew:               p.IsNew,
		EarnToken:           pools.EarnToken,
		EarnTokenAddress:    earn,
		Icon:                p.Icon,
		Icon2:               p.Icon2,
		Description:         p.Description,
		Protocol:            p.Protocol,
		IconProtocol:        p.IconProtocol,
		PairLink:            p.PairLink,
		AddLiquidityLink:    p.AddLiquidityLink,
		RemoveLiquidityLink: p.RemoveLiquidityLink,
	}
}

func (s *Contracts) MasterChefAddress() common.Address {
	if s == nil {
		return common.Address{}
	}
	return s.Addresses.MasterChef
}

func (s *Contracts) SushiAddress() common.Address {
	if s == nil {
		return common.Address{}
	}
	return s.Addresses.Sushi
}

// XSushiAddress is the BSCXSafe staking contract.
func (s *Contracts) XSushiAddress() common.Address {
	if s == nil {
		return common.Address{}
	}
	return s.Addresses.XSushi
}

func (s *Contracts) MakerAddress() common.Address {
	if s == nil {
		return common.Address{}
	}
	return s.Addresses.Maker
}

func (s *Contracts) MasterChef() *Contract {
	if s == nil {
		return nil
	}
	return s.masterChef
}

func (s *Contracts) Sushi() *Contract {
	if s == nil {
		return nil
	}
	return s.sushi
}

func (s *Contracts) XSushiStaking() *Contract {
	if s == nil {
		return nil
	}
	return s.xSushiStaking
}

func (s *Contracts) Maker() *Contract {
	if s == nil {
		return nil
	}
	return s.maker
}

// ERC20 binds an arbitrary token or LP pair address.
func (s *Contracts) ERC20(address common.Address) (*Contract, error) {
	if s == nil {
		return nil, ErrNotConfigured
	}
	parsed, err := ERC20ABI()
	if err != nil {
		return nil, fmt.Errorf("parse erc20 abi: %w", err)
	}
	return New(address, parsed, s.backend), nil
}

// Farms returns the farm view models. A nil session has no farms.
func (s *Contracts) Farms() []Farm {
	if s == nil {
		return nil
	}
	out := make([]Farm, len(s.farms))
	copy(out, s.farms)
	return out
}

// Farm returns the first farm with pid.
func (s *Contracts) Farm(pid uint64) (Farm, error) {
	if s != nil {
		for _, f := range s.farms {
			if f.PID == pid {
				return f, nil
			}
		}
	}
	return Farm{}, fmt.Errorf("pid %d: %w", pid, pools.ErrPoolNotFound)
}
