package dashboard

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"launchpool/internal/model"
	"launchpool/internal/pools"
	"launchpool/internal/referral"
)

var errNoStore = errors.New("no referral store configured")

// CaptureReferral stores the referral carried by a landing URL.
func (s *Service) CaptureReferral(ctx context.Context, rawURL string) (common.Address, bool, error) {
	if s.store == nil {
		return common.Address{}, false, errNoStore
	}
	addr, ok, err := referral.Capture(ctx, s.store, rawURL)
	if err != nil {
		return common.Address{}, false, err
	}
	if ok {
		s.logger.Info("referral captured", zap.String("referral", addr.Hex()))
	}
	return addr, ok, nil
}

// ReferralLink is account's shareable link.
func (s *Service) ReferralLink(account common.Address) string {
	return referral.Link(s.siteURL, account)
}

// Home builds the landing view for account; a zero account omits the
// referral link. An unknown head block counts as launched.
func (s *Service) Home(ctx context.Context, account common.Address) model.Home {
	h := model.Home{
		Price:       s.ReferencePrice(ctx),
		LaunchBlock: pools.StartRewardAtBlock,
		Launched:    true,
		Farms:       s.Farms(),
	}
	if s.blocks != nil {
		head, err := s.blocks.LatestBlockNumber(ctx)
		if err != nil {
			s.warn("read head block failed", err)
		} else {
			h.CurrentBlock = head
			h.Launched = head >= pools.StartRewardAtBlock
		}
	}
	if account != (common.Address{}) {
		h.Account = account.Hex()
		h.ReferralLink = s.ReferralLink(account)
		h.ReferralShort = referral.Shorten(account)
	}
	return h
}
