package db

import (
	"context"
	"fmt"
	"math/rand/v2"

	"mesa-auction/internal/core/domain"
	"mesa-auction/internal/core/port"
)

const (
	seedPublishers  = 3
	seedAdvertisers = 5
)

// Seed loads demo verified publishers and funded advertisers into store.
// Records that already exist are left alone so Seed can run on every start.
// It returns the identities it created.
func Seed(ctx context.Context, store port.LedgerStore, r *rand.Rand) ([]domain.Identity, error) {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	var created []domain.Identity
	err := store.Update(ctx, func(tx port.LedgerTx) error {
		created = created[:0]

		for i := 1; i <= seedPublishers; i++ {
			id := domain.Identity(fmt.Sprintf("demo-publisher-%d", i))
			existing, err := tx.Publisher(ctx, id)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}
			err = tx.PutPublisher(ctx, domain.PublisherVerification{
				Publisher:       id,
				Verified:        true,
				DomainAuthority: 20 + r.Uint64N(80),
				MonthlyTraffic:  10_000 + r.Uint64N(1_000_000),
				ContentQuality:  300 + r.Uint64N(700),
				PayoutAddress:   string(id),
			})
			if err != nil {
				return err
			}
			created = append(created, id)
		}

		for i := 1; i <= seedAdvertisers; i++ {
			id := domain.Identity(fmt.Sprintf("demo-advertiser-%d", i))
			existing, err := tx.Advertiser(ctx, id)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}
			p := domain.NewAdvertiserProfile(id, 1_000_000+r.Uint64N(9_000_000), i%2 == 0)
			p.QualityScore = 400 + r.Uint64N(600)
			if err = tx.PutAdvertiser(ctx, p); err != nil {
				return err
			}
			created = append(created, id)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("seed ledger: %w", err)
	}
	return created, nil
}
