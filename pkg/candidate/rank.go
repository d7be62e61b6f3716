package candidate

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/artem13815/recruitment/pkg/auth"
)

// RankForOffer scores every application of an offer and orders them by match
// percentage, best first. Equal scores keep the older application first.
func (s *service) RankForOffer(ctx context.Context, actor auth.Actor, offerID uuid.UUID) ([]MatchResult, error) {
	offer, err := s.offers.Get(ctx, actor, offerID)
	if err != nil {
		return nil, err
	}
	apps, err := s.repo.ListAllByOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	reqs := offer.MatchInput()
	started := time.Now()

	results := make([]MatchResult, len(apps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range apps {
		g.Go(func() error {
			res, err := s.score(gctx, apps[i], reqs)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Report.MatchPercentage != b.Report.MatchPercentage {
			return a.Report.MatchPercentage > b.Report.MatchPercentage
		}
		return a.Application.CreatedAt.Before(b.Application.CreatedAt)
	})
	s.log.Debug("ranked applications", "offer", offerID, "count", len(results), "took", time.Since(started))
	return results, nil
}
