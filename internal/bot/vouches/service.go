// Package vouches implements the vouch lifecycle rules on top of the store:
// creation with self-vouch rejection, per-target listing, admin bulk removal,
// and the leaderboard query.
package vouches

import (
	"context"

	"github.com/grandx/vouchbot/internal/bot/models"
	vouchrepo "github.com/grandx/vouchbot/internal/bot/repositories/vouches"
	"github.com/grandx/vouchbot/internal/common"
)

// DefaultTopSize is the leaderboard length rendered by the topvouched command.
const DefaultTopSize = 5

type Service struct {
	repo vouchrepo.Repository
}

func NewService(repo vouchrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Create records a vouch by author for target. It rejects self-vouching with
// common.ErrSelfVouch before touching the store; no record is written in that
// case. The product value is stored as given.
func (s *Service) Create(ctx context.Context, targetUserID, authorUserID, product, feedback string) (int64, error) {
	if targetUserID == authorUserID {
		return 0, common.ErrSelfVouch
	}
	return s.repo.Create(ctx, targetUserID, authorUserID, product, feedback)
}

// List returns every vouch recorded for target, oldest first.
func (s *Service) List(ctx context.Context, targetUserID string) ([]models.Vouch, error) {
	return s.repo.ListByTarget(ctx, targetUserID)
}

// RemoveAll deletes every vouch for target. Removing a target with no
// records succeeds and reports zero.
func (s *Service) RemoveAll(ctx context.Context, targetUserID string) (int64, error) {
	return s.repo.DeleteAllByTarget(ctx, targetUserID)
}

// Top returns the n most-vouched targets with their counts.
func (s *Service) Top(ctx context.Context, n int) ([]models.TopEntry, error) {
	return s.repo.TopN(ctx, n)
}
