//go:build integration

package cheater_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"apply/internal/applicationform/store/cheater"
	id "apply/pkg/domain"
	"apply/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *cheater.Redis
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.store = cheater.NewRedis(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestMembership() {
	ctx := context.Background()
	applicant := id.ApplicantID(uuid.New())

	flagged, err := s.store.IsCheater(ctx, applicant)
	s.Require().NoError(err)
	s.False(flagged)

	s.Require().NoError(s.store.Add(ctx, applicant))
	flagged, err = s.store.IsCheater(ctx, applicant)
	s.Require().NoError(err)
	s.True(flagged)

	s.Run("list is shared between store instances", func() {
		other := cheater.NewRedis(s.redis.Client)
		flagged, err := other.IsCheater(ctx, applicant)
		s.Require().NoError(err)
		s.True(flagged)
	})

	s.Run("custom key isolates lists", func() {
		isolated := cheater.NewRedis(s.redis.Client, cheater.WithKey("apply:test:cheaters"))
		flagged, err := isolated.IsCheater(ctx, applicant)
		s.Require().NoError(err)
		s.False(flagged)
	})

	s.Require().NoError(s.store.Remove(ctx, applicant))
	flagged, err = s.store.IsCheater(ctx, applicant)
	s.Require().NoError(err)
	s.False(flagged)
}
