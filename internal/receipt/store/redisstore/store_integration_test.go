//go:build integration

package redisstore_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"tally/internal/receipt/models"
	"tally/internal/receipt/store/redisstore"
	"tally/pkg/platform/sentinel"
	"tally/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *redisstore.Store
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.store = redisstore.New(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) newReceipt() *models.Receipt {
	var r models.Receipt
	s.Require().NoError(json.Unmarshal([]byte(`{
		"retailer": "M&M Corner Market",
		"purchaseDate": "2022-03-20",
		"purchaseTime": "14:33",
		"items": [{"shortDescription": "Gatorade", "price": "2.25"}],
		"total": "2.25"
	}`), &r))
	return &r
}

func (s *RedisStoreSuite) TestSaveAndFind() {
	ctx := context.Background()
	id := uuid.New()

	s.Require().NoError(s.store.Save(ctx, id, s.newReceipt()))

	found, err := s.store.Find(ctx, id)
	s.Require().NoError(err)
	s.Equal("M&M Corner Market", found.Retailer)
	s.Equal("2022-03-20", found.PurchaseDate.String())
	s.Equal("14:33", found.PurchaseTime.String())
	s.Equal("2.25", found.Total.String())
}

func (s *RedisStoreSuite) TestFindUnknownID() {
	_, err := s.store.Find(context.Background(), uuid.New())
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RedisStoreSuite) TestWriteOnce() {
	ctx := context.Background()
	id := uuid.New()

	s.Require().NoError(s.store.Save(ctx, id, s.newReceipt()))

	err := s.store.Save(ctx, id, s.newReceipt())
	s.Require().ErrorIs(err, sentinel.ErrConflict)
}
