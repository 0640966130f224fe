package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"tally/internal/receipt/models"
	"tally/internal/receipt/store/memory"
	dErrors "tally/pkg/domain-errors"
)

type ReceiptServiceSuite struct {
	suite.Suite
	store   *memory.Store
	service *Service
	ctx     context.Context
}

func TestReceiptServiceSuite(t *testing.T) {
	suite.Run(t, new(ReceiptServiceSuite))
}

func (s *ReceiptServiceSuite) SetupTest() {
	s.store = memory.New()
	s.ctx = context.Background()

	var err error
	s.service, err = New(s.store, nil, nil)
	s.Require().NoError(err)
}

func (s *ReceiptServiceSuite) receiptFromJSON(payload string) *models.Receipt {
	var r models.Receipt
	s.Require().NoError(json.Unmarshal([]byte(payload), &r))
	return &r
}

func (s *ReceiptServiceSuite) validReceipt() *models.Receipt {
	return s.receiptFromJSON(`{
		"retailer": "M&M Corner Market",
		"purchaseDate": "2022-03-20",
		"purchaseTime": "14:33",
		"items": [
			{"shortDescription": "Gatorade", "price": "2.25"},
			{"shortDescription": "Gatorade", "price": "2.25"},
			{"shortDescription": "Gatorade", "price": "2.25"},
			{"shortDescription": "Gatorade", "price": "2.25"}
		],
		"total": "9.00"
	}`)
}

func (s *ReceiptServiceSuite) TestNew() {
	s.Run("nil store returns error", func() {
		_, err := New(nil, nil, nil)
		s.Error(err)
		s.Contains(err.Error(), "receipt store is required")
	})

	s.Run("valid store returns configured service", func() {
		svc, err := New(s.store, nil, nil)
		s.NoError(err)
		s.NotNil(svc)
	})
}

func (s *ReceiptServiceSuite) TestProcess() {
	s.Run("accepts a valid receipt and assigns a fresh ID", func() {
		id, err := s.service.Process(s.ctx, s.validReceipt())
		s.Require().NoError(err)
		s.NotEqual(uuid.Nil, id)

		other, err := s.service.Process(s.ctx, s.validReceipt())
		s.Require().NoError(err)
		s.NotEqual(id, other)
	})

	s.Run("rejects an invalid receipt with every violation", func() {
		rcpt := &models.Receipt{Retailer: " ", Total: models.MustMoney("0")}

		_, err := s.service.Process(s.ctx, rcpt)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		var de *dErrors.Error
		s.Require().ErrorAs(err, &de)
		s.Equal([]string{
			"Retailer cannot be empty or whitespace.",
			"Items must contain at least one item.",
			"Total must be greater than 0.",
		}, de.Violations)
	})

	s.Run("rejected receipts are never stored", func() {
		before := s.store.Len()
		_, err := s.service.Process(s.ctx, &models.Receipt{})
		s.Require().Error(err)
		s.Equal(before, s.store.Len())
	})
}

func (s *ReceiptServiceSuite) TestPoints() {
	s.Run("scores a stored receipt", func() {
		id, err := s.service.Process(s.ctx, s.validReceipt())
		s.Require().NoError(err)

		pts, err := s.service.Points(s.ctx, id)
		s.Require().NoError(err)
		s.Equal(109, pts)
	})

	s.Run("is deterministic", func() {
		id, err := s.service.Process(s.ctx, s.validReceipt())
		s.Require().NoError(err)

		first, err := s.service.Points(s.ctx, id)
		s.Require().NoError(err)
		second, err := s.service.Points(s.ctx, id)
		s.Require().NoError(err)
		s.Equal(first, second)
	})

	s.Run("unknown ID is CodeNotFound, never a generic error", func() {
		_, err := s.service.Points(s.ctx, uuid.New())
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.Contains(err.Error(), "no receipt found for ID")
	})

	s.Run("scoring fault surfaces as CodeInternal with the receipt ID", func() {
		svc, err := New(nilReceiptStore{}, nil, nil)
		s.Require().NoError(err)

		id := uuid.New()
		_, err = svc.Points(s.ctx, id)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
		s.Contains(err.Error(), "points calculation failed for receipt "+id.String())
	})
}

// nilReceiptStore resolves every lookup to a nil receipt, which faults the
// scoring rules.
type nilReceiptStore struct{}

func (nilReceiptStore) Save(context.Context, uuid.UUID, *models.Receipt) error {
	return nil
}

func (nilReceiptStore) Find(context.Context, uuid.UUID) (*models.Receipt, error) {
	return nil, nil
}
