package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/magpress/payment-service/internal/events"
	"github.com/magpress/payment-service/internal/events/mocks"
	"github.com/magpress/payment-service/internal/ledger"
	"github.com/magpress/payment-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestExtensionHandler_SuccessExtendsByOneYear(t *testing.T) {
	mockRepo := mocks.NewMockSubscriberRepo(t)
	mockLedger := mocks.NewMockLedger(t)
	handler := events.NewExtensionHandler(mockRepo, mockLedger)

	ctx := context.Background()
	confirmedAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	until := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	subscriber := &models.Subscriber{ID: "s1", Username: "alice", SubscribedUntil: until}

	mockRepo.EXPECT().
		GetByID(ctx, "s1").
		Return(subscriber, nil).
		Once()

	mockRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(s *models.Subscriber) bool {
			return s.SubscribedUntil.Equal(until.AddDate(1, 0, 0))
		}), "s1").
		Return(nil).
		Once()

	mockLedger.EXPECT().
		ResolveAttempt(ctx, "s1", true, confirmedAt).
		Return(ledger.ErrNoPendingAttempt).
		Once()

	err := handler.Handle(ctx, models.ChargeOutcome{SubscriberID: "s1", Success: true, ConfirmedAt: confirmedAt})

	assert.NoError(t, err)
}

func TestExtensionHandler_FailureMarksAttemptFailed(t *testing.T) {
	mockRepo := mocks.NewMockSubscriberRepo(t)
	mockLedger := mocks.NewMockLedger(t)
	handler := events.NewExtensionHandler(mockRepo, mockLedger)

	ctx := context.Background()
	confirmedAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	mockLedger.EXPECT().
		ResolveAttempt(ctx, "s1", false, confirmedAt).
		Return(nil).
		Once()

	err := handler.Handle(ctx, models.ChargeOutcome{SubscriberID: "s1", Success: false, ConfirmedAt: confirmedAt})

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestExtensionHandler_UnknownSubscriber(t *testing.T) {
	mockRepo := mocks.NewMockSubscriberRepo(t)
	mockLedger := mocks.NewMockLedger(t)
	handler := events.NewExtensionHandler(mockRepo, mockLedger)

	ctx := context.Background()

	mockRepo.EXPECT().
		GetByID(ctx, "ghost").
		Return(nil, errors.New("record not found")).
		Once()

	err := handler.Handle(ctx, models.ChargeOutcome{SubscriberID: "ghost", Success: true, ConfirmedAt: time.Now().UTC()})

	assert.Error(t, err)
	mockLedger.AssertNotCalled(t, "ResolveAttempt", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExtensionHandler_ZeroSubscribedUntilExtendsFromConfirmation(t *testing.T) {
	mockRepo := mocks.NewMockSubscriberRepo(t)
	mockLedger := mocks.NewMockLedger(t)
	handler := events.NewExtensionHandler(mockRepo, mockLedger)

	ctx := context.Background()
	confirmedAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	subscriber := &models.Subscriber{ID: "s1", Username: "alice"}

	mockRepo.EXPECT().
		GetByID(ctx, "s1").
		Return(subscriber, nil).
		Once()

	mockRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(s *models.Subscriber) bool {
			return s.SubscribedUntil.Equal(confirmedAt.AddDate(1, 0, 0))
		}), "s1").
		Return(nil).
		Once()

	mockLedger.EXPECT().
		ResolveAttempt(ctx, "s1", true, confirmedAt).
		Return(nil).
		Once()

	err := handler.Handle(ctx, models.ChargeOutcome{SubscriberID: "s1", Success: true, ConfirmedAt: confirmedAt})

	assert.NoError(t, err)
}
