package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/magpress/payment-service/internal/ledger"
	"github.com/magpress/payment-service/internal/models"
	"github.com/magpress/payment-service/internal/notify"
	"github.com/magpress/payment-service/internal/service"
	"github.com/magpress/payment-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newConfirmationService(t *testing.T) (*service.ConfirmationService, *mocks.MockSubscriberRepo, *mocks.MockLedger, *mocks.MockOutcomeBus, *mocks.MockNotifier) {
	mockRepo := mocks.NewMockSubscriberRepo(t)
	mockLedger := mocks.NewMockLedger(t)
	mockBus := mocks.NewMockOutcomeBus(t)
	mockNotifier := mocks.NewMockNotifier(t)
	svc := service.NewConfirmationService(mockRepo, mockLedger, mockBus, mockNotifier)
	return svc, mockRepo, mockLedger, mockBus, mockNotifier
}

func confirmationMessage(t *testing.T, username string, success bool, timestamp time.Time) []byte {
	raw, err := json.Marshal(models.PaymentConfirmationMessage{
		Username:     username,
		Confirmation: models.Confirmation{Success: success, Timestamp: timestamp},
	})
	assert.NoError(t, err)
	return raw
}

func TestHandleConfirmation_Success(t *testing.T) {
	svc, mockRepo, mockLedger, mockBus, mockNotifier := newConfirmationService(t)

	ctx := context.Background()
	confirmedAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	raw := confirmationMessage(t, "alice", true, confirmedAt)

	subscribers := []models.Subscriber{{ID: "s1", Username: "alice"}}

	mockRepo.EXPECT().
		GetBy(ctx, "username = ?", "alice").
		Return(&subscribers, nil).
		Once()

	mockLedger.EXPECT().
		ResolveAttempt(ctx, "s1", true, confirmedAt).
		Return(nil).
		Once()

	mockNotifier.EXPECT().
		Publish("s1", notify.Payload{Type: notify.TypePostPayments, Message: string(raw)}).
		Once()

	mockBus.EXPECT().
		Fire(ctx, models.ChargeOutcome{SubscriberID: "s1", Success: true, ConfirmedAt: confirmedAt}).
		Once()

	err := svc.HandleConfirmation(ctx, raw)

	assert.NoError(t, err)
}

func TestHandleConfirmation_Declined(t *testing.T) {
	svc, mockRepo, mockLedger, mockBus, mockNotifier := newConfirmationService(t)

	ctx := context.Background()
	confirmedAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	raw := confirmationMessage(t, "alice", false, confirmedAt)

	subscribers := []models.Subscriber{{ID: "s1", Username: "alice"}}

	mockRepo.EXPECT().
		GetBy(ctx, "username = ?", "alice").
		Return(&subscribers, nil).
		Once()

	mockLedger.EXPECT().
		ResolveAttempt(ctx, "s1", false, confirmedAt).
		Return(nil).
		Once()

	mockNotifier.EXPECT().
		Publish("s1", notify.Payload{Type: notify.TypePostPayments, Message: string(raw)}).
		Once()

	mockBus.EXPECT().
		Fire(ctx, models.ChargeOutcome{SubscriberID: "s1", Success: false, ConfirmedAt: confirmedAt}).
		Once()

	err := svc.HandleConfirmation(ctx, raw)

	assert.NoError(t, err)
}

func TestHandleConfirmation_UnknownSubscriber(t *testing.T) {
	svc, mockRepo, mockLedger, mockBus, mockNotifier := newConfirmationService(t)

	ctx := context.Background()
	raw := confirmationMessage(t, "nobody", true, time.Now().UTC())

	empty := []models.Subscriber{}
	mockRepo.EXPECT().
		GetBy(ctx, "username = ?", "nobody").
		Return(&empty, nil).
		Once()

	err := svc.HandleConfirmation(ctx, raw)

	assert.NoError(t, err)
	mockLedger.AssertNotCalled(t, "ResolveAttempt", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockNotifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	mockBus.AssertNotCalled(t, "Fire", mock.Anything, mock.Anything)
}

func TestHandleConfirmation_NoPendingAttempt(t *testing.T) {
	svc, mockRepo, mockLedger, mockBus, mockNotifier := newConfirmationService(t)

	ctx := context.Background()
	confirmedAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	raw := confirmationMessage(t, "alice", true, confirmedAt)

	subscribers := []models.Subscriber{{ID: "s1", Username: "alice"}}

	mockRepo.EXPECT().
		GetBy(ctx, "username = ?", "alice").
		Return(&subscribers, nil).
		Once()

	mockLedger.EXPECT().
		ResolveAttempt(ctx, "s1", true, confirmedAt).
		Return(ledger.ErrNoPendingAttempt).
		Once()

	err := svc.HandleConfirmation(ctx, raw)

	assert.NoError(t, err)
	mockNotifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	mockBus.AssertNotCalled(t, "Fire", mock.Anything, mock.Anything)
}

func TestHandleConfirmation_InvalidPayload(t *testing.T) {
	svc, mockRepo, _, _, _ := newConfirmationService(t)

	err := svc.HandleConfirmation(context.Background(), []byte(`{"invalid json`))

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "GetBy", mock.Anything, mock.Anything, mock.Anything)
}
