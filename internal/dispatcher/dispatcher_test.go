package dispatcher_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/magpress/payment-service/internal/dispatcher"
	"github.com/magpress/payment-service/internal/dispatcher/mocks"
	"github.com/magpress/payment-service/internal/models"
	"github.com/magpress/payment-service/internal/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testInstrument = models.PaymentInstrument{
	Number: "1234567890123456",
	Type:   models.InstrumentVisa,
}

func newDispatcher(t *testing.T, breakerCfg policy.BreakerConfig) (*dispatcher.AsyncDispatcher, *mocks.MockPublisher, *mocks.MockGateway) {
	mockPublisher := mocks.NewMockPublisher(t)
	mockGateway := mocks.NewMockGateway(t)
	breaker := policy.NewCircuitBreaker("test", breakerCfg)
	return dispatcher.New(mockPublisher, mockGateway, breaker), mockPublisher, mockGateway
}

func TestDispatch_PublishSucceeds(t *testing.T) {
	d, mockPublisher, mockGateway := newDispatcher(t, policy.BreakerConfig{FailureThreshold: 3})

	ctx := context.Background()

	mockPublisher.EXPECT().
		Publish(ctx, models.PaymentRequestTopic, "alice", mock.AnythingOfType("models.PaymentRequestMessage")).
		Return(nil).
		Once()

	result, err := d.Dispatch(ctx, "alice", testInstrument)

	assert.NoError(t, err)
	assert.True(t, result.Sent)
	assert.Nil(t, result.Confirmation)
	assert.Equal(t, 0, d.InFlight())
	mockGateway.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything)
}

func TestDispatch_FallbackOnPublishFailure(t *testing.T) {
	d, mockPublisher, mockGateway := newDispatcher(t, policy.BreakerConfig{FailureThreshold: 3})

	ctx := context.Background()
	confirmedAt := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	mockPublisher.EXPECT().
		Publish(ctx, models.PaymentRequestTopic, "alice", mock.AnythingOfType("models.PaymentRequestMessage")).
		Return(errors.New("broker unavailable")).
		Once()

	mockGateway.EXPECT().
		Charge(ctx, testInstrument).
		Return(models.Confirmation{Success: false, Timestamp: confirmedAt}, nil).
		Once()

	result, err := d.Dispatch(ctx, "alice", testInstrument)

	assert.NoError(t, err)
	assert.False(t, result.Sent)
	assert.NotNil(t, result.Confirmation)
	assert.False(t, result.Confirmation.Success)
	assert.Equal(t, confirmedAt, result.Confirmation.Timestamp)
	assert.Equal(t, 0, d.InFlight())
}

func TestDispatch_CircuitOpensAfterConsecutiveFailures(t *testing.T) {
	threshold := 3
	d, mockPublisher, mockGateway := newDispatcher(t, policy.BreakerConfig{
		FailureThreshold: threshold,
		Cooldown:         time.Minute,
	})

	ctx := context.Background()

	// The publisher is only reachable while the circuit is closed, so it must
	// be hit exactly threshold times across four dispatches.
	mockPublisher.EXPECT().
		Publish(ctx, models.PaymentRequestTopic, "alice", mock.AnythingOfType("models.PaymentRequestMessage")).
		Return(errors.New("broker unavailable")).
		Times(threshold)

	mockGateway.EXPECT().
		Charge(ctx, testInstrument).
		Return(models.Confirmation{Success: true, Timestamp: time.Now().UTC()}, nil).
		Times(threshold + 1)

	for i := 0; i < threshold+1; i++ {
		result, err := d.Dispatch(ctx, "alice", testInstrument)
		assert.NoError(t, err)
		assert.NotNil(t, result.Confirmation)
	}

	mockPublisher.AssertExpectations(t)
	mockGateway.AssertExpectations(t)
}

func TestDispatch_ConcurrentChargesForOneSubscriberEachStayInFlight(t *testing.T) {
	d, mockPublisher, mockGateway := newDispatcher(t, policy.BreakerConfig{FailureThreshold: 3})

	started := make(chan struct{})
	release := make(chan struct{})

	mockPublisher.EXPECT().
		Publish(mock.Anything, models.PaymentRequestTopic, "alice", mock.AnythingOfType("models.PaymentRequestMessage")).
		RunAndReturn(func(ctx context.Context, topic string, key string, message interface{}) error {
			started <- struct{}{}
			<-release
			return nil
		}).
		Times(2)

	done := make(chan struct{}, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, _ = d.Dispatch(context.Background(), "alice", testInstrument)
			done <- struct{}{}
		}()
	}

	<-started
	<-started
	assert.Equal(t, 2, d.InFlight())

	close(release)
	<-done
	<-done
	assert.Equal(t, 0, d.InFlight())
	mockGateway.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything)
}

func TestDispatch_GatewayErrorPropagates(t *testing.T) {
	d, mockPublisher, mockGateway := newDispatcher(t, policy.BreakerConfig{FailureThreshold: 3})

	ctx := context.Background()
	expectedError := errors.New("gateway timed out")

	mockPublisher.EXPECT().
		Publish(ctx, models.PaymentRequestTopic, "alice", mock.AnythingOfType("models.PaymentRequestMessage")).
		Return(errors.New("broker unavailable")).
		Once()

	mockGateway.EXPECT().
		Charge(ctx, testInstrument).
		Return(models.Confirmation{}, expectedError).
		Once()

	result, err := d.Dispatch(ctx, "alice", testInstrument)

	assert.Error(t, err)
	assert.ErrorIs(t, err, expectedError)
	assert.False(t, result.Sent)
	assert.Nil(t, result.Confirmation)
	assert.Equal(t, 0, d.InFlight())
}
