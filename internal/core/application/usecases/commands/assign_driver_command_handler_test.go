package commands_test

import (
	"testing"

	"deliveries/internal/core/application/usecases/commands"
	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/ports"
	"deliveries/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := orderedDelivery(t)
	cmd, _ := commands.NewAssignDriverCommand(aggregate.ID(), "driver-7")

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate, []delivery.Status{delivery.Ordered}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", mock.MatchedBy(func(e ports.IntegrationEvent) bool {
			data, ok := e.Data.(ports.DeliveryData)
			return e.Type == ports.EventTypeDeliveryUpdated &&
				ok && data.Status == "in_transit" &&
				data.DriverID != nil && *data.DriverID == "driver-7"
		})).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDriverCommandHandler(factory, publisher)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, delivery.InTransit, updated.Status())
	require.NotNil(t, updated.DriverID())
	assert.Equal(t, "driver-7", *updated.DriverID())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAssignDriverCommand(orderedDelivery(t).ID(), "driver-7")

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cmd.DeliveryID()).
			Return(nil, errs.NewObjectNotFoundError("delivery", cmd.DeliveryID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDriverCommandHandler(factory, publisher)
	updated, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, updated)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignDriverCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := deliveredDelivery(t)
	cmd, _ := commands.NewAssignDriverCommand(aggregate.ID(), "driver-7")

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDriverCommandHandler(factory, publisher)
	updated, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	assert.Nil(t, updated)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestAssignDriverCommandHandler_Handle_ConcurrentTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := orderedDelivery(t)
	cmd, _ := commands.NewAssignDriverCommand(aggregate.ID(), "driver-7")

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate, []delivery.Status{delivery.Ordered}).
			Return(ports.ErrConcurrentTransition).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDriverCommandHandler(factory, publisher)
	updated, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, ports.ErrConcurrentTransition)
	assert.Nil(t, updated)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
