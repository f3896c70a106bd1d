package commands_test

import (
	"testing"

	"pizzaria/internal/core/application/usecases/commands"
	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/domain/model/order"
	"pizzaria/internal/core/domain/services"
	"pizzaria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := services.Actor{ID: kernel.NewUUID()}
	stored := newStoredOrder(t, actor.ID)
	cmd, _ := commands.NewCancelOrderCommand(actor, stored.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, services.NewAccessPolicy())
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelado, cancelled.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AlreadyTerminal(t *testing.T) {
	ctx := t.Context()
	actor := services.Actor{ID: kernel.NewUUID()}
	stored := newStoredOrder(t, actor.ID)
	require.NoError(t, stored.Cancel())
	cmd, _ := commands.NewCancelOrderCommand(actor, stored.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, services.NewAccessPolicy())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_StrangerDenied(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, kernel.NewUUID())
	stranger := services.Actor{ID: kernel.NewUUID()}
	cmd, _ := commands.NewCancelOrderCommand(stranger, stored.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory, services.NewAccessPolicy())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.Equal(t, order.Aberto, stored.Status())
}

func TestNewCancelOrderCommand_Validation(t *testing.T) {
	t.Run("should fail with an empty order id", func(t *testing.T) {
		var empty kernel.UUID

		_, err := commands.NewCancelOrderCommand(services.Actor{ID: kernel.NewUUID()}, empty)
		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		cmd := commands.CancelOrderCommand{}

		require.Error(t, cmd.Validate())
	})
}
