package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderItemQuantityCommand(t *testing.T) {
	orderID := kernel.NewOrderID()
	productID := kernel.NewProductID()
	quantity, err := order.NewProductQuantity(5)
	require.NoError(t, err)

	cmd, err := commands.NewChangeOrderItemQuantityCommand(orderID, productID, quantity)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, productID, cmd.ProductID())
	assert.Equal(t, 5, cmd.Quantity().Value())

	_, err = commands.NewChangeOrderItemQuantityCommand(orderID, productID, order.ProductQuantity{})
	require.Error(t, err)
}

func TestChangeOrderItemQuantityCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredOrder(t)
	target := aggregate.Items()[0]
	quantity, err := order.NewProductQuantity(7)
	require.NoError(t, err)

	cmd, err := commands.NewChangeOrderItemQuantityCommand(aggregate.ID(), target.ProductID(), quantity)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	outbox := new(MockOutboxRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Save", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outbox).Once(),
		outbox.On("Add", mock.Anything, aggregate.ID().String(), mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderItemQuantityCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 7, aggregate.Items()[0].Quantity().Value())
	uow.AssertExpectations(t)
}

func TestChangeOrderItemQuantityCommandHandler_Handle_MissingProduct(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredOrder(t)
	quantity, err := order.NewProductQuantity(2)
	require.NoError(t, err)

	cmd, err := commands.NewChangeOrderItemQuantityCommand(aggregate.ID(), kernel.NewProductID(), quantity)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderItemQuantityCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
