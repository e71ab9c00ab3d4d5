package service_test

import (
	"context"
	"errors"
	"testing"

	"paybox/internal/entity"
	"paybox/internal/service"
	mock_service "paybox/internal/service/mock"
	"paybox/pkg/logger"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestOrderLoader_Load(t *testing.T) {
	billing := &entity.Address{FirstName: "Jane", LastName: "Doe", CountryAlpha2: "FR"}
	items := []*entity.OrderItem{{ProductRef: "MUG", Quantity: 2}}

	testCases := []struct {
		desc  string
		mocks func(
			orderRepo *mock_service.MockOrderRepository,
			itemRepo *mock_service.MockItemRepository,
			addressRepo *mock_service.MockAddressRepository,
			order *entity.Order,
		)
		wantBilling bool
		wantErr     bool
	}{
		{
			desc: "Complete",
			mocks: func(
				orderRepo *mock_service.MockOrderRepository,
				itemRepo *mock_service.MockItemRepository,
				addressRepo *mock_service.MockAddressRepository,
				order *entity.Order,
			) {
				orderRepo.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil).Times(1)
				itemRepo.EXPECT().GetListByOrderID(gomock.Any(), order.ID).Return(items, nil).Times(1)
				addressRepo.EXPECT().GetInvoiceAddress(gomock.Any(), order.ID).Return(billing, nil).Times(1)
			},
			wantBilling: true,
		},
		{
			desc: "WithoutInvoiceAddress",
			mocks: func(
				orderRepo *mock_service.MockOrderRepository,
				itemRepo *mock_service.MockItemRepository,
				addressRepo *mock_service.MockAddressRepository,
				order *entity.Order,
			) {
				orderRepo.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil).Times(1)
				itemRepo.EXPECT().GetListByOrderID(gomock.Any(), order.ID).Return(items, nil).Times(1)
				addressRepo.EXPECT().GetInvoiceAddress(gomock.Any(), order.ID).
					Return(nil, entity.ErrDataNotFound).Times(1)
			},
		},
		{
			desc: "ItemsUnavailable",
			mocks: func(
				orderRepo *mock_service.MockOrderRepository,
				itemRepo *mock_service.MockItemRepository,
				addressRepo *mock_service.MockAddressRepository,
				order *entity.Order,
			) {
				orderRepo.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil).Times(1)
				itemRepo.EXPECT().GetListByOrderID(gomock.Any(), order.ID).
					Return(nil, errors.New("connection reset")).Times(1)
				addressRepo.EXPECT().GetInvoiceAddress(gomock.Any(), order.ID).Return(billing, nil).AnyTimes()
			},
			wantErr: true,
		},
		{
			desc: "OrderMissing",
			mocks: func(
				orderRepo *mock_service.MockOrderRepository,
				_ *mock_service.MockItemRepository,
				_ *mock_service.MockAddressRepository,
				order *entity.Order,
			) {
				orderRepo.EXPECT().GetByID(gomock.Any(), order.ID).Return(nil, entity.ErrDataNotFound).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			orderRepo := mock_service.NewMockOrderRepository(ctrl)
			itemRepo := mock_service.NewMockItemRepository(ctrl)
			addressRepo := mock_service.NewMockAddressRepository(ctrl)

			order := generateFakeOrder()
			order.Items = nil
			tc.mocks(orderRepo, itemRepo, addressRepo, order)

			loader := service.NewOrderLoader(orderRepo, itemRepo, addressRepo, logger.NewNop())
			loaded, err := loader.Load(context.Background(), order.ID)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, items, loaded.Items)
			require.Equal(t, tc.wantBilling, loaded.Billing != nil)
		})
	}
}
