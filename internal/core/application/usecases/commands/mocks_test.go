package commands_test

import (
	"context"
	"errors"

	"shipments/internal/core/application/usecases/commands"
	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/domain/model/user"
	"shipments/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*shipment.Shipment); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockShipmentRepository) GetByTrackingNumber(_ context.Context, _ shipment.TrackingNumber) (*shipment.Shipment, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStatusHistoryRepository struct{ mock.Mock }

func (m *MockStatusHistoryRepository) Append(ctx context.Context, entry *shipment.StatusHistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockStatusHistoryRepository) ListFor(_ context.Context, _ kernel.UUID) ([]*shipment.StatusHistoryEntry, error) {
	return nil, errors.New("not implemented in mock")
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockUserRepository) GetByEmail(_ context.Context, _ string) (*user.User, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockShipmentUoW) StatusHistoryRepository() ports.StatusHistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusHistoryRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockUserUoW struct{ mock.Mock }

func (m *MockUserUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

func validShipmentData() shipment.Data {
	return shipment.Data{
		Service:      shipment.ServiceExpress,
		ShipmentType: shipment.TypeNonDocsBox,
		Currency:     shipment.CurrencyUSD,
		InvoiceType:  shipment.InvoiceCommercial,
		CompanyName:  "Acme Logistics",
		Shipper: shipment.Party{
			Name:    "John Sender",
			Phone:   "+14155550100",
			Address: "1 Market St",
			City:    "San Francisco",
			Country: "US",
		},
		Receiver: shipment.Party{
			Name:    "Jane Receiver",
			Phone:   "+971501234567",
			Address: "Sheikh Zayed Rd",
			City:    "Dubai",
			Country: "AE",
		},
		Pieces:      2,
		Description: "Spare parts",
		Weight:      3.5,
	}
}
