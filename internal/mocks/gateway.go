// Package mocks provides testify mocks for the record gateway surfaces
// consumed across the console.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/elitecards/admin-console/internal/platform"
	"github.com/elitecards/admin-console/internal/types"
)

// MockGateway implements every gateway slice the console components
// consume.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) ListProfiles(ctx context.Context, kind platform.ProfileKind) ([]types.Profile, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Profile), args.Error(1)
}

func (m *MockGateway) GetProfile(ctx context.Context, kind platform.ProfileKind, id string) (types.Profile, error) {
	args := m.Called(ctx, kind, id)
	return args.Get(0).(types.Profile), args.Error(1)
}

func (m *MockGateway) UpdateProfile(ctx context.Context, kind platform.ProfileKind, id string, fields map[string]any) (types.Profile, error) {
	args := m.Called(ctx, kind, id, fields)
	return args.Get(0).(types.Profile), args.Error(1)
}

func (m *MockGateway) DeleteProfile(ctx context.Context, kind platform.ProfileKind, id string) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockGateway) List(ctx context.Context, cat platform.Category) ([]types.ChildRecord, error) {
	args := m.Called(ctx, cat)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.ChildRecord), args.Error(1)
}

func (m *MockGateway) ListFor(ctx context.Context, cat platform.Category, userID string) ([]types.ChildRecord, error) {
	args := m.Called(ctx, cat, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.ChildRecord), args.Error(1)
}

func (m *MockGateway) Create(ctx context.Context, cat platform.Category, payload platform.Payload) (types.ChildRecord, error) {
	args := m.Called(ctx, cat, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(types.ChildRecord), args.Error(1)
}

func (m *MockGateway) Update(ctx context.Context, cat platform.Category, id string, payload platform.Payload) (types.ChildRecord, error) {
	args := m.Called(ctx, cat, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(types.ChildRecord), args.Error(1)
}

func (m *MockGateway) Delete(ctx context.Context, cat platform.Category, id string) error {
	args := m.Called(ctx, cat, id)
	return args.Error(0)
}

func (m *MockGateway) SendSingleMail(ctx context.Context, clientID string, draft platform.MailDraft) error {
	args := m.Called(ctx, clientID, draft)
	return args.Error(0)
}

func (m *MockGateway) SendGroupMail(ctx context.Context, clientIDs []string, draft platform.MailDraft) error {
	args := m.Called(ctx, clientIDs, draft)
	return args.Error(0)
}

func (m *MockGateway) ListMail(ctx context.Context) ([]types.MailRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.MailRecord), args.Error(1)
}

func (m *MockGateway) Login(ctx context.Context, creds platform.Credentials) (platform.LoginResult, error) {
	args := m.Called(ctx, creds)
	return args.Get(0).(platform.LoginResult), args.Error(1)
}

func (m *MockGateway) Signup(ctx context.Context, req platform.SignupRequest) (types.Account, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(types.Account), args.Error(1)
}
