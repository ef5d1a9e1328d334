package deploy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vietdv277/nimbus/pkg/provider"
	"github.com/vietdv277/nimbus/pkg/types"
)

type mockObjectStore struct {
	mock.Mock
}

func (m *mockObjectStore) PutObject(ctx context.Context, input *provider.PutInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *mockObjectStore) ListObjects(ctx context.Context, input *provider.ListInput) (*types.ObjectPage, error) {
	args := m.Called(ctx, input)
	if page := args.Get(0); page != nil {
		return page.(*types.ObjectPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockObjectStore) HeadObject(ctx context.Context, input *provider.HeadInput) (*types.Object, error) {
	args := m.Called(ctx, input)
	if obj := args.Get(0); obj != nil {
		return obj.(*types.Object), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockObjectStore) CopyObject(ctx context.Context, input *provider.CopyInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}
