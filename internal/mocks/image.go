package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/mock"
)

// MockImageEncoder is a mock implementation of service.ImageEncoder
type MockImageEncoder struct {
	mock.Mock
}

// Encode mocks the Encode method
func (m *MockImageEncoder) Encode(ctx context.Context, data []byte) (string, error) {
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

// MockObjectPutter is a mock of the S3 upload call
type MockObjectPutter struct {
	mock.Mock
}

// PutObject mocks the PutObject method
func (m *MockObjectPutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}
