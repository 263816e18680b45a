package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"staffing/internal/core/application/usecases/commands"
	"staffing/internal/core/domain/model/jobpost"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/domain/model/message"
	"staffing/internal/core/domain/model/notification"
	"staffing/internal/core/domain/model/user"
	"staffing/internal/core/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustNewJobPost(details jobpost.Details) *jobpost.JobPost {
	post, err := jobpost.NewJobPost(kernel.NewUUID(), kernel.NewUUID(), "CR001", details, time.Now())
	if err != nil {
		panic(err)
	}
	return post
}

func validDetails() jobpost.Details {
	return jobpost.Details{
		Date:        "2026-09-01",
		Shift:       "Night",
		Location:    "Riverside Clinic",
		StartTime:   "19:00",
		EndTime:     "07:00",
		Description: "Overnight care",
		Payment:     "450",
	}
}

type MockJobPostRepository struct{ mock.Mock }

func (m *MockJobPostRepository) Add(ctx context.Context, p *jobpost.JobPost) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockJobPostRepository) Update(ctx context.Context, p *jobpost.JobPost) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockJobPostRepository) Get(ctx context.Context, id kernel.UUID) (*jobpost.JobPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jobpost.JobPost), args.Error(1)
}

func (m *MockJobPostRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockJobPostRepository) GetAllPendingDelivery(ctx context.Context) ([]*jobpost.JobPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*jobpost.JobPost), args.Error(1)
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

func (m *MockUserRepository) GetByID(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetFirstAdmin(ctx context.Context) (*user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockMessageRepository struct{ mock.Mock }

func (m *MockMessageRepository) Add(ctx context.Context, msg *message.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// mockTx embeds the mocked transaction lifecycle shared by all UoW mocks.
type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockJobPostUoW struct{ mockTx }

func (m *MockJobPostUoW) JobPostRepository() ports.JobPostRepository {
	args := m.Called()
	return args.Get(0).(ports.JobPostRepository)
}

type MockJobPostUoWFactory struct{ mock.Mock }

func (m *MockJobPostUoWFactory) Create() commands.JobPostUoW {
	args := m.Called()
	return args.Get(0).(commands.JobPostUoW)
}

type MockDeliveryUoW struct{ mockTx }

func (m *MockDeliveryUoW) JobPostRepository() ports.JobPostRepository {
	args := m.Called()
	return args.Get(0).(ports.JobPostRepository)
}

func (m *MockDeliveryUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockDeliveryUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockUserUoW struct{ mockTx }

func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockMessageUoW struct{ mockTx }

func (m *MockMessageUoW) MessageRepository() ports.MessageRepository {
	args := m.Called()
	return args.Get(0).(ports.MessageRepository)
}

type MockMessageUoWFactory struct{ mock.Mock }

func (m *MockMessageUoWFactory) Create() commands.MessageUoW {
	args := m.Called()
	return args.Get(0).(commands.MessageUoW)
}

type MockSequenceGenerator struct{ mock.Mock }

func (m *MockSequenceGenerator) Next(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

type MockBroadcaster struct{ mock.Mock }

func (m *MockBroadcaster) BroadcastJobPosted(ctx context.Context, event ports.JobPostedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockRenderer struct{ mock.Mock }

func (m *MockRenderer) RenderCheckoutReport(ctx context.Context, post *jobpost.JobPost) (string, error) {
	args := m.Called(ctx, post)
	return args.String(0), args.Error(1)
}

type MockMailer struct{ mock.Mock }

func (m *MockMailer) SendCheckoutReport(ctx context.Context, recipient, jobCRID, performedBy, artifactPath string) error {
	args := m.Called(ctx, recipient, jobCRID, performedBy, artifactPath)
	return args.Error(0)
}

func (m *MockMailer) SendOTP(ctx context.Context, recipient, code string) error {
	args := m.Called(ctx, recipient, code)
	return args.Error(0)
}

type MockOTPStore struct{ mock.Mock }

func (m *MockOTPStore) Save(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}

func (m *MockOTPStore) Get(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockOTPStore) Delete(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
