package jobpostrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"staffing/internal/adapters/out/postgres/jobpostrepo"
	"staffing/internal/core/domain/model/jobpost"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/errs"
)

type GormJobPostRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *jobpostrepo.GormJobPostRepository
}

func (suite *GormJobPostRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&jobpostrepo.JobPostDTO{})
	suite.Require().NoError(err)

	suite.repo = jobpostrepo.NewGormJobPostRepository(db)
}

func (suite *GormJobPostRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormJobPostRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE job_posts").Error
	suite.Require().NoError(err)
}

func (suite *GormJobPostRepositoryTestSuite) newPost(crid string) *jobpost.JobPost {
	details := jobpost.Details{
		Date:        "2026-09-01",
		Shift:       "Night",
		Location:    "Riverside Clinic",
		StartTime:   "19:00",
		EndTime:     "07:00",
		Description: "Overnight care",
		Payment:     "450",
	}
	post, err := jobpost.NewJobPost(kernel.NewUUID(), kernel.NewUUID(), crid, details, time.Now())
	suite.Require().NoError(err)
	return post
}

func (suite *GormJobPostRepositoryTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	post := suite.newPost("CR001")

	err := suite.repo.Add(ctx, post)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, post.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(post))
	suite.Equal("CR001", loaded.CRID())
	suite.Equal(jobpost.Open, loaded.Status())
	suite.Equal("Riverside Clinic", loaded.Details().Location)
	suite.Nil(loaded.AssignedTo())
	suite.Equal(jobpost.DeliveryNone, loaded.Delivery())
}

func (suite *GormJobPostRepositoryTestSuite) TestUpdate_PersistsLifecycleProgress() {
	ctx := context.Background()
	post := suite.newPost("CR002")
	suite.Require().NoError(suite.repo.Add(ctx, post))

	workerID := kernel.NewUUID()
	suite.Require().NoError(post.Accept(workerID))
	suite.Require().NoError(post.CheckIn(time.Now().Add(-time.Hour)))
	suite.Require().NoError(post.CheckOut(time.Now(), jobpost.CheckoutDetails{
		PerformedBy:   "Jane Doe",
		Notes:         "Patient stable",
		BloodPressure: "120/80",
	}))

	suite.Require().NoError(suite.repo.Update(ctx, post))

	loaded, err := suite.repo.Get(ctx, post.ID())
	suite.Require().NoError(err)
	suite.Equal(jobpost.Completed, loaded.Status())
	suite.Require().NotNil(loaded.AssignedTo())
	suite.True(loaded.AssignedTo().IsEqual(workerID))
	suite.NotNil(loaded.CheckInTime())
	suite.NotNil(loaded.CheckedOutTime())
	suite.True(loaded.CheckedOut())
	suite.Equal("Jane Doe", loaded.Checkout().PerformedBy)
	suite.Equal("120/80", loaded.Checkout().BloodPressure)
	suite.Equal(jobpost.DeliveryPending, loaded.Delivery())
}

func (suite *GormJobPostRepositoryTestSuite) TestUpdate_MissingPostReturnsNotFound() {
	ctx := context.Background()
	post := suite.newPost("CR003")

	err := suite.repo.Update(ctx, post)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormJobPostRepositoryTestSuite) TestDelete_IsIdempotent() {
	ctx := context.Background()
	post := suite.newPost("CR004")
	suite.Require().NoError(suite.repo.Add(ctx, post))

	suite.Require().NoError(suite.repo.Delete(ctx, post.ID()))

	_, err := suite.repo.Get(ctx, post.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	// Second delete of the same id succeeds.
	suite.Require().NoError(suite.repo.Delete(ctx, post.ID()))
}

func (suite *GormJobPostRepositoryTestSuite) TestGetAllPendingDelivery_FiltersCorrectly() {
	ctx := context.Background()

	pending := suite.newPost("CR005")
	suite.Require().NoError(pending.Accept(kernel.NewUUID()))
	suite.Require().NoError(pending.CheckIn(time.Now().Add(-time.Hour)))
	suite.Require().NoError(pending.CheckOut(time.Now(), jobpost.CheckoutDetails{PerformedBy: "Jane Doe"}))
	suite.Require().NoError(suite.repo.Add(ctx, pending))

	delivered := suite.newPost("CR006")
	suite.Require().NoError(delivered.Accept(kernel.NewUUID()))
	suite.Require().NoError(delivered.CheckIn(time.Now().Add(-time.Hour)))
	suite.Require().NoError(delivered.CheckOut(time.Now(), jobpost.CheckoutDetails{PerformedBy: "Jane Doe"}))
	suite.Require().NoError(delivered.MarkDelivered())
	suite.Require().NoError(suite.repo.Add(ctx, delivered))

	open := suite.newPost("CR007")
	suite.Require().NoError(suite.repo.Add(ctx, open))

	posts, err := suite.repo.GetAllPendingDelivery(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(posts, 1)
	suite.True(posts[0].IsEqual(pending))
}

func TestGormJobPostRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormJobPostRepositoryTestSuite))
}
