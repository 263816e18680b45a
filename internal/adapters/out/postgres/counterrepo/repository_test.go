package counterrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"staffing/internal/adapters/out/postgres/counterrepo"
)

type GormSequenceGeneratorTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	generator *counterrepo.GormSequenceGenerator
}

func (suite *GormSequenceGeneratorTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&counterrepo.CounterDTO{})
	suite.Require().NoError(err)

	suite.generator = counterrepo.NewGormSequenceGenerator(db)
}

func (suite *GormSequenceGeneratorTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormSequenceGeneratorTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE counters").Error
	suite.Require().NoError(err)
}

func (suite *GormSequenceGeneratorTestSuite) TestNext_StartsAtOne() {
	seq, err := suite.generator.Next(context.Background(), "jobpostId")
	suite.Require().NoError(err)
	suite.Equal(int64(1), seq)
}

func (suite *GormSequenceGeneratorTestSuite) TestNext_Increments() {
	ctx := context.Background()
	for want := int64(1); want <= 5; want++ {
		seq, err := suite.generator.Next(ctx, "jobpostId")
		suite.Require().NoError(err)
		suite.Equal(want, seq)
	}
}

func (suite *GormSequenceGeneratorTestSuite) TestNext_IndependentPerName() {
	ctx := context.Background()

	seq, err := suite.generator.Next(ctx, "jobpostId")
	suite.Require().NoError(err)
	suite.Equal(int64(1), seq)

	seq, err = suite.generator.Next(ctx, "invoiceId")
	suite.Require().NoError(err)
	suite.Equal(int64(1), seq)
}

func (suite *GormSequenceGeneratorTestSuite) TestNext_ConcurrentCallsYieldDistinctValues() {
	ctx := context.Background()
	const workers = 20

	var mu sync.Mutex
	seen := make(map[int64]bool)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq, err := suite.generator.Next(ctx, "jobpostId")
			suite.Require().NoError(err)

			mu.Lock()
			defer mu.Unlock()
			suite.False(seen[seq], "sequence value %d handed out twice", seq)
			seen[seq] = true
		}()
	}
	wg.Wait()

	suite.Len(seen, workers)
}

func TestGormSequenceGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(GormSequenceGeneratorTestSuite))
}
