package queries_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"ordertrack/internal/adapters/out/postgres"
	"ordertrack/internal/adapters/out/postgres/statusrepo"
	redisadapter "ordertrack/internal/adapters/out/redis"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/statustracker"
	"ordertrack/internal/pkg/errs"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCurrentStatusQueryHandlerTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&statusrepo.RecordDTO{}))
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE status_records").Error)
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) appendStatus(
	orderID kernel.UUID,
	status order.Status,
	at time.Time,
) {
	record, err := statustracker.NewRecord(kernel.NewUUID(), orderID, status, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().StatusRecordRepository().Append(context.Background(), record))
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) newCache() (*redisadapter.StatusCache, *miniredis.Miniredis) {
	srv := miniredis.RunT(suite.T())
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	suite.T().Cleanup(func() { _ = client.Close() })
	return redisadapter.NewStatusCache(client, time.Minute), srv
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) TestHandle_DerivesLatest() {
	orderID := kernel.NewUUID()
	base := time.Now().Truncate(time.Second)
	suite.appendStatus(orderID, order.Created, base)
	suite.appendStatus(orderID, order.InAWay, base.Add(2*time.Hour))
	suite.appendStatus(orderID, order.InProgress, base.Add(time.Hour))

	handler := queries.NewGetCurrentStatusQueryHandler(suite.db, discardLogger())
	query, err := queries.NewGetCurrentStatusQuery(orderID)
	suite.Require().NoError(err)

	status, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(order.InAWay, status)
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) TestHandle_NoHistory_NotFound() {
	handler := queries.NewGetCurrentStatusQueryHandler(suite.db, discardLogger())
	query, err := queries.NewGetCurrentStatusQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) TestHandle_CacheHit_SkipsDatabase() {
	orderID := kernel.NewUUID()
	suite.appendStatus(orderID, order.Created, time.Now())

	cache, _ := suite.newCache()
	// Seed the cache with a value that differs from the history: a hit
	// must be served as-is, proving the database was not consulted.
	suite.Require().NoError(cache.Set(context.Background(), orderID, order.Delivered))

	handler := queries.NewGetCurrentStatusQueryHandler(
		suite.db, discardLogger(), queries.WithCurrentStatusCache(cache))
	query, err := queries.NewGetCurrentStatusQuery(orderID)
	suite.Require().NoError(err)

	status, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, status)
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) TestHandle_CacheMiss_FillsCache() {
	orderID := kernel.NewUUID()
	suite.appendStatus(orderID, order.InProgress, time.Now())

	cache, _ := suite.newCache()
	handler := queries.NewGetCurrentStatusQueryHandler(
		suite.db, discardLogger(), queries.WithCurrentStatusCache(cache))
	query, err := queries.NewGetCurrentStatusQuery(orderID)
	suite.Require().NoError(err)

	status, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, status)

	cached, found, err := cache.Get(context.Background(), orderID)
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal(order.InProgress, cached)
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) TestHandle_CacheDown_FallsBackToDatabase() {
	orderID := kernel.NewUUID()
	suite.appendStatus(orderID, order.Created, time.Now())

	cache, srv := suite.newCache()
	srv.Close()

	handler := queries.NewGetCurrentStatusQueryHandler(
		suite.db, discardLogger(), queries.WithCurrentStatusCache(cache))
	query, err := queries.NewGetCurrentStatusQuery(orderID)
	suite.Require().NoError(err)

	status, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(order.Created, status)
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) TestBatch_OmitsOrdersWithoutHistory() {
	base := time.Now().Truncate(time.Second)
	first := kernel.NewUUID()
	second := kernel.NewUUID()
	missing := kernel.NewUUID()

	suite.appendStatus(first, order.Created, base)
	suite.appendStatus(first, order.Delivered, base.Add(time.Hour))
	suite.appendStatus(second, order.InProgress, base)

	handler := queries.NewGetCurrentStatusBatchQueryHandler(suite.db)
	query, err := queries.NewGetCurrentStatusBatchQuery([]kernel.UUID{first, second, missing})
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(result, 2)
	suite.Equal(order.Delivered, result[first])
	suite.Equal(order.InProgress, result[second])
	_, present := result[missing]
	suite.False(present)
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) TestBatch_EmptyIDSet() {
	handler := queries.NewGetCurrentStatusBatchQueryHandler(suite.db)
	query, err := queries.NewGetCurrentStatusBatchQuery(nil)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) TestListing_FiltersOnDerivedStatus() {
	base := time.Now().Truncate(time.Second)
	delivered := kernel.NewUUID()
	inProgress := kernel.NewUUID()

	// This order passed through InProgress but is Delivered now: the
	// filter must judge the derived status, not individual records.
	suite.appendStatus(delivered, order.InProgress, base)
	suite.appendStatus(delivered, order.Delivered, base.Add(time.Hour))
	suite.appendStatus(inProgress, order.InProgress, base)

	handler := queries.NewGetCurrentStatusesQueryHandler(suite.db)

	status := order.InProgress
	query, err := queries.NewGetCurrentStatusesQuery(&status)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(inProgress, result[0].OrderID)
	suite.Equal(order.InProgress, result[0].Status)
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) TestListing_NoFilter_ReturnsAll() {
	base := time.Now().Truncate(time.Second)
	first := kernel.NewUUID()
	second := kernel.NewUUID()
	suite.appendStatus(first, order.Created, base)
	suite.appendStatus(second, order.Delivered, base)

	handler := queries.NewGetCurrentStatusesQueryHandler(suite.db)
	query, err := queries.NewGetCurrentStatusesQuery(nil)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(result, 2)
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) TestHistory_AscendingOrder() {
	orderID := kernel.NewUUID()
	base := time.Now().Truncate(time.Second)
	suite.appendStatus(orderID, order.InProgress, base.Add(time.Hour))
	suite.appendStatus(orderID, order.Created, base)

	handler := queries.NewGetStatusHistoryQueryHandler(suite.db)
	query, err := queries.NewGetStatusHistoryQuery(orderID)
	suite.Require().NoError(err)

	history, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal(order.Created, history[0].Status)
	suite.Equal(order.InProgress, history[1].Status)
	suite.Equal(orderID, history[0].OrderID)
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) TestStatusRecord_Get() {
	orderID := kernel.NewUUID()
	at := time.Now().Truncate(time.Second)
	record, err := statustracker.NewRecord(kernel.NewUUID(), orderID, order.InAWay, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().StatusRecordRepository().Append(context.Background(), record))

	handler := queries.NewGetStatusRecordQueryHandler(suite.db)
	query, err := queries.NewGetStatusRecordQuery(record.ID())
	suite.Require().NoError(err)

	resp, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(record.ID(), resp.ID)
	suite.Equal(orderID, resp.OrderID)
	suite.Equal(order.InAWay, resp.Status)
	suite.True(resp.RecordedAt.Equal(at))
}

func (suite *GetCurrentStatusQueryHandlerTestSuite) TestStatusRecord_NotFound() {
	handler := queries.NewGetStatusRecordQueryHandler(suite.db)
	query, err := queries.NewGetStatusRecordQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetCurrentStatusQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCurrentStatusQueryHandlerTestSuite))
}
