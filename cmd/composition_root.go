package cmd

import (
	"context"
	"log/slog"
	"net/http"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"ordertrack/internal/adapters/in/kafka"
	"ordertrack/internal/adapters/out/httpclient"
	kafkaout "ordertrack/internal/adapters/out/kafka"
	"ordertrack/internal/adapters/out/postgres"
	redisout "ordertrack/internal/adapters/out/redis"
	"ordertrack/internal/core/application/resolver"
	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/product"
	"ordertrack/internal/core/domain/model/review"
	"ordertrack/internal/core/domain/model/user"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/jobs"
	"ordertrack/internal/messaging"
)

type CompositionRoot struct {
	configs     Config
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	statusCache ports.StatusCache
	logger      *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, redisClient *goredis.Client, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:     configs,
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		statusCache: redisout.NewStatusCache(redisClient, redisout.DefaultTTL),
		logger:      logger,
	}
}

// Topics maps each relay command type to its configured topic name.
func (c *CompositionRoot) Topics() messaging.Topics {
	return messaging.Topics{
		OrderCreate:  c.configs.KafkaOrderCreateTopic,
		OrderUpdate:  c.configs.KafkaOrderUpdateTopic,
		StatusChange: c.configs.KafkaStatusChangeTopic,
		OrderDelete:  c.configs.KafkaOrderDeleteTopic,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.logger, commands.WithStatusCache(c.statusCache))
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f, c.logger, commands.WithDeleteStatusCache(c.statusCache))
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCurrentStatusQueryHandler() queries.GetCurrentStatusQueryHandler {
	return queries.NewGetCurrentStatusQueryHandler(c.gormDB, c.logger, queries.WithCurrentStatusCache(c.statusCache))
}

func (c *CompositionRoot) CreateGetCurrentStatusesQueryHandler() queries.GetCurrentStatusesQueryHandler {
	return queries.NewGetCurrentStatusesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCurrentStatusBatchQueryHandler() queries.GetCurrentStatusBatchQueryHandler {
	return queries.NewGetCurrentStatusBatchQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusHistoryQueryHandler() queries.GetStatusHistoryQueryHandler {
	return queries.NewGetStatusHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusRecordQueryHandler() queries.GetStatusRecordQueryHandler {
	return queries.NewGetStatusRecordQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCommandPublisher() *kafkaout.CommandPublisher {
	return kafkaout.NewCommandPublisher([]string{c.configs.KafkaHost}, c.Topics(), c.logger)
}

func (c *CompositionRoot) CreateDispatcher() *kafka.Dispatcher {
	return kafka.NewDispatcher(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateConsumer() *kafka.Consumer {
	return kafka.NewConsumer(
		[]string{c.configs.KafkaHost},
		c.configs.KafkaConsumerGroup,
		c.Topics(),
		c.CreateDispatcher(),
		kafka.FailurePolicy{},
		c.logger,
	)
}

// CreateEntityResolver wires the lookup clients of every externally owned
// entity kind into one resolver registry.
func (c *CompositionRoot) CreateEntityResolver(httpClient *http.Client) *resolver.Resolver {
	r := resolver.New(c.logger)

	userClient := httpclient.NewUserClient(c.configs.UserServiceBaseURL, httpClient)
	resolver.Register(r,
		func(ctx context.Context, key string) (*user.User, error) {
			id, err := kernel.UUIDFromString(key)
			if err != nil {
				return nil, err
			}
			return userClient.GetByID(ctx, id)
		},
		func(ctx context.Context, keys []string) ([]*user.User, error) {
			ids, err := parseUUIDKeys(keys)
			if err != nil {
				return nil, err
			}
			return userClient.GetByIDs(ctx, ids)
		},
	)

	productClient := httpclient.NewProductClient(c.configs.ProductServiceBaseURL, httpClient)
	resolver.Register(r,
		func(ctx context.Context, key string) (*product.Product, error) {
			id, err := kernel.UUIDFromString(key)
			if err != nil {
				return nil, err
			}
			return productClient.GetByID(ctx, id)
		},
		func(ctx context.Context, keys []string) ([]*product.Product, error) {
			ids, err := parseUUIDKeys(keys)
			if err != nil {
				return nil, err
			}
			return productClient.GetByIDs(ctx, ids)
		},
	)

	// Categories resolve by their natural key, the name.
	categoryClient := httpclient.NewCategoryClient(c.configs.ProductServiceBaseURL, httpClient)
	resolver.Register(r, categoryClient.GetByName, categoryClient.GetByNames)

	reviewClient := httpclient.NewReviewClient(c.configs.ReviewServiceBaseURL, httpClient)
	resolver.Register(r,
		func(ctx context.Context, key string) (*review.Review, error) {
			id, err := kernel.UUIDFromString(key)
			if err != nil {
				return nil, err
			}
			return reviewClient.GetByID(ctx, id)
		},
		func(ctx context.Context, keys []string) ([]*review.Review, error) {
			ids, err := parseUUIDKeys(keys)
			if err != nil {
				return nil, err
			}
			return reviewClient.GetByIDs(ctx, ids)
		},
	)

	return r
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetCurrentStatusesQueryHandler(), c.logger)
}

func parseUUIDKeys(keys []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(keys))
	for _, key := range keys {
		id, err := kernel.UUIDFromString(key)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStatusUoWFactory func() commands.StatusUoW

func (f FuncStatusUoWFactory) Create() commands.StatusUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
