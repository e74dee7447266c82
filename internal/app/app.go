package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DRSN-tech/food-delivery/db"
	config "github.com/DRSN-tech/food-delivery/internal/cfg"
	"github.com/DRSN-tech/food-delivery/internal/domain"
	v1Http "github.com/DRSN-tech/food-delivery/internal/delivery/v1/http"
	"github.com/DRSN-tech/food-delivery/internal/infrastructure/kafka"
	"github.com/DRSN-tech/food-delivery/internal/infrastructure/rabbitmq"
	"github.com/DRSN-tech/food-delivery/internal/repository/memory"
	"github.com/DRSN-tech/food-delivery/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/food-delivery/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/food-delivery/internal/repository/redis"
	redisConv "github.com/DRSN-tech/food-delivery/internal/repository/redis/converter"
	yamlRepo "github.com/DRSN-tech/food-delivery/internal/repository/yaml"
	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/closer"
	"github.com/DRSN-tech/food-delivery/pkg/clients"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/DRSN-tech/food-delivery/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	initTimeout        = 30 * time.Second
	topicTimeout       = 10 * time.Second
	forcedCloseTimeout = 5 * time.Second
	migrationsDir      = "migrations"
)

// App собирает зависимости сервиса и управляет его жизненным циклом.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(forcedCloseTimeout, log),
	}

	if err := a.init(); err != nil {
		// Освобождаем то, что успели поднять
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if closeErr := a.closer.Close(ctx); closeErr != nil {
			log.Warnf("cleanup after failed init: %v", closeErr)
		}
		return nil, err
	}

	return a, nil
}

func (a *App) init() error {
	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	var pg *postgres.PgDatabase
	if a.cfg.Db != nil {
		var err error
		pg, err = a.initPGDB(ctx)
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	catalog, err := a.loadCatalog(ctx, pg)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	searchCache, err := a.initSearchCache(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	producer, err := a.initProducer()
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	shopUC := usecase.NewShopUC(catalog, memory.NewSessionRepo(), searchCache, producer, a.logger)
	// Фоновые задачи должны завершиться до закрытия кэша и брокера (LIFO)
	a.closer.Add("background tasks", func(ctx context.Context) error {
		shopUC.Wait()
		return nil
	})

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, a.logger)
	router.Init(shopUC)

	a.httpSrv = v1Http.NewServer(r, a.cfg.Http)
	a.closer.Add("HTTP server", a.httpSrv.Stop)

	return nil
}

// Run запускает HTTP-сервер и блокируется до сигнала остановки или фатальной ошибки.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown error")
		appErr = errors.Join(appErr, err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func (a *App) initPGDB(ctx context.Context) (*postgres.PgDatabase, error) {
	pg, err := postgres.Connect(ctx, a.cfg.Db)
	if err != nil {
		a.logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add("postgres", func(context.Context) error {
		pg.Close()
		return nil
	})

	if err := pg.Ping(ctx); err != nil {
		a.logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := pg.RunMigrations(db.Migrations, migrationsDir, a.logger); err != nil {
		a.logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return pg, nil
}

// loadCatalog читает каталог из настроенного источника. При CATALOG_SEED
// каталог из YAML (встроенного или файла) предварительно заливается в Postgres.
func (a *App) loadCatalog(ctx context.Context, pg *postgres.PgDatabase) (*domain.Catalog, error) {
	var pgRepo *pgdb.CatalogRepo
	if pg != nil {
		productRepo := pgdb.NewProductRepo(pg.Pool, pgdbConv.ProductConverterImpl{}, pgdbConv.CatalogConverterImpl{})
		categoryRepo := pgdb.NewCategoryRepo(pgdbConv.CategoryConverterImpl{})
		pgRepo = pgdb.NewCatalogRepo(pg.Pool, productRepo, categoryRepo, a.logger)
	}

	var fileRepo usecase.CatalogRepository = yamlRepo.NewEmbeddedCatalogRepo(a.logger)
	if a.cfg.Catalog.Path != "" {
		fileRepo = yamlRepo.NewFileCatalogRepo(a.cfg.Catalog.Path, a.logger)
	}

	if a.cfg.Catalog.Seed {
		if err := seedCatalog(ctx, fileRepo, pgRepo); err != nil {
			a.logger.Errorf(err, "failed to seed catalog")
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	var source usecase.CatalogRepository
	switch a.cfg.Catalog.Source {
	case config.CatalogSourceEmbedded, config.CatalogSourceFile:
		source = fileRepo
	case config.CatalogSourcePostgres:
		source = pgRepo
	default:
		return nil, e.Wrap(a.cfg.Catalog.Source, e.ErrUnknownCatalogSource)
	}

	catalog, err := source.Load(ctx)
	if err != nil {
		a.logger.Errorf(err, "failed to load catalog")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return catalog, nil
}

func seedCatalog(ctx context.Context, from usecase.CatalogRepository, to usecase.CatalogSeeder) error {
	catalog, err := from.Load(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return to.Seed(ctx, catalog)
}

// initSearchCache возвращает nil, если Redis не настроен.
func (a *App) initSearchCache(ctx context.Context) (usecase.SearchCacheRepository, error) {
	if a.cfg.Redis == nil {
		a.logger.Infof("Search cache disabled")
		return nil, nil
	}

	redisClient := clients.NewRedisClient(a.cfg.Redis)
	a.closer.Add("redis", func(context.Context) error {
		return redisClient.Close()
	})

	if err := redisClient.Ping(ctx); err != nil {
		a.logger.Errorf(err, "failed to connect to redis")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return redis.NewSearchCacheRepo(redisClient, redisConv.NewSearchResultConverter(), a.cfg.Redis, a.logger), nil
}

// initProducer возвращает nil, если брокер событий выключен.
func (a *App) initProducer() (usecase.OrderEventProducer, error) {
	switch a.cfg.Events.Broker {
	case config.EventsBrokerNone:
		a.logger.Infof("Order events disabled")
		return nil, nil

	case config.EventsBrokerKafka:
		producer := kafka.NewProducer(a.logger, a.cfg.Events.Kafka)
		a.closer.Add("kafka producer", func(context.Context) error {
			return producer.Close()
		})

		if err := producer.EnsureTopic(topicTimeout); err != nil {
			a.logger.Errorf(err, "failed to ensure kafka topic")
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		return producer, nil

	case config.EventsBrokerRabbitMQ:
		publisher, err := rabbitmq.Connect(a.cfg.Events.RabbitMQ, a.logger)
		if err != nil {
			a.logger.Errorf(err, "failed to connect to rabbitmq")
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		a.closer.Add("rabbitmq publisher", func(context.Context) error {
			return publisher.Close()
		})
		return publisher, nil

	default:
		return nil, e.Wrap(a.cfg.Events.Broker, e.ErrUnknownEventsBroker)
	}
}
