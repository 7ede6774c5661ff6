package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"apply/internal/applicationform/events"
	formHandler "apply/internal/applicationform/handler"
	formMetrics "apply/internal/applicationform/metrics"
	formService "apply/internal/applicationform/service"
	"apply/internal/applicationform/store/cheater"
	formStore "apply/internal/applicationform/store/form"
	"apply/internal/applicationform/validator"
	evaluationHandler "apply/internal/evaluation/handler"
	evaluationService "apply/internal/evaluation/service"
	evaluationStore "apply/internal/evaluation/store"
	jwttoken "apply/internal/jwt_token"
	"apply/internal/platform/config"
	"apply/internal/platform/database"
	"apply/internal/platform/httpserver"
	"apply/internal/platform/logger"
	"apply/internal/platform/metrics"
	platformRedis "apply/internal/platform/redis"
	recruitmentHandler "apply/internal/recruitment/handler"
	recruitmentMetrics "apply/internal/recruitment/metrics"
	"apply/internal/recruitment/scheduler"
	recruitmentService "apply/internal/recruitment/service"
	recruitmentStore "apply/internal/recruitment/store"
	httptransport "apply/internal/transport/http"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// recruitmentBackend is satisfied by both recruitment stores; the form
// service reads recruitments and items through the same store.
type recruitmentBackend interface {
	recruitmentService.Store
	formService.RecruitmentReader
}

type cheaterBackend interface {
	formHandler.CheaterList
	formService.CheaterChecker
}

type infra struct {
	db        *sql.DB
	redis     *platformRedis.Client
	publisher formService.EventPublisher
	closers   []func()
}

func (i *infra) close() {
	for n := len(i.closers) - 1; n >= 0; n-- {
		i.closers[n]()
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in, err := connect(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer in.close()

	var (
		recruitments  recruitmentBackend
		forms         formService.FormStore
		recruitmentTx recruitmentService.StoreTx
		formTx        formService.StoreTx
		evaluations   evaluationService.Store
		evaluationTx  evaluationService.StoreTx
		cheaters      cheaterBackend
		checks        []func(ctx context.Context) error
		catalogLock   *sync.RWMutex
	)
	if in.db != nil {
		recruitments = recruitmentStore.NewPostgres(in.db)
		forms = formStore.NewPostgres(in.db)
		tx := newPostgresTx(in.db, cfg.Database.TxTimeout)
		evaluations = evaluationStore.NewPostgres(in.db)
		recruitmentTx, formTx, evaluationTx = tx, tx, tx
		checks = append(checks, in.db.PingContext)
	} else {
		log.Warn("database.url is empty, using in-memory stores")
		recruitments = recruitmentStore.NewInMemory()
		forms = formStore.NewInMemory()
		evaluations = evaluationStore.NewInMemory()
		catalogLock = &sync.RWMutex{}
	}
	if in.redis != nil {
		cheaters = cheater.NewRedis(in.redis.Client)
		checks = append(checks, in.redis.Health)
	} else {
		cheaters = cheater.NewInMemory()
	}

	recruitmentOpts := []recruitmentService.Option{
		recruitmentService.WithLogger(log),
		recruitmentService.WithMetrics(recruitmentMetrics.New()),
	}
	if recruitmentTx != nil {
		recruitmentOpts = append(recruitmentOpts, recruitmentService.WithTx(recruitmentTx))
	} else {
		recruitmentOpts = append(recruitmentOpts, recruitmentService.WithCatalogLock(catalogLock))
	}
	recruitmentSvc := recruitmentService.New(recruitments, recruitmentOpts...)

	formOpts := []formService.Option{
		formService.WithLogger(log),
		formService.WithMetrics(formMetrics.New()),
		formService.WithValidators(validator.NewRegistry(validator.Chain{
			validator.ReferenceURL{},
			validator.NewCheater(cheaters),
		})),
		formService.WithCheaters(cheaters),
		formService.WithPublisher(in.publisher),
	}
	if formTx != nil {
		formOpts = append(formOpts, formService.WithTx(formTx))
	} else {
		formOpts = append(formOpts, formService.WithCatalogLock(catalogLock))
	}
	formSvc := formService.New(forms, recruitments, formOpts...)

	evaluationOpts := []evaluationService.Option{evaluationService.WithLogger(log)}
	if evaluationTx != nil {
		evaluationOpts = append(evaluationOpts, evaluationService.WithTx(evaluationTx))
	}
	evaluationSvc := evaluationService.New(evaluations, recruitments, evaluationOpts...)

	jwtService := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.JWTIssuer)
	if cfg.Auth.AdminToken == "" {
		log.Warn("auth.admin_token is empty, admin routes reject every request")
	}
	router := httptransport.NewRouter(httptransport.Deps{
		Logger:       log,
		Metrics:      metrics.New(),
		JWTValidator: jwttoken.NewJWTServiceAdapter(jwtService),
		AdminToken:   cfg.Auth.AdminToken,
		Forms:        formHandler.New(formSvc, cheaters, log),
		Recruitments: recruitmentHandler.New(recruitmentSvc, log),
		Evaluations:  evaluationHandler.New(evaluationSvc, log),
		Ready:        readiness(checks...),
	})
	srv := httpserver.New(cfg.Server.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting apply", "addr", cfg.Server.Addr, "in_memory", cfg.InMemory(), "events", cfg.Events.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	if cfg.Scheduler.OpenRecruitmentsSpec != "" {
		sched := scheduler.New(recruitmentSvc, cfg.Scheduler.OpenRecruitmentsSpec, log)
		g.Go(func() error { return sched.Run(gctx) })
	}
	return g.Wait()
}

// connect opens the database, Redis and the event backend that cfg asks for.
func connect(ctx context.Context, cfg config.Config, log *slog.Logger) (*infra, error) {
	in := &infra{publisher: events.Nop{}}

	if !cfg.InMemory() {
		db, err := database.Open(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		in.db = db
		in.closers = append(in.closers, func() { _ = db.Close() })
		if cfg.Database.MigrateOnStart {
			n, err := database.Migrate(db)
			if err != nil {
				in.close()
				return nil, err
			}
			log.Info("migrations applied", "count", n)
		}
	}

	rc, err := platformRedis.New(ctx, cfg.Redis)
	if err != nil {
		in.close()
		return nil, err
	}
	if rc != nil {
		in.redis = rc
		in.closers = append(in.closers, func() { _ = rc.Close() })
	}

	switch cfg.Events.Backend {
	case config.EventsBackendRedis:
		in.publisher = events.NewRedisPublisher(rc.Client, cfg.Events.RedisChannel)
	case config.EventsBackendKafka:
		pub, err := events.NewKafkaPublisher(cfg.Events.KafkaBrokers, cfg.Events.KafkaTopic)
		if err != nil {
			in.close()
			return nil, err
		}
		in.closers = append(in.closers, pub.Close)
		topicCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		if err := pub.EnsureTopic(topicCtx, 1, 1); err != nil {
			log.Warn("could not ensure kafka topic", "topic", cfg.Events.KafkaTopic, "error", err)
		}
		cancel()
		in.publisher = pub
	}
	return in, nil
}

// readiness fails on the first backend that does not answer.
func readiness(checks ...func(ctx context.Context) error) func(ctx context.Context) error {
	if len(checks) == 0 {
		return nil
	}
	return func(ctx context.Context) error {
		for _, check := range checks {
			if err := check(ctx); err != nil {
				return err
			}
		}
		return nil
	}
}
