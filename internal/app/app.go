package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/andreyxaxa/Image-Transformer/config"
	kafkactrl "github.com/andreyxaxa/Image-Transformer/internal/controller/kafka"
	"github.com/andreyxaxa/Image-Transformer/internal/controller/listener"
	"github.com/andreyxaxa/Image-Transformer/internal/controller/restapi"
	"github.com/andreyxaxa/Image-Transformer/internal/infrastructure"
	"github.com/andreyxaxa/Image-Transformer/internal/infrastructure/fanout"
	infrakafka "github.com/andreyxaxa/Image-Transformer/internal/infrastructure/kafka"
	"github.com/andreyxaxa/Image-Transformer/internal/infrastructure/logsink"
	"github.com/andreyxaxa/Image-Transformer/internal/infrastructure/processor"
	"github.com/andreyxaxa/Image-Transformer/internal/infrastructure/results"
	"github.com/andreyxaxa/Image-Transformer/internal/repo"
	"github.com/andreyxaxa/Image-Transformer/internal/repo/persistent"
	"github.com/andreyxaxa/Image-Transformer/internal/usecase/conversion"
	"github.com/andreyxaxa/Image-Transformer/internal/usecase/resize"
	"github.com/andreyxaxa/Image-Transformer/pkg/httpserver"
	"github.com/andreyxaxa/Image-Transformer/pkg/kafka/consumer"
	"github.com/andreyxaxa/Image-Transformer/pkg/kafka/producer"
	"github.com/andreyxaxa/Image-Transformer/pkg/logger"
	"github.com/andreyxaxa/Image-Transformer/pkg/redisclient"
	"github.com/andreyxaxa/Image-Transformer/pkg/s3client"
)

func Run(cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Logger
	l := logger.New(cfg.Log.Level)

	// Repository

	// s3 (optional, serves s3://bucket/key paths)
	var objects repo.ImageStore
	if cfg.S3.Enabled {
		s3Ctx, s3Cancel := context.WithTimeout(ctx, cfg.S3.CfgLoadTimeout)
		s3c, err := s3client.New(s3Ctx, cfg.S3.Endpoint, cfg.S3.AccessKey, cfg.S3.SecretKey,
			s3client.Region(cfg.S3.Region),
			s3client.UsePathStyle(cfg.S3.UsePathStyle),
			s3client.ConnAttempts(cfg.S3.ConnAttempts),
			s3client.ConnTimeout(cfg.S3.ConnTimeout),
			s3client.Logf(func(format string, args ...any) { l.Warn(format, args...) }),
		)
		s3Cancel()
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - s3client.New: %w", err))
		}
		objects = persistent.NewObjectRepo(s3c)
	}

	imageRepo := persistent.NewImageRepo(persistent.NewFileRepo(), objects)

	// Codec
	codec := processor.New(imageRepo)

	// Use-Case
	conversionUseCase := conversion.New(codec)
	resizeUseCase := resize.New(codec, cfg.Codec.JPEGQuality)

	// Results (HTTP callers collect outcomes by request id)
	var resultStore repo.ResultStore
	if cfg.HTTP.Enabled {
		switch cfg.Results.Driver {
		case config.ResultsDriverRedis:
			rc, err := redisclient.New(ctx, cfg.Results.RedisAddr,
				redisclient.Password(cfg.Results.RedisPassword),
				redisclient.DB(cfg.Results.RedisDB),
				redisclient.ConnAttempts(cfg.Results.ConnAttempts),
				redisclient.ConnTimeout(cfg.Results.ConnTimeout),
				redisclient.Logf(func(format string, args ...any) { l.Warn(format, args...) }),
			)
			if err != nil {
				l.Fatal(fmt.Errorf("app - Run - redisclient.New: %w", err))
			}
			defer rc.Close()

			resultStore = persistent.NewResultRedisRepo(rc, cfg.Results.TTL, cfg.Results.RedisPrefix)
		default:
			resultStore = persistent.NewResultMemoryRepo(cfg.Results.TTL)
		}
	}

	// Events sink
	var events infrastructure.EventsSender
	if cfg.Kafka.Enabled {
		kafkaProducer, err := producer.New(ctx, cfg.Kafka.Brokers,
			producer.ConnAttempts(cfg.Kafka.ConnAttempts),
			producer.ConnTimeout(cfg.Kafka.ConnTimeout),
			producer.BatchTimeout(cfg.Kafka.BatchTimeout),
			producer.Logf(func(format string, args ...any) { l.Warn(format, args...) }),
		)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - producer.New: %w", err))
		}
		events = infrakafka.NewEventProducer(kafkaProducer, cfg.Kafka.EventsTopic)
	} else {
		events = logsink.New(l)
	}
	if resultStore != nil {
		events = fanout.New(events, results.NewRecorder(resultStore))
	}
	defer func() {
		if err := events.Close(); err != nil {
			l.Error(fmt.Errorf("app - Run - events.Close: %w", err))
		}
	}()

	// Listeners
	conversionListener := listener.NewConversionListener(
		conversionUseCase,
		events,
		l,
		cfg.Listener.QueueSize,
		cfg.Listener.SendTimeout,
	)
	resizeListener := listener.NewResizeListener(
		resizeUseCase,
		events,
		l,
		cfg.Listener.QueueSize,
		cfg.Listener.SendTimeout,
		cfg.Listener.ResizeEmitFailures,
	)

	// Kafka as Controller
	var kafkaController *kafkactrl.KafkaController
	if cfg.Kafka.Enabled {
		kafkaConsumer, err := consumer.New(ctx, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.RequestsTopic,
			consumer.ConnAttempts(cfg.Kafka.ConnAttempts),
			consumer.ConnTimeout(cfg.Kafka.ConnTimeout),
			consumer.MaxBytes(cfg.Kafka.MaxBytes),
			consumer.Logf(func(format string, args ...any) { l.Warn(format, args...) }),
		)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - consumer.New: %w", err))
		}

		kafkaController = kafkactrl.New(
			conversionListener,
			resizeListener,
			infrakafka.NewRequestConsumer(kafkaConsumer),
			l,
			cfg.KafkaController.CommitTimeout,
			cfg.KafkaController.SubmitTimeout,
		)
	}

	// HTTP Server
	var httpServer *httpserver.Server
	if cfg.HTTP.Enabled {
		httpServer = httpserver.New(l,
			httpserver.Port(cfg.HTTP.Port),
			httpserver.Prefork(cfg.HTTP.UsePreforkMode),
			httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
			httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
			httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
			httpserver.BodyLimit(cfg.HTTP.BodyLimit),
			httpserver.ErrorHandler(restapi.ErrorHandler),
		)
		restapi.NewRouter(httpServer.App, cfg, conversionListener, resizeListener, resultStore, l)
	}

	// Start Components
	err := conversionListener.Start(ctx)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - conversionListener.Start: %w", err))
	}
	err = resizeListener.Start(ctx)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - resizeListener.Start: %w", err))
	}
	if kafkaController != nil {
		err = kafkaController.Start(ctx)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - kafkaController.Start: %w", err))
		}
	}

	var httpNotify <-chan error
	if httpServer != nil {
		httpServer.Start()
		httpNotify = httpServer.Notify()
	}

	l.Info("app - Run - started: kafka=%t http=%t s3=%t", cfg.Kafka.Enabled, cfg.HTTP.Enabled, cfg.S3.Enabled)

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpNotify:
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown: stop intake first, then drain the listeners
	if httpServer != nil {
		err = httpServer.Shutdown()
		if err != nil {
			l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
		}
	}

	if kafkaController != nil {
		kcShutdownCtx, kcShutdownCancel := context.WithTimeout(ctx, cfg.KafkaController.ShutdownTimeout)
		err = kafkaController.Shutdown(kcShutdownCtx)
		kcShutdownCancel()
		if err != nil {
			l.Error(fmt.Errorf("app - Run - kafkaController.Shutdown: %w", err))
		}
	}

	lShutdownCtx, lShutdownCancel := context.WithTimeout(ctx, cfg.Listener.ShutdownTimeout)
	defer lShutdownCancel()

	err = conversionListener.Shutdown(lShutdownCtx)
	if err != nil {
		l.Error(fmt.Errorf("app - Run - conversionListener.Shutdown: %w", err))
	}
	err = resizeListener.Shutdown(lShutdownCtx)
	if err != nil {
		l.Error(fmt.Errorf("app - Run - resizeListener.Shutdown: %w", err))
	}
}
