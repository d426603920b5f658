package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"

	logger_adapter "github.com/muzikology/Live2Share/internal/adapters/logger"
	"github.com/muzikology/Live2Share/internal/adapters/memory"
	"github.com/muzikology/Live2Share/internal/adapters/notifier"
	rabbitmq_adapter "github.com/muzikology/Live2Share/internal/adapters/rabbitmq"
	"github.com/muzikology/Live2Share/internal/adapters/rest"
	"github.com/muzikology/Live2Share/internal/configs"
	"github.com/muzikology/Live2Share/internal/contracts"
	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/port"
	"github.com/muzikology/Live2Share/internal/core/usecase"
	"github.com/muzikology/Live2Share/internal/seed"
	fluentlogger "github.com/muzikology/Live2Share/pkg/fluent_logger"
	"github.com/muzikology/Live2Share/pkg/rabbitmq/rabbitmq_common"
	"github.com/muzikology/Live2Share/pkg/rabbitmq/rabbitmq_producer"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config    *configs.AppConfig
	handler   http.Handler
	apiServer *rest.Server

	sseNotifier *notifier.SSENotifier
	publisher   *rabbitmq_producer.Publisher
	connManager *rabbitmq_common.ConnectionManager

	logger       port.LoggerPort
	fluentClient *fluent.Fluent
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}
	return newApp(appConfig, os.Stdout)
}

func newApp(appConfig *configs.AppConfig, logOut io.Writer) (*App, error) {
	app := &App{config: appConfig}

	// --- 1. ЛОГГЕРЫ ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Writer:   logOut,
		Level:    logger_adapter.ParseLevel(appConfig.StdoutLogger.Level),
		UseColor: logOut == os.Stdout,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	if appConfig.FluentBit.Enabled {
		fluentClient, err := fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
			Async:     true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, logger_adapter.ParseLevel(appConfig.FluentBit.Level))
		if err != nil {
			fluentClient.Close()
			return nil, fmt.Errorf("failed to create fluentbit adapter: %w", err)
		}
		app.fluentClient = fluentClient
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiLoggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	app.logger = baseLogger.WithFields(port.Fields{"component": "app"})
	app.logger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 2. СХЕМЫ И ХРАНИЛИЩА ---
	if err := contracts.Init(); err != nil {
		app.logger.Error("Failed to compile JSON schemas", err, nil)
		app.close()
		return nil, fmt.Errorf("failed to compile JSON schemas: %w", err)
	}

	realtyStore, studentStore, err := newStores(appConfig.SeedSampleData)
	if err != nil {
		app.logger.Error("Failed to build sample data", err, nil)
		app.close()
		return nil, err
	}
	app.logger.Info("In-memory stores initialized", port.Fields{"seeded": appConfig.SeedSampleData})

	// --- 3. НОТИФИКАТОРЫ ---
	app.sseNotifier = notifier.NewSSENotifier(baseLogger)
	notifiers := []port.NotifierPort{app.sseNotifier}

	if appConfig.RabbitMQ.Enabled {
		eventPublisher, err := app.initRabbitMQ(baseLogger)
		if err != nil {
			app.logger.Error("Failed to initialize RabbitMQ publisher", err, nil)
			app.close()
			return nil, err
		}
		notifiers = append(notifiers, eventPublisher)
	}
	events := notifier.NewMultiNotifier(notifiers...)
	app.logger.Info("Notifiers initialized", port.Fields{"count": len(notifiers)})

	// --- 4. USE CASES И HTTP ---
	bcryptCost := appConfig.BcryptCost

	realtyHandler := rest.NewRealtyHandler(rest.RealtyUseCases{
		RegisterUser:      usecase.NewRegisterUserUseCase(realtyStore, bcryptCost),
		GetUser:           usecase.NewGetUserUseCase(realtyStore),
		CreateProperty:    usecase.NewCreatePropertyUseCase(realtyStore),
		GetProperty:       usecase.NewGetPropertyUseCase(realtyStore),
		ListProperties:    usecase.NewListPropertiesUseCase(realtyStore),
		UpdateProperty:    usecase.NewUpdatePropertyUseCase(realtyStore),
		DeleteProperty:    usecase.NewDeletePropertyUseCase(realtyStore),
		PropertiesByOwner: usecase.NewGetPropertiesByOwnerUseCase(realtyStore),
		CreateInquiry:     usecase.NewCreateInquiryUseCase(realtyStore, events),
		PropertyInquiries: usecase.NewGetPropertyInquiriesUseCase(realtyStore),
		PropertyReport:    usecase.NewPropertyReportUseCase(realtyStore),
		Suggestions:       usecase.NewSearchSuggestionsUseCase(realtyStore),
	})

	studentHandler := rest.NewStudentHandler(rest.StudentUseCases{
		RegisterStudent:         usecase.NewRegisterStudentUseCase(studentStore, bcryptCost),
		GetStudent:              usecase.NewGetStudentUseCase(studentStore),
		CreateAccommodation:     usecase.NewCreateAccommodationUseCase(studentStore),
		GetAccommodation:        usecase.NewGetAccommodationUseCase(studentStore),
		ListAccommodations:      usecase.NewListAccommodationsUseCase(studentStore),
		UpdateAccommodation:     usecase.NewUpdateAccommodationUseCase(studentStore),
		DeleteAccommodation:     usecase.NewDeleteAccommodationUseCase(studentStore),
		LandlordAccommodations:  usecase.NewGetLandlordAccommodationsUseCase(studentStore),
		CreateRoommate:          usecase.NewCreateRoommateUseCase(studentStore),
		GetRoommates:            usecase.NewGetRoommatesUseCase(studentStore),
		CreateApplication:       usecase.NewCreateApplicationUseCase(studentStore, events),
		AccommodationApps:       usecase.NewGetAccommodationApplicationsUseCase(studentStore),
		UserApplications:        usecase.NewGetUserApplicationsUseCase(studentStore),
		UpdateApplicationStatus: usecase.NewUpdateApplicationStatusUseCase(studentStore, events),
		CreateRentalAgreement:   usecase.NewCreateRentalAgreementUseCase(studentStore),
		GetRentalAgreement:      usecase.NewGetRentalAgreementUseCase(studentStore),
		RentSplit:               usecase.NewRentSplitUseCase(studentStore),
		Suggestions:             usecase.NewSearchSuggestionsUseCase(studentStore),
	})
	eventsHandler := rest.NewEventsHandler(app.sseNotifier, 0)
	app.logger.Info("All use cases initialized", nil)

	serverCfg := rest.ServerConfig{
		Port:           appConfig.Rest.PORT,
		ServiceName:    appConfig.AppName,
		AllowedOrigins: appConfig.Rest.CORSAllowedOrigins,
	}
	app.handler, err = rest.NewRouter(serverCfg, realtyHandler, studentHandler, eventsHandler, baseLogger)
	if err != nil {
		app.logger.Error("Failed to build router", err, nil)
		app.close()
		return nil, fmt.Errorf("failed to build router: %w", err)
	}
	app.apiServer = rest.NewServer(serverCfg, app.handler, baseLogger)
	app.logger.Info("REST API server configured", nil)

	return app, nil
}

func newStores(withSample bool) (*memory.RealtyStore, *memory.StudentStore, error) {
	if !withSample {
		return memory.NewRealtyStore(nil), memory.NewStudentStore(nil), nil
	}

	var (
		realtySeed  *domain.RealtySeed
		studentSeed *domain.StudentSeed
		err         error
	)
	if realtySeed, err = seed.Realty(); err != nil {
		return nil, nil, fmt.Errorf("build realty sample data: %w", err)
	}
	if studentSeed, err = seed.Student(); err != nil {
		return nil, nil, fmt.Errorf("build student sample data: %w", err)
	}
	return memory.NewRealtyStore(realtySeed), memory.NewStudentStore(studentSeed), nil
}

func (a *App) initRabbitMQ(baseLogger port.LoggerPort) (*rabbitmq_adapter.EventPublisher, error) {
	connLogger := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"}))
	connManager, err := rabbitmq_common.NewConnectionManager(rabbitmq_common.Config{URL: a.config.RabbitMQ.URL}, connLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	a.connManager = connManager

	publisher, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		ExchangeName:             a.config.RabbitMQ.Exchange,
		ExchangeType:             "topic",
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_publisher"})),
	}, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create rabbitmq publisher: %w", err)
	}
	a.publisher = publisher

	eventPublisher, err := rabbitmq_adapter.NewEventPublisher(publisher)
	if err != nil {
		return nil, err
	}
	a.logger.Info("RabbitMQ event publisher initialized", port.Fields{"exchange": a.config.RabbitMQ.Exchange})
	return eventPublisher, nil
}

func (a *App) Run() error {
	defer a.close()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)
	go func() {
		if err := a.apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorsCh <- fmt.Errorf("HTTP server start error: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or component error...", nil)
	var runErr error
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case runErr = <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", runErr, nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.apiServer.Stop(ctx); err != nil {
		a.logger.Error("Error during API server shutdown", err, nil)
	}
	return runErr
}

// close освобождает ресурсы в порядке, обратном созданию.
func (a *App) close() {
	if a.sseNotifier != nil {
		a.sseNotifier.Close()
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Error("Error closing rabbitmq publisher", err, nil)
		}
	}
	if a.connManager != nil {
		if err := a.connManager.Close(); err != nil {
			a.logger.Error("Error closing rabbitmq connection", err, nil)
		}
	}
	if a.logger != nil {
		a.logger.Info("Application resources released", nil)
	}
	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
}
