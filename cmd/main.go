package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	addManualEntryHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/add_manual_entry"
	addPackageHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/add_package"
	cancelSessionHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/cancel_session"
	completeSessionHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/complete_session"
	confirmFixedScheduleHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/confirm_fixed_schedule"
	createClientHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/create_client"
	createFixedScheduleHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/create_fixed_schedule"
	createSessionHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/create_session"
	deleteClientHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/delete_client"
	deleteFixedScheduleHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/delete_fixed_schedule"
	deleteManualEntryHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/delete_manual_entry"
	deleteSessionHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/delete_session"
	eventsHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/events"
	getActivePackagesHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/get_active_packages"
	getAvailableSlotsHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/get_available_slots"
	getBlocksHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/get_blocks"
	getCatalogHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/get_catalog"
	getClientHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/get_client"
	getCustomSlotsHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/get_custom_slots"
	getPendingFixedSchedulesHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/get_pending_fixed_schedules"
	getSessionNumberHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/get_session_number"
	getValidPeriodsHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/get_valid_periods"
	listClientsHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/list_clients"
	listFixedSchedulesHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/list_fixed_schedules"
	listManualEntriesHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/list_manual_entries"
	listSessionsHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/list_sessions"
	toggleFixedScheduleHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/toggle_fixed_schedule"
	updateBlocksHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/update_blocks"
	updateCustomSlotsHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/update_custom_slots"
	updatePackageHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/update_package"
	"github.com/m04kA/SMC-StudioService/internal/api/middleware"
	"github.com/m04kA/SMC-StudioService/internal/app"
	"github.com/m04kA/SMC-StudioService/internal/availability"
	"github.com/m04kA/SMC-StudioService/internal/catalog"
	"github.com/m04kA/SMC-StudioService/internal/config"
	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/internal/infra/notify"
	blocksRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/blocks"
	clientsRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/clients"
	customSlotsRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/customslots"
	entriesRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/entries"
	fixedSchedulesRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/fixedschedules"
	"github.com/m04kA/SMC-StudioService/internal/infra/storage/kv"
	"github.com/m04kA/SMC-StudioService/internal/infra/storage/migrations"
	sessionsRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/sessions"
	"github.com/m04kA/SMC-StudioService/internal/numbering"
	blocksService "github.com/m04kA/SMC-StudioService/internal/service/blocks"
	clientsService "github.com/m04kA/SMC-StudioService/internal/service/clients"
	customSlotsService "github.com/m04kA/SMC-StudioService/internal/service/customslots"
	entriesService "github.com/m04kA/SMC-StudioService/internal/service/entries"
	fixedSchedulesService "github.com/m04kA/SMC-StudioService/internal/service/fixedschedules"
	sessionsService "github.com/m04kA/SMC-StudioService/internal/service/sessions"
	confirmFixedScheduleUC "github.com/m04kA/SMC-StudioService/internal/usecase/confirm_fixed_schedule"
	createSessionUC "github.com/m04kA/SMC-StudioService/internal/usecase/create_session"
	getAvailableSlotsUC "github.com/m04kA/SMC-StudioService/internal/usecase/get_available_slots"
	getValidPeriodsUC "github.com/m04kA/SMC-StudioService/internal/usecase/get_valid_periods"
	"github.com/m04kA/SMC-StudioService/pkg/logger"
	"github.com/m04kA/SMC-StudioService/pkg/metrics"
	"github.com/m04kA/SMC-StudioService/pkg/txmanager"
)

const sseKeepAlive = 25 * time.Second

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-StudioService...")
	log.Info("Configuration loaded from config.toml")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище
	backend, closeBackend, err := openBackend(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer closeBackend()

	// Уведомления об изменениях
	hub := notify.NewHub(log)
	var publisher kv.Publisher = hub
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		bridge := notify.NewRedisBridge(rdb, cfg.Redis.Channel, uuid.NewString(), hub, log)
		publisher = bridge
		go func() {
			if err := bridge.Run(ctx); err != nil {
				log.Error("Redis bridge stopped: %v", err)
			}
		}()
		log.Info("Redis bridge enabled (addr=%s, channel=%s)", cfg.Redis.Addr, cfg.Redis.Channel)
	}

	store := kv.NewStore(backend, publisher, metricsCollector, log)

	// Справочники и движок
	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		cat, err = catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			log.Fatal("Failed to load catalog: %v", err)
		}
		log.Info("Catalog loaded from %s", cfg.Catalog.Path)
	}

	engineCfg, err := engineConfig(cfg.Scheduling)
	if err != nil {
		log.Fatal("Invalid scheduling config: %v", err)
	}
	engine := availability.NewEngine(engineCfg)
	numberer := numbering.New(cat)
	roster := domain.NewRoster(cfg.Scheduling.ProfessionalIDs(), cfg.Scheduling.DefaultProfessional)
	txMgr := txmanager.New()

	// Инициализируем репозитории
	clientRepository := clientsRepo.NewRepository(store)
	sessionRepository := sessionsRepo.NewRepository(store, log)
	customSlotsRepository := customSlotsRepo.NewRepository(store)
	blocksRepository := blocksRepo.NewRepository(store)
	fixedSchedulesRepository := fixedSchedulesRepo.NewRepository(store)
	entriesRepository := entriesRepo.NewRepository(store)

	// Инициализируем сервисы
	clientSvc := clientsService.NewService(clientRepository, sessionRepository, cat, numberer, log)
	sessionSvc := sessionsService.NewService(sessionRepository, clientRepository, numberer, metricsCollector, log)
	customSlotsSvc := customSlotsService.NewService(customSlotsRepository, roster, log)
	blocksSvc := blocksService.NewService(blocksRepository, roster, log)
	fixedSchedulesSvc := fixedSchedulesService.NewService(fixedSchedulesRepository, clientRepository, sessionRepository, roster, log)
	entriesSvc := entriesService.NewService(entriesRepository, log)

	// Перенос старых разделов сессий
	if err := app.ImportLegacy(ctx, sessionRepository, clientSvc, log); err != nil {
		log.Fatal("Failed to import legacy data: %v", err)
	}

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		sessionRepository,
		customSlotsRepository,
		blocksRepository,
		engine,
		roster,
		metricsCollector,
		log,
	)
	getValidPeriodsUseCase := getValidPeriodsUC.NewUseCase(sessionRepository, engine, roster, log)
	createSessionUseCase := createSessionUC.NewUseCase(
		sessionRepository,
		clientRepository,
		cat,
		numberer,
		engine,
		roster,
		txMgr,
		metricsCollector,
		log,
	)
	confirmFixedScheduleUseCase := confirmFixedScheduleUC.NewUseCase(
		fixedSchedulesRepository,
		clientRepository,
		sessionRepository,
		cat,
		numberer,
		createSessionUseCase,
		log,
	)

	// Фоновые задачи
	if cfg.Housekeeping.Enabled {
		housekeeper := app.NewHousekeeper(customSlotsRepository, blocksRepository, clientSvc, cfg.Housekeeping.RetentionDays, log)
		stopHousekeeping, err := housekeeper.Start(ctx, cfg.Housekeeping.Schedule)
		if err != nil {
			log.Fatal("Failed to start housekeeping: %v", err)
		}
		defer stopHousekeeping()
	}

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(cat, roster, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getValidPeriods := getValidPeriodsHandler.NewHandler(getValidPeriodsUseCase, log)
	getCustomSlots := getCustomSlotsHandler.NewHandler(customSlotsSvc, log)
	updateCustomSlots := updateCustomSlotsHandler.NewHandler(customSlotsSvc, log)
	getBlocks := getBlocksHandler.NewHandler(blocksSvc, log)
	updateBlocks := updateBlocksHandler.NewHandler(blocksSvc, log)

	listSessions := listSessionsHandler.NewHandler(sessionSvc, log)
	createSession := createSessionHandler.NewHandler(createSessionUseCase, log)
	completeSession := completeSessionHandler.NewHandler(sessionSvc, log)
	cancelSession := cancelSessionHandler.NewHandler(sessionSvc, log)
	deleteSession := deleteSessionHandler.NewHandler(sessionSvc, log)
	getSessionNumber := getSessionNumberHandler.NewHandler(sessionSvc, log)

	listClients := listClientsHandler.NewHandler(clientSvc, log)
	createClient := createClientHandler.NewHandler(clientSvc, log)
	getClient := getClientHandler.NewHandler(clientSvc, log)
	deleteClient := deleteClientHandler.NewHandler(clientSvc, log)
	addPackage := addPackageHandler.NewHandler(clientSvc, log)
	updatePackage := updatePackageHandler.NewHandler(clientSvc, log)
	getActivePackages := getActivePackagesHandler.NewHandler(clientSvc, log)

	listFixedSchedules := listFixedSchedulesHandler.NewHandler(fixedSchedulesSvc, log)
	createFixedSchedule := createFixedScheduleHandler.NewHandler(fixedSchedulesSvc, log)
	getPendingFixedSchedules := getPendingFixedSchedulesHandler.NewHandler(fixedSchedulesSvc, log)
	toggleFixedSchedule := toggleFixedScheduleHandler.NewHandler(fixedSchedulesSvc, log)
	deleteFixedSchedule := deleteFixedScheduleHandler.NewHandler(fixedSchedulesSvc, log)
	confirmFixedSchedule := confirmFixedScheduleHandler.NewHandler(confirmFixedScheduleUseCase, log)

	listManualEntries := listManualEntriesHandler.NewHandler(entriesSvc, log)
	addManualEntry := addManualEntryHandler.NewHandler(entriesSvc, log)
	deleteManualEntry := deleteManualEntryHandler.NewHandler(entriesSvc, log)

	events := eventsHandler.NewHandler(hub, sseKeepAlive, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Справочник и расписание ---
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professional}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professional}/valid-periods", getValidPeriods.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professional}/custom-slots/{date}", getCustomSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professional}/custom-slots/{date}", updateCustomSlots.Handle).Methods(http.MethodPut)
	api.HandleFunc("/professionals/{professional}/blocks/{date}", getBlocks.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professional}/blocks/{date}", updateBlocks.Handle).Methods(http.MethodPut)

	// --- Сессии ---
	api.HandleFunc("/sessions", listSessions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/complete", completeSession.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/sessions/{sessionId}/cancel", cancelSession.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/sessions/{sessionId}/number", getSessionNumber.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}", deleteSession.Handle).Methods(http.MethodDelete)

	// --- Клиенты и пакеты ---
	api.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients", createClient.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients/{clientId}", getClient.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}", deleteClient.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/clients/{clientId}/packages", addPackage.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients/{clientId}/packages/active", getActivePackages.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}/packages/{packageId}", updatePackage.Handle).Methods(http.MethodPut)

	// --- Фиксированные расписания ---
	api.HandleFunc("/fixed-schedules", listFixedSchedules.Handle).Methods(http.MethodGet)
	api.HandleFunc("/fixed-schedules", createFixedSchedule.Handle).Methods(http.MethodPost)
	api.HandleFunc("/fixed-schedules/pending", getPendingFixedSchedules.Handle).Methods(http.MethodGet)
	api.HandleFunc("/fixed-schedules/{id}/toggle", toggleFixedSchedule.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/fixed-schedules/{id}/confirm", confirmFixedSchedule.Handle).Methods(http.MethodPost)
	api.HandleFunc("/fixed-schedules/{id}", deleteFixedSchedule.Handle).Methods(http.MethodDelete)

	// --- Ручные записи ---
	api.HandleFunc("/manual-entries", listManualEntries.Handle).Methods(http.MethodGet)
	api.HandleFunc("/manual-entries", addManualEntry.Handle).Methods(http.MethodPost)
	api.HandleFunc("/manual-entries/{id}", deleteManualEntry.Handle).Methods(http.MethodDelete)

	// --- Уведомления ---
	api.HandleFunc("/events", events.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		BaseContext:  func(_ net.Listener) context.Context { return ctx },
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// SSE подписчики и фоновые задачи завершаются по отмене контекста
	stop()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// openBackend выбирает бэкенд хранилища по конфигурации
func openBackend(ctx context.Context, cfg *config.Config, log *logger.Logger) (kv.Backend, func(), error) {
	if cfg.Storage.Driver == "memory" {
		log.Warn("Using in-memory storage: data is lost on restart")
		return kv.NewMemoryBackend(), func() {}, nil
	}

	dbCfg := cfg.Storage.Database
	db, err := sql.Open("postgres", dbCfg.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(dbCfg.MaxOpenConns)
	db.SetMaxIdleConns(dbCfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(dbCfg.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)", dbCfg.Host, dbCfg.Port, dbCfg.DBName)

	migrator, err := migrations.NewMigrator(db, log)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	if err := migrator.Run(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}

	return kv.NewPostgresBackend(db), func() { db.Close() }, nil
}

// engineConfig параметры движка слотов из конфигурации
func engineConfig(s config.SchedulingConfig) (availability.Config, error) {
	weekday, err := availability.NewWindow(s.WeekdayStart, s.WeekdayEnd)
	if err != nil {
		return availability.Config{}, err
	}
	saturday, err := availability.NewWindow(s.SaturdayStart, s.SaturdayEnd)
	if err != nil {
		return availability.Config{}, err
	}

	mode := availability.StepBackwardFromAnchor
	if s.StepMode == string(availability.StepForward) {
		mode = availability.StepForward
	}

	return availability.Config{
		BufferMinutes:  s.BufferMinutes,
		WeekdayWindow:  weekday,
		SaturdayWindow: saturday,
		StepMode:       mode,
	}, nil
}
