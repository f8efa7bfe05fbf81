package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addServiceHandler "github.com/Obaraten64/TravelPlanningRestService/internal/api/handlers/add_service"
	bookServiceHandler "github.com/Obaraten64/TravelPlanningRestService/internal/api/handlers/book_service"
	completeTripHandler "github.com/Obaraten64/TravelPlanningRestService/internal/api/handlers/complete_trip"
	createTripHandler "github.com/Obaraten64/TravelPlanningRestService/internal/api/handlers/create_trip"
	deleteTripsHandler "github.com/Obaraten64/TravelPlanningRestService/internal/api/handlers/delete_trips"
	listServicesHandler "github.com/Obaraten64/TravelPlanningRestService/internal/api/handlers/list_services"
	listTripsHandler "github.com/Obaraten64/TravelPlanningRestService/internal/api/handlers/list_trips"
	loginHandler "github.com/Obaraten64/TravelPlanningRestService/internal/api/handlers/login"
	registerHandler "github.com/Obaraten64/TravelPlanningRestService/internal/api/handlers/register"
	"github.com/Obaraten64/TravelPlanningRestService/internal/api/middleware"
	"github.com/Obaraten64/TravelPlanningRestService/internal/config"
	"github.com/Obaraten64/TravelPlanningRestService/internal/domain"
	cityRepo "github.com/Obaraten64/TravelPlanningRestService/internal/infra/storage/city"
	serviceRepo "github.com/Obaraten64/TravelPlanningRestService/internal/infra/storage/service"
	tripRepo "github.com/Obaraten64/TravelPlanningRestService/internal/infra/storage/trip"
	userRepo "github.com/Obaraten64/TravelPlanningRestService/internal/infra/storage/user"
	catalogService "github.com/Obaraten64/TravelPlanningRestService/internal/service/catalog"
	tripsService "github.com/Obaraten64/TravelPlanningRestService/internal/service/trips"
	usersService "github.com/Obaraten64/TravelPlanningRestService/internal/service/users"
	bookServiceUC "github.com/Obaraten64/TravelPlanningRestService/internal/usecase/book_service"
	createTripUC "github.com/Obaraten64/TravelPlanningRestService/internal/usecase/create_trip"
	deleteTripsUC "github.com/Obaraten64/TravelPlanningRestService/internal/usecase/delete_trips"
	"github.com/Obaraten64/TravelPlanningRestService/pkg/logger"
	"github.com/Obaraten64/TravelPlanningRestService/pkg/metrics"
	"github.com/Obaraten64/TravelPlanningRestService/pkg/token"
	"github.com/Obaraten64/TravelPlanningRestService/pkg/txmanager"
)

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

	log.Info("Starting TravelPlanningRestService...")
	log.Info("Configuration loaded from config.toml")

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории
	cityRepository := cityRepo.NewRepository(db)
	serviceRepository := serviceRepo.NewRepository(db)
	tripRepository := tripRepo.NewRepository(db)
	userRepository := userRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)
	tokenMgr := token.NewManager(cfg.Auth.Secret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	// Инициализируем сервисы
	tripsSvc := tripsService.NewService(tripRepository, txMgr, log)
	catalogSvc := catalogService.NewService(serviceRepository, cityRepository, tripRepository, txMgr, log)
	usersSvc := usersService.NewService(userRepository, log)

	// Инициализируем use cases
	createTripUseCase := createTripUC.NewUseCase(tripRepository, cityRepository, txMgr, log)
	bookServiceUseCase := bookServiceUC.NewUseCase(tripRepository, serviceRepository, txMgr, log)
	deleteTripsUseCase := deleteTripsUC.NewUseCase(tripRepository, txMgr, log)

	// Инициализируем handlers
	register := registerHandler.NewHandler(usersSvc, log)
	login := loginHandler.NewHandler(usersSvc, tokenMgr, log)
	createTrip := createTripHandler.NewHandler(createTripUseCase, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	bookService := bookServiceHandler.NewHandler(bookServiceUseCase, log)
	completeTrip := completeTripHandler.NewHandler(tripsSvc, log)
	listTrips := listTripsHandler.NewHandler(tripsSvc, log)
	deleteTrips := deleteTripsHandler.NewHandler(deleteTripsUseCase, log)
	addService := addServiceHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Метрики (если включены)
	if cfg.Metrics.Enabled {
		metricsCollector := metrics.New(cfg.Metrics.ServiceName)
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	r.HandleFunc("/user/register", register.Handle).Methods(http.MethodPost)
	r.HandleFunc("/user/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (любая аутентифицированная роль)
	// ============================================================

	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenMgr))

	// Планирование поездки
	protected.HandleFunc("/travel/create", createTrip.Handle).Methods(http.MethodPost)

	// Услуги в городе назначения (или весь каталог, если поездка не запланирована)
	protected.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Бронирование услуги на поездку
	protected.HandleFunc("/services/book", bookService.Handle).Methods(http.MethodPost)

	// Завершение поездки
	protected.HandleFunc("/travel/complete", completeTrip.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (только роль ADMIN)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireRole(domain.RoleAdmin))

	// Список всех поездок
	admin.HandleFunc("/travel/all", listTrips.Handle).Methods(http.MethodGet)

	// Массовое удаление поездок по городам
	admin.HandleFunc("/travel/delete", deleteTrips.Handle).Methods(http.MethodDelete)

	// Добавление услуги в каталог
	admin.HandleFunc("/services/add", addService.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
