package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"mokkilicores-api/internal/api"
	"mokkilicores-api/internal/cache"
	"mokkilicores-api/internal/config"
	"mokkilicores-api/internal/repository"
	"mokkilicores-api/internal/service"
	"mokkilicores-api/migrations"
)

func connectDB(dsn string, maxOpenConns int) (*sql.DB, error) {
	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				db.SetMaxOpenConns(maxOpenConns)
				log.Printf("Connected to DB")
				return db, nil
			}
		}
		log.Printf("Retry %d: Failed to connect to DB: %v", i+1, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB after retries: %v", err)
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectDB(cfg.DB.DSN, cfg.DB.MaxOpenConns)
	if err != nil {
		panic(err)
	}

	if err := migrations.AutoMigrateClientes(3, db); err != nil {
		log.Fatalf("Failed to migrate clientes table: %v", err)
	}
	if err := migrations.AutoMigrateDirecciones(3, db); err != nil {
		log.Fatalf("Failed to migrate direcciones table: %v", err)
	}
	if err := migrations.AutoMigrateInventarios(3, db); err != nil {
		log.Fatalf("Failed to migrate inventarios table: %v", err)
	}
	if err := migrations.AutoMigratePedidos(3, db); err != nil {
		log.Fatalf("Failed to migrate pedidos table: %v", err)
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	}

	kafkaWriter := config.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)

	clienteRepo := repository.NewClienteRepository(db)
	direccionRepo := repository.NewDireccionRepository(db)
	inventarioRepo := repository.NewInventarioRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)

	tokenTTL := time.Duration(cfg.JWT.ExpiryMinutes) * time.Minute
	tokens := service.NewTokenService(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.Audience, tokenTTL)

	handlers := api.Handlers{
		Account:    api.NewAccountHandler(service.NewAccountService(clienteRepo, tokens, rdb, tokenTTL)),
		Cliente:    api.NewClienteHandler(service.NewClienteService(clienteRepo)),
		Direccion:  api.NewDireccionHandler(service.NewDireccionService(direccionRepo, clienteRepo)),
		Inventario: api.NewInventarioHandler(service.NewInventarioService(inventarioRepo)),
		Pedido:     api.NewPedidoHandler(service.NewPedidoService(pedidoRepo, clienteRepo, inventarioRepo, direccionRepo, kafkaWriter)),
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	api.Register(e, tokens, handlers)

	initializeCache(clienteRepo, inventarioRepo, direccionRepo)

	e.Logger.Fatal(e.Start(cfg.Server.Addr))
}

// initializeCache warm-loads three tables into a process-wide snapshot. Nothing
// reads it back; kept for parity with the system this API replaces.
func initializeCache(clientes *repository.ClienteRepository, inventarios *repository.InventarioRepository, direcciones *repository.DireccionRepository) {
	ctx := context.Background()
	snap := cache.New(cache.DefaultTTL)

	if err := cache.Load(ctx, snap, cache.ClienteKey, clientes); err != nil {
		log.Printf("Failed to warm clientes cache: %v", err)
	}
	if err := cache.Load(ctx, snap, cache.InventarioKey, inventarios); err != nil {
		log.Printf("Failed to warm inventarios cache: %v", err)
	}
	if err := cache.Load(ctx, snap, cache.DireccionKey, direcciones); err != nil {
		log.Printf("Failed to warm direcciones cache: %v", err)
	}
}
