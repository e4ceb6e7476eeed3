package main

import (
	"database/sql"
	"strconv"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/gofiber/websocket/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/printshophq/printshop-admin/internal/admin"
	"github.com/printshophq/printshop-admin/internal/category"
	"github.com/printshophq/printshop-admin/internal/config"
	"github.com/printshophq/printshop-admin/internal/coupon"
	"github.com/printshophq/printshop-admin/internal/events"
	"github.com/printshophq/printshop-admin/internal/logger"
	"github.com/printshophq/printshop-admin/internal/metrics"
	"github.com/printshophq/printshop-admin/internal/notification"
	"github.com/printshophq/printshop-admin/internal/order"
	"github.com/printshophq/printshop-admin/internal/product"
	"github.com/printshophq/printshop-admin/internal/review"
	"github.com/printshophq/printshop-admin/internal/upload"
	"github.com/printshophq/printshop-admin/internal/xerox"
)

func main() {
	cfg := config.LoadServer()
	logger.SetService("printshop-admin-api")
	metrics.Register()

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	if err := ensureSchema(db); err != nil {
		logger.Fatal("schema setup failed", err, nil)
	}

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		metrics.HTTPRequestsTotal.WithLabelValues(c.Method(), strconv.Itoa(c.Response().StatusCode())).Inc()
		return err
	})

	// realtime fanout. With RabbitMQ configured every server instance
	// sees every order_created event; without it the local hub serves a
	// single instance directly.
	hub := events.NewHub()
	var bus events.Publisher = hub
	if cfg.RabbitURL != "" {
		rabbit, err := events.NewRabbit(cfg.RabbitURL)
		if err != nil {
			logger.Fatal("rabbitmq connect failed", err, nil)
		}
		defer rabbit.Close()
		if err := rabbit.Bridge(hub); err != nil {
			logger.Fatal("rabbitmq bridge failed", err, nil)
		}
		bus = rabbit
	}

	adminService := admin.NewService(admin.NewPostgresRepository(db))
	if err := adminService.Seed("Admin", cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Fatal("admin seed failed", err, nil)
	}
	adminHandler := admin.NewHandler(adminService, cfg.JWTSecret)

	notificationService := notification.NewService(notification.NewPostgresRepository(db))
	notificationHandler := notification.NewHandler(notificationService)

	productHandler := product.NewHandler(product.NewService(product.NewPostgresRepository(db)))
	categoryHandler := category.NewHandler(category.NewService(category.NewPostgresRepository(db)))
	orderHandler := order.NewHandler(order.NewService(order.NewPostgresRepository(db)), notificationService, bus)
	xeroxHandler := xerox.NewHandler(xerox.NewService(xerox.NewPostgresRepository(db)))
	couponHandler := coupon.NewHandler(coupon.NewService(coupon.NewPostgresRepository(db)))
	reviewHandler := review.NewHandler(review.NewService(review.NewPostgresRepository(db)))
	uploadHandler := upload.NewHandler(cfg.UploadDir)

	// public surface: login, storefront reads, storefront order placement,
	// uploaded files, metrics and the websocket endpoint. Registered ahead
	// of the JWT middleware so they match first.
	adminHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	orderHandler.RegisterPublicRoutes(app)
	app.Static("/uploads", cfg.UploadDir)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Use("/ws", events.UpgradeGuard(cfg.JWTSecret))
	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		hub.Register(conn)
		defer hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired JWT"})
		},
	}))

	adminHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)
	categoryHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	xeroxHandler.RegisterProtectedRoutes(app)
	couponHandler.RegisterProtectedRoutes(app)
	reviewHandler.RegisterProtectedRoutes(app)
	notificationHandler.RegisterProtectedRoutes(app)
	uploadHandler.RegisterProtectedRoutes(app)

	logger.Info("server starting", map[string]interface{}{"addr": cfg.Addr})
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Fatal("server stopped", err, nil)
	}
}

func mustOpenDB(url string) *sql.DB {
	if url == "" {
		logger.Fatal("DATABASE_URL is not set", nil, nil)
	}
	db, err := sql.Open("pgx", url)
	if err != nil {
		logger.Fatal("database open failed", err, nil)
	}
	if err := db.Ping(); err != nil {
		logger.Fatal("database ping failed", err, nil)
	}
	return db
}

func ensureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS admins (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC NOT NULL DEFAULT 0,
			stock_qty INT NOT NULL DEFAULT 0,
			category TEXT NOT NULL DEFAULT '',
			images TEXT[] NOT NULL DEFAULT '{}',
			created_at TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			image TEXT NOT NULL DEFAULT '',
			ord INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			order_number TEXT NOT NULL UNIQUE,
			customer_name TEXT NOT NULL,
			customer_mobile TEXT NOT NULL DEFAULT '',
			customer_email TEXT NOT NULL DEFAULT '',
			shipping_address TEXT NOT NULL DEFAULT '',
			items JSONB NOT NULL DEFAULT '[]',
			subtotal NUMERIC NOT NULL DEFAULT 0,
			delivery_charges NUMERIC NOT NULL DEFAULT 0,
			total_amount NUMERIC NOT NULL DEFAULT 0,
			order_status TEXT NOT NULL DEFAULT 'pending',
			payment_status TEXT NOT NULL DEFAULT 'pending',
			payment_gateway_data JSONB,
			created_at TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS xerox_orders (
			id SERIAL PRIMARY KEY,
			order_number TEXT NOT NULL UNIQUE,
			customer_name TEXT NOT NULL,
			customer_mobile TEXT NOT NULL DEFAULT '',
			file_name TEXT NOT NULL DEFAULT '',
			file_size BIGINT NOT NULL DEFAULT 0,
			page_count INT NOT NULL DEFAULT 0,
			color_type TEXT NOT NULL DEFAULT '',
			paper_size TEXT NOT NULL DEFAULT '',
			print_side TEXT NOT NULL DEFAULT '',
			copies INT NOT NULL DEFAULT 1,
			price_per_page NUMERIC NOT NULL DEFAULT 0,
			total_amount NUMERIC NOT NULL DEFAULT 0,
			order_status TEXT NOT NULL DEFAULT 'pending',
			payment_status TEXT NOT NULL DEFAULT 'pending',
			created_at TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS xerox_pricing (
			id SERIAL PRIMARY KEY,
			color_type TEXT NOT NULL,
			paper_size TEXT NOT NULL,
			print_side TEXT NOT NULL,
			price_per_page NUMERIC NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			UNIQUE (color_type, paper_size, print_side)
		)`,
		`CREATE TABLE IF NOT EXISTS coupons (
			id SERIAL PRIMARY KEY,
			code TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			discount_type TEXT NOT NULL,
			discount_value NUMERIC NOT NULL DEFAULT 0,
			min_order_amount NUMERIC NOT NULL DEFAULT 0,
			max_discount_amount NUMERIC,
			valid_from TEXT NOT NULL DEFAULT '',
			valid_until TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			product_id INT NOT NULL,
			product_name TEXT NOT NULL DEFAULT '',
			customer_name TEXT NOT NULL DEFAULT '',
			rating INT NOT NULL DEFAULT 0,
			comment TEXT NOT NULL DEFAULT '',
			admin_response TEXT NOT NULL DEFAULT '',
			is_visible BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS notifications (
			id SERIAL PRIMARY KEY,
			type TEXT NOT NULL,
			title TEXT NOT NULL,
			message TEXT NOT NULL DEFAULT '',
			is_read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TEXT NOT NULL DEFAULT ''
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
