package app

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"crypto-arcade/internal/audit"
	"crypto-arcade/internal/config"
	"crypto-arcade/internal/db"
	"crypto-arcade/internal/event"
	"crypto-arcade/internal/games"
	"crypto-arcade/internal/kvstore"
	"crypto-arcade/internal/logger"
	"crypto-arcade/internal/monitoring"
	"crypto-arcade/internal/score"
	"crypto-arcade/internal/security"
	"crypto-arcade/internal/shop"
	"crypto-arcade/internal/wallet"
	wshub "crypto-arcade/internal/ws"
)

type Server struct {
	app  *fiber.App
	port string
}

func NewServer() (*Server, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger.Init()
	monitoring.Init()

	database, err := db.Init(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	bus := event.NewBus()
	hub := wshub.NewHub()
	auditService := audit.New(database)
	store := kvstore.NewSQLite(database)

	walletService := wallet.New(bus, cfg.ConnectDelay, cfg.Seed)
	tracker := score.New(store, bus)
	generator := games.NewGenerator(cfg.Seed)

	engines := make(map[string]*games.Engine)
	for _, rules := range []games.Rules{games.CoinFlip{}, games.GuessDie{}, games.DiceRoll{}} {
		gc := cfg.Games[rules.ID()]
		engine := games.NewEngine(rules, gc.Bet, gc.Delay, walletService, generator, bus)
		if rules.ID() == "dice" {
			engine.AttachRecorder(tracker)
		}
		engines[rules.ID()] = engine
	}

	shopService := shop.New(walletService, bus, cfg.VerifyDelay, cfg.TransferDelay)

	RegisterConsumers(bus, auditService, hub)

	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(hub.Handler))

	api := app.Group("/api", security.APIKeyGuard(cfg.APIKey))
	wallet.RegisterRoutes(api, walletService)
	games.RegisterRoutes(api, engines)
	score.RegisterRoutes(api, tracker)
	shop.RegisterRoutes(api, shopService)

	return &Server{app: app, port: cfg.Port}, nil
}

func (s *Server) Start() error {
	return s.app.Listen(":" + s.port)
}
