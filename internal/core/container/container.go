package container

import (
	"database/sql"
	"net/http"
	"os"
	"strconv"
	"time"

	auditLogRepo "instock/internal/auditlog"
	"instock/internal/catalog"
	"instock/internal/grid"
	"instock/internal/integrations/catalogapi"
	"instock/internal/persistence"
	"instock/internal/repository"
	"instock/internal/scanner"
	"instock/internal/shipments"
	"instock/internal/stats"
	"instock/internal/stocks"
	"instock/internal/users"
	"instock/internal/warehouse"
	"instock/pkg/auditlog"
	"instock/pkg/security"

	"go.uber.org/zap"
)

type Container struct {
	Repository      *repository.Repository
	Warehouse       *warehouse.Warehouse
	Grid            *grid.Grid
	Scanner         *scanner.Scanner
	CatalogAPI      *catalogapi.Client
	AuditLog        *auditlog.Auditlog
	LoginHandler    *security.LoginHandler
	CatalogHandler  *catalog.CatalogHandler
	StockHandler    *stocks.StockHandler
	ShipmentHandler *shipments.ShipmentHandler
	StatsHandler    *stats.StatsHandler
	GridHandler     *grid.GridHandler
	ScanHandler     *scanner.ScanHandler
	UserHandler     *users.UsersHandler
}

func NewAppContainer(db *sql.DB, logger *zap.Logger) (*Container, error) {
	repo := repository.NewRepository(db)

	gateway := persistence.NewPostgresGateway(repo)
	wh := warehouse.New(gateway, logger)

	floorGrid, err := grid.NewGrid(
		envInt("GRID_ROWS", grid.DefaultRows),
		envInt("GRID_COLUMNS", grid.DefaultColumns),
	)
	if err != nil {
		return nil, err
	}

	scan := scanner.New(scanner.Config{MinInterval: envDuration("SCAN_MIN_INTERVAL", scanner.DefaultMinInterval)}, logger)

	catalogAPI := catalogapi.NewClient(os.Getenv("CATALOG_API_URL"), &http.Client{Timeout: 10 * time.Second})

	auditRepo := auditLogRepo.NewRepository(repo)
	auditLog := auditlog.NewAuditLog(auditRepo, logger)

	userRepo := users.NewRepository(repo)

	return &Container{
		Repository:      repo,
		Warehouse:       wh,
		Grid:            floorGrid,
		Scanner:         scan,
		CatalogAPI:      catalogAPI,
		AuditLog:        auditLog,
		LoginHandler:    security.NewLoginHandler(repo),
		CatalogHandler:  catalog.NewCatalogHandler(wh, auditLog),
		StockHandler:    stocks.NewStockHandler(wh, floorGrid, auditLog),
		ShipmentHandler: shipments.NewShipmentHandler(wh, floorGrid, auditLog),
		StatsHandler:    stats.NewStatsHandler(wh),
		GridHandler:     grid.NewGridHandler(floorGrid),
		ScanHandler:     scanner.NewScanHandler(scan, wh),
		UserHandler:     users.NewHandler(userRepo),
	}, nil
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return value
}
