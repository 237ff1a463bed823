// seed puebla la base de datos con datos de demostración: un usuario admin,
// categorías, proveedores y productos con su movimiento AJUSTE_INICIAL.
// Es re-ejecutable: los registros que ya existen se omiten.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"os"

	"github.com/shopspring/decimal"

	"github.com/sclconsulting/inventario-api/internal/application/auth"
	"github.com/sclconsulting/inventario-api/internal/application/dto"
	"github.com/sclconsulting/inventario-api/internal/application/inventory"
	"github.com/sclconsulting/inventario-api/internal/application/usecase"
	"github.com/sclconsulting/inventario-api/internal/domain"
	"github.com/sclconsulting/inventario-api/internal/domain/entity"
	"github.com/sclconsulting/inventario-api/internal/infrastructure/postgres"
	"github.com/sclconsulting/inventario-api/pkg/config"
	"github.com/sclconsulting/inventario-api/pkg/jwt"
	"github.com/sclconsulting/inventario-api/pkg/logger"
)

type productSeed struct {
	name     string
	sku      string
	price    string
	stock    int64
	stockMin int64
	category string
	supplier string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, jwt.Options{
		Secret:     cfg.JWT.Secret,
		Algorithm:  cfg.JWT.Algorithm,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.ExpMinutes,
	})
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, supplierRepo)
	movementUC := inventory.NewMovementUseCase(productRepo, movementRepo, txRunner, log)

	// Usuario admin
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin12345"
	}
	adminEmail := "admin@example.com"
	if _, err := authUC.Register(dto.RegisterRequest{
		Username: "admin",
		Email:    &adminEmail,
		Password: adminPassword,
	}); err != nil && err != domain.ErrDuplicate {
		log.Fatal().Err(err).Msg("crear usuario admin")
	}
	admin, err := userRepo.GetByUsername("admin")
	if err != nil || admin == nil {
		log.Fatal().Err(err).Msg("recuperar usuario admin")
	}

	// Categorías
	categories := map[string]string{}
	for _, name := range []string{"Electrónica", "Oficina", "Redes"} {
		if _, err := categoryUC.Create(dto.CreateCategoryRequest{Name: name}); err != nil && err != domain.ErrDuplicate {
			log.Fatal().Err(err).Str("name", name).Msg("crear categoría")
		}
		cat, err := categoryRepo.GetByName(name)
		if err != nil || cat == nil {
			log.Fatal().Err(err).Str("name", name).Msg("recuperar categoría")
		}
		categories[name] = cat.ID
	}

	// Proveedores (sin restricción de unicidad en BD: se buscan por nombre
	// en el listado antes de crear)
	existing, err := supplierRepo.List(100, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("listar proveedores")
	}
	suppliers := map[string]string{}
	for _, s := range existing {
		suppliers[s.Name] = s.ID
	}
	for _, name := range []string{"TecnoGlobal SAS", "Distribuciones Andinas"} {
		if _, ok := suppliers[name]; ok {
			continue
		}
		out, err := supplierUC.Create(dto.CreateSupplierRequest{Name: name})
		if err != nil {
			log.Fatal().Err(err).Str("nombre", name).Msg("crear proveedor")
		}
		suppliers[name] = out.ID
	}

	// Productos con stock inicial vía AJUSTE_INICIAL
	seeds := []productSeed{
		{"Laptop 14'' Pro", "SKU-LAP-001", "3200000", 15, 3, "Electrónica", "TecnoGlobal SAS"},
		{"Monitor 27'' IPS", "SKU-MON-002", "950000", 25, 5, "Electrónica", "TecnoGlobal SAS"},
		{"Silla ergonómica", "SKU-SIL-003", "480000", 40, 8, "Oficina", "Distribuciones Andinas"},
		{"Switch 24 puertos", "SKU-SWI-004", "620000", 10, 2, "Redes", "TecnoGlobal SAS"},
		{"Resma papel carta", "SKU-PAP-005", "18000", 200, 50, "Oficina", "Distribuciones Andinas"},
	}
	for _, s := range seeds {
		sku := s.sku
		catID := categories[s.category]
		supID := suppliers[s.supplier]
		price, err := decimal.NewFromString(s.price)
		if err != nil {
			log.Fatal().Err(err).Str("sku", sku).Msg("precio inválido")
		}

		out, err := productUC.Create(dto.CreateProductRequest{
			Name:       s.name,
			Price:      price,
			StockMin:   s.stockMin,
			SKU:        &sku,
			CategoryID: &catID,
			SupplierID: &supID,
		})
		if err == domain.ErrDuplicate {
			log.Info().Str("sku", sku).Msg("producto ya existe, omitido")
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Str("sku", sku).Msg("crear producto")
		}

		// El stock inicial entra como movimiento, no como valor directo:
		// así el kardex arranca con su fila de apertura.
		if _, err := movementUC.Register(ctx, dto.CreateMovementRequest{
			ProductID: out.ID,
			Type:      entity.MovementAjusteInicial,
			Quantity:  s.stock,
		}, admin.ID); err != nil {
			log.Fatal().Err(err).Str("sku", sku).Msg("registrar ajuste inicial")
		}
	}

	log.Info().Msg("seed completado")
}
