package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/geocatalog-api/internal/application/catalog"
	"github.com/jhoicas/geocatalog-api/internal/application/customers"
	"github.com/jhoicas/geocatalog-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StateUC        *catalog.StateUseCase
	MunicipalityUC *catalog.MunicipalityUseCase
	LocalityUC     *catalog.LocalityUseCase
	AddressUC      *catalog.AddressUseCase
	CustomerUC     *customers.CustomerUseCase
}

// NewApp crea la aplicación Fiber con recover, request id y log de accesos.
// No registra rutas; ver Router.
func NewApp(name string, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(RequestID())
	app.Use(AccessLog(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": name})
	})
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	states := api.Group("/states")
	stateHandler := NewStateHandler(deps.StateUC)
	states.Get("/", stateHandler.List)
	states.Post("/", stateHandler.Create)
	states.Get("/:id", stateHandler.GetByID)
	states.Put("/:id", stateHandler.Update)
	states.Delete("/:id", stateHandler.Delete)

	municipalities := api.Group("/municipalities")
	municipalityHandler := NewMunicipalityHandler(deps.MunicipalityUC)
	municipalities.Get("/", municipalityHandler.List)
	municipalities.Post("/", municipalityHandler.Create)
	municipalities.Get("/:id", municipalityHandler.GetByID)
	municipalities.Put("/:id", municipalityHandler.Update)
	municipalities.Delete("/:id", municipalityHandler.Delete)

	localities := api.Group("/localities")
	localityHandler := NewLocalityHandler(deps.LocalityUC)
	localities.Get("/", localityHandler.List)
	localities.Post("/", localityHandler.Create)
	localities.Get("/:id", localityHandler.GetByID)
	localities.Put("/:id", localityHandler.Update)
	localities.Delete("/:id", localityHandler.Delete)

	// Direcciones: las lecturas devuelven la proyección completa
	addresses := api.Group("/address")
	addressHandler := NewAddressHandler(deps.AddressUC)
	addresses.Get("/", addressHandler.List)
	addresses.Post("/", addressHandler.Create)
	addresses.Get("/:id", addressHandler.GetByID)
	addresses.Put("/:id", addressHandler.Update)
	addresses.Delete("/:id", addressHandler.Delete)

	// Clientes (agregado cliente + dirección)
	customerGroup := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customerGroup.Get("/", customerHandler.List)
	customerGroup.Post("/", customerHandler.Create)
	customerGroup.Get("/:id", customerHandler.GetByID)
	customerGroup.Put("/:id", customerHandler.Update)
	customerGroup.Delete("/:id", customerHandler.Delete)
}
