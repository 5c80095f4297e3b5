package catalog

import (
	"errors"

	"game-launcher/core/library"
	"game-launcher/core/logger"
	"game-launcher/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the game catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	games := app.Group("/games")
	games.Get("/", h.HandleListGames)
	games.Get("/installed", h.HandleListInstalled)
	games.Get("/:key", h.HandleGetGame)
	games.Post("/:key/launch", h.HandleLaunchGame)

	stores := app.Group("/stores")
	stores.Get("/", h.HandleListStores)
	stores.Post("/steam/connect", h.HandleConnectSteam)
	stores.Get("/epic/login-url", h.HandleEpicLoginURL)
	stores.Post("/epic/connect", h.HandleConnectEpic)
	stores.Delete("/:store/credentials", h.HandleDisconnect)

	app.Get("/settings", h.HandleGetSettings)
	app.Put("/settings", h.HandleSaveSettings)

	app.Post("/sync/:store", h.HandleSync)
	app.Get("/owned/:store", h.HandleOwned)
	app.Get("/details/steam/:appid", h.HandleGameDetails)
	app.Get("/details/epic/:appname", h.HandleEpicGameDetails)
}

// HandleListGames re-scans every store and returns the unified catalog.
func (h *Handler) HandleListGames(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	games, err := h.service.Games()
	if err != nil {
		l.Error("catalog refresh failed", zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(games)
}

// HandleListInstalled returns only the locally installed games.
func (h *Handler) HandleListInstalled(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	games, err := h.service.InstalledGames()
	if err != nil {
		l.Error("catalog refresh failed", zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(games)
}

// HandleGetGame returns one game by its unique key ("store:id").
func (h *Handler) HandleGetGame(c *fiber.Ctx) error {
	game, err := h.service.Game(c.Params("key"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(game)
}

// HandleLaunchGame records the launch and dispatches it to the owning store.
func (h *Handler) HandleLaunchGame(c *fiber.Ctx) error {
	key := c.Params("key")
	l := logger.WithRayID(h.service.logger, c)

	launchedAt, err := h.service.Launch(key)
	if err != nil {
		l.Error("launch failed", zap.String("game", key), zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"launched_at": launchedAt})
}

// HandleListStores reports the status of every registered platform.
func (h *Handler) HandleListStores(c *fiber.Ctx) error {
	infos, err := h.service.Stores()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(infos)
}

type connectSteamRequest struct {
	APIKey  string `json:"api_key"`
	SteamID string `json:"steam_id"`
}

// HandleConnectSteam stores and validates a Steam Web API key.
func (h *Handler) HandleConnectSteam(c *fiber.Ctx) error {
	var req connectSteamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.service.ConnectSteam(req.APIKey, req.SteamID); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"connected": true})
}

// HandleEpicLoginURL returns the browser address for the Epic sign-in flow.
func (h *Handler) HandleEpicLoginURL(c *fiber.Ctx) error {
	url, err := h.service.EpicLoginURL()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"url": url})
}

type connectEpicRequest struct {
	Code string `json:"code"`
}

// HandleConnectEpic exchanges a web-login authorization code for tokens.
func (h *Handler) HandleConnectEpic(c *fiber.Ctx) error {
	var req connectEpicRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.service.ConnectEpic(req.Code); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"connected": true})
}

// HandleDisconnect wipes a platform's credentials and cached ownership.
func (h *Handler) HandleDisconnect(c *fiber.Ctx) error {
	if err := h.service.Disconnect(library.StoreType(c.Params("store"))); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"disconnected": true})
}

// HandleGetSettings returns the persisted launcher settings.
func (h *Handler) HandleGetSettings(c *fiber.Ctx) error {
	settings, err := h.service.Settings()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(settings)
}

// HandleSaveSettings persists the launcher settings.
func (h *Handler) HandleSaveSettings(c *fiber.Ctx) error {
	var settings storage.Settings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := h.service.SaveSettings(settings); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(settings)
}

// HandleSync runs a full ownership sync for one platform.
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	store := c.Params("store")
	l := logger.WithRayID(h.service.logger, c)

	games, err := h.service.Sync(library.StoreType(store))
	if err != nil {
		l.Error("ownership sync failed", zap.String("store", store), zap.Error(err))
		return errorResponse(c, err)
	}
	return c.JSON(games)
}

// HandleOwned returns the cached owned list re-merged against the current
// local scan, without a network call.
func (h *Handler) HandleOwned(c *fiber.Ctx) error {
	games, lastSync, err := h.service.Owned(library.StoreType(c.Params("store")))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"games": games, "last_sync": lastSync})
}

// HandleGameDetails fetches Steam store-page details for one app.
func (h *Handler) HandleGameDetails(c *fiber.Ctx) error {
	details, err := h.service.GameDetails(c.Params("appid"))
	if err != nil {
		return errorResponse(c, err)
	}
	if details == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no details for app"})
	}
	return c.JSON(details)
}

// HandleEpicGameDetails serves the catalog metadata cached during Epic
// ownership syncs.
func (h *Handler) HandleEpicGameDetails(c *fiber.Ctx) error {
	details, err := h.service.EpicGameDetails(c.Params("appname"))
	if err != nil {
		return errorResponse(c, err)
	}
	if details == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no details for app"})
	}
	return c.JSON(details)
}

// errorResponse maps the error taxonomy onto HTTP statuses.
func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, library.ErrGameNotFound), errors.Is(err, library.ErrStoreNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, library.ErrAuthRequired):
		status = fiber.StatusUnauthorized
	case errors.Is(err, library.ErrNetwork):
		status = fiber.StatusBadGateway
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
