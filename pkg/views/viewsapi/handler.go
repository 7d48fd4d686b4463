package viewsapi

import (
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/httpx"
	"github.com/Abraxas-365/talentdesk/pkg/iam/auth"
	"github.com/Abraxas-365/talentdesk/pkg/views"
	"github.com/gofiber/fiber/v2"
)

// Handlers expone las vistas guardadas de cada pantalla de lista
type Handlers struct {
	service *views.Service
}

func NewHandlers(service *views.Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts /views/:screen
func (h *Handlers) RegisterRoutes(router fiber.Router, mw *auth.Middleware) {
	g := router.Group("/views", mw.Authenticate())
	g.Get("/:screen", h.List)
	g.Post("/:screen", h.Save)
	g.Get("/:screen/:id", h.Get)
	g.Delete("/:screen/:id", h.Delete)
}

type saveRequest struct {
	Name     string        `json:"name"`
	Criteria []filter.Spec `json:"criteria"`
}

func (h *Handlers) Save(c *fiber.Ctx) error {
	var req saveRequest
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}
	v, err := h.service.Save(c.Context(), auth.Actor(c), c.Params("screen"), req.Name, req.Criteria)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(v)
}

func (h *Handlers) List(c *fiber.Ctx) error {
	items, err := h.service.List(c.Context(), c.Params("screen"))
	if err != nil {
		return err
	}
	return c.JSON(httpx.NewList(items))
}

func (h *Handlers) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	v, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	if v.Screen != c.Params("screen") {
		return views.ErrNotFound(id)
	}
	return c.JSON(v)
}

func (h *Handlers) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("screen"), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
