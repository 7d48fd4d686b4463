package storeapi

import (
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/export"
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/httpx"
	"github.com/Abraxas-365/talentdesk/pkg/iam/auth"
	"github.com/Abraxas-365/talentdesk/pkg/store"
	"github.com/Abraxas-365/talentdesk/pkg/store/storesrv"
	"github.com/gofiber/fiber/v2"
)

// Access names the scopes guarding each kind of route
type Access struct {
	Read   string
	Write  string
	Delete string
}

// Handlers exposes one collection under /<entity>
type Handlers[T store.Record[T]] struct {
	service *storesrv.Service[T]
	views   httpx.ViewResolver
	access  Access
}

func NewHandlers[T store.Record[T]](service *storesrv.Service[T], views httpx.ViewResolver, access Access) *Handlers[T] {
	return &Handlers[T]{service: service, views: views, access: access}
}

// Route mounts entity specific routes on the collection group
type Route func(g fiber.Router)

// RegisterRoutes mounts the collection routes and returns the group.
// Extra routes are mounted ahead of /:id so single segment paths reach them.
func (h *Handlers[T]) RegisterRoutes(router fiber.Router, mw *auth.Middleware, extra ...Route) fiber.Router {
	g := router.Group("/"+h.service.Entity(), mw.Authenticate())

	read := mw.RequireScope(h.access.Read)
	g.Get("/", read, h.List)
	g.Post("/search", read, h.Search)
	g.Get("/filters", read, h.Filters)
	g.Get("/suggest", read, h.Suggest)
	g.Get("/export", read, h.Export)
	for _, r := range extra {
		r(g)
	}
	g.Get("/:id", read, h.Get)

	g.Post("/", mw.RequireScope(h.access.Write), h.Create)
	g.Put("/:id", mw.RequireScope(h.access.Write), h.Update)
	g.Delete("/:id", mw.RequireScope(h.access.Delete), h.Delete)
	return g
}

func (h *Handlers[T]) List(c *fiber.Ctx) error {
	criteria, err := httpx.Criteria(c, h.service.Adapter(), h.views)
	if err != nil {
		return err
	}
	return h.respond(c, criteria)
}

func (h *Handlers[T]) Search(c *fiber.Ctx) error {
	criteria, err := httpx.SearchCriteria(c, h.service.Adapter(), h.views)
	if err != nil {
		return err
	}
	return h.respond(c, criteria)
}

func (h *Handlers[T]) respond(c *fiber.Ctx, criteria filter.Criteria) error {
	items, err := h.service.List(c.Context(), criteria)
	if err != nil {
		return err
	}
	return c.JSON(httpx.NewList(items))
}

func (h *Handlers[T]) Filters(c *fiber.Ctx) error {
	options, err := h.service.Options(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"entity":  h.service.Entity(),
		"search":  h.service.Adapter().SearchFields(),
		"filters": options,
	})
}

func (h *Handlers[T]) Suggest(c *fiber.Ctx) error {
	values, err := h.service.Suggest(c.Context(), c.Query("field"), c.Query("q"), httpx.Limit(c, 10))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"field": c.Query("field"), "suggestions": values})
}

func (h *Handlers[T]) Export(c *fiber.Ctx) error {
	criteria, err := httpx.Criteria(c, h.service.Adapter(), h.views)
	if err != nil {
		return err
	}
	items, err := h.service.List(c.Context(), criteria)
	if err != nil {
		return err
	}

	data, err := export.Workbook(h.service.Entity(), h.service.Adapter().ExportColumns(), filter.Records(items))
	if err != nil {
		return err
	}
	return httpx.Download(c, export.FileName(h.service.Entity(), time.Now()), export.ContentType, data)
}

func (h *Handlers[T]) Get(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(item)
}

func (h *Handlers[T]) Create(c *fiber.Ctx) error {
	var item T
	if err := httpx.Bind(c, &item); err != nil {
		return err
	}

	created, err := h.service.Create(c.Context(), auth.Actor(c), item)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handlers[T]) Update(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}

	var item T
	if err := httpx.Bind(c, &item); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Context(), auth.Actor(c), id, item)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (h *Handlers[T]) Service() *storesrv.Service[T] {
	return h.service
}

func (h *Handlers[T]) Delete(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
