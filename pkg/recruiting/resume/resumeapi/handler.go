package resumeapi

import (
	"github.com/Abraxas-365/talentdesk/pkg/httpx"
	"github.com/Abraxas-365/talentdesk/pkg/iam/auth"
	"github.com/Abraxas-365/talentdesk/pkg/iam/scopes"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume/resumesrv"
	"github.com/Abraxas-365/talentdesk/pkg/store/storeapi"
	"github.com/gofiber/fiber/v2"
)

var access = storeapi.Access{
	Read:   scopes.ScopeResumesRead,
	Write:  scopes.ScopeResumesWrite,
	Delete: scopes.ScopeResumesDelete,
}

// Handlers expone la lista de currículums, la subida y la descarga de archivos
type Handlers struct {
	service *resumesrv.Service
	crud    *storeapi.Handlers[resume.Resume]
}

func NewHandlers(service *resumesrv.Service, views httpx.ViewResolver) *Handlers {
	return &Handlers{
		service: service,
		crud:    storeapi.NewHandlers(service.Records(), views, access),
	}
}

// RegisterRoutes mounts /resumes
func (h *Handlers) RegisterRoutes(router fiber.Router, mw *auth.Middleware) {
	h.crud.RegisterRoutes(router, mw, func(g fiber.Router) {
		g.Post("/upload", mw.RequireScope(scopes.ScopeResumesUpload), h.Upload)
		g.Get("/code/:code", mw.RequireScope(scopes.ScopeResumesRead), h.ByCode)
		g.Get("/:id/file", mw.RequireScope(scopes.ScopeResumesRead), h.Download)
		g.Patch("/:id/status", mw.RequireScope(scopes.ScopeResumesWrite), h.UpdateStatus)
	})
}

// Upload accepts one or more files under the "files" form field
func (h *Handlers) Upload(c *fiber.Ctx) error {
	files, err := httpx.Files(c, "files")
	if err != nil {
		return err
	}

	uploads := make([]recruiting.Upload, 0, len(files))
	for _, f := range files {
		uploads = append(uploads, recruiting.Upload{FileName: f.Name, Data: f.Data})
	}

	created, err := h.service.Upload(c.Context(), auth.Actor(c), uploads)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(httpx.NewList(created))
}

func (h *Handlers) Download(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}

	file, data, err := h.service.Download(c.Context(), id)
	if err != nil {
		return err
	}
	return httpx.Download(c, file.Name, file.ContentType, data)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}

	var req statusRequest
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}

	updated, err := h.service.UpdateStatus(c.Context(), auth.Actor(c), id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (h *Handlers) ByCode(c *fiber.Ctx) error {
	r, err := h.service.ByCode(c.Context(), c.Params("code"))
	if err != nil {
		return err
	}
	return c.JSON(r)
}
