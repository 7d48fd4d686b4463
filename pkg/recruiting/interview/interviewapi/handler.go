package interviewapi

import (
	"github.com/Abraxas-365/talentdesk/pkg/httpx"
	"github.com/Abraxas-365/talentdesk/pkg/iam/auth"
	"github.com/Abraxas-365/talentdesk/pkg/iam/scopes"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/interview"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/interview/interviewsrv"
	"github.com/Abraxas-365/talentdesk/pkg/store/storeapi"
	"github.com/gofiber/fiber/v2"
)

var access = storeapi.Access{
	Read:   scopes.ScopeInterviewsRead,
	Write:  scopes.ScopeInterviewsSchedule,
	Delete: scopes.ScopeInterviewsDelete,
}

// Handlers expone las rondas de entrevista y el resumen de evaluación
type Handlers struct {
	service *interviewsrv.Service
	views   httpx.ViewResolver
	crud    *storeapi.Handlers[interview.Round]
}

func NewHandlers(service *interviewsrv.Service, views httpx.ViewResolver) *Handlers {
	return &Handlers{
		service: service,
		views:   views,
		crud:    storeapi.NewHandlers(service.Records(), views, access),
	}
}

func (h *Handlers) RegisterRoutes(router fiber.Router, mw *auth.Middleware) {
	schedule := mw.RequireScope(scopes.ScopeInterviewsSchedule)
	recordings := mw.RequireScope(scopes.ScopeInterviewsRecordings)

	h.crud.RegisterRoutes(router, mw, func(g fiber.Router) {
		g.Post("/:id/schedule", schedule, h.Schedule)
		g.Post("/:id/complete", schedule, h.Complete)
		g.Post("/:id/cancel", schedule, h.Cancel)
		g.Post("/:id/recording", recordings, h.UploadRecording)
		g.Get("/:id/recording", recordings, h.Recording)
		g.Post("/:id/transcribe", recordings, h.Transcribe)
	})

	read := mw.RequireScope(scopes.ScopeInterviewsRead)
	router.Get("/jobs/:id/interviews", mw.Authenticate(), read, h.ForJob)
	router.Get("/jobs/:id/assessment", mw.Authenticate(), read, h.Assessment)
}

func (h *Handlers) ForJob(c *fiber.Ctx) error {
	jobID, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}
	criteria, err := httpx.Criteria(c, h.service.Records().Adapter(), h.views)
	if err != nil {
		return err
	}
	items, err := h.service.ForJob(c.Context(), jobID, criteria)
	if err != nil {
		return err
	}
	return c.JSON(httpx.NewList(items))
}

// Assessment acepta los mismos filtros que la lista de rondas
func (h *Handlers) Assessment(c *fiber.Ctx) error {
	jobID, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}
	criteria, err := httpx.Criteria(c, h.service.Records().Adapter(), h.views)
	if err != nil {
		return err
	}
	a, err := h.service.Assessment(c.Context(), jobID, criteria)
	if err != nil {
		return err
	}
	return c.JSON(a)
}

func (h *Handlers) Schedule(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}
	var slot interviewsrv.Slot
	if err := httpx.Bind(c, &slot); err != nil {
		return err
	}
	r, err := h.service.Schedule(c.Context(), auth.Actor(c), id, slot)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (h *Handlers) Complete(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}
	var out interviewsrv.Outcome
	if err := httpx.Bind(c, &out); err != nil {
		return err
	}
	r, err := h.service.Complete(c.Context(), auth.Actor(c), id, out)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func (h *Handlers) Cancel(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req cancelRequest
	if len(c.Body()) > 0 {
		if err := httpx.Bind(c, &req); err != nil {
			return err
		}
	}
	r, err := h.service.Cancel(c.Context(), auth.Actor(c), id, req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (h *Handlers) UploadRecording(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}
	f, err := httpx.File(c, "file")
	if err != nil {
		return err
	}
	r, err := h.service.UploadRecording(c.Context(), auth.Actor(c), id, recruiting.Upload{FileName: f.Name, Data: f.Data})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}

func (h *Handlers) Recording(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}
	file, data, err := h.service.Recording(c.Context(), id)
	if err != nil {
		return err
	}
	return httpx.Download(c, file.Name, file.ContentType, data)
}

// Transcribe takes an optional ?language= hint
func (h *Handlers) Transcribe(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}
	r, err := h.service.Transcribe(c.Context(), auth.Actor(c), id, c.Query("language"))
	if err != nil {
		return err
	}
	return c.JSON(r)
}
