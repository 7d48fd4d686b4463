package jobapi

import (
	"github.com/Abraxas-365/talentdesk/pkg/httpx"
	"github.com/Abraxas-365/talentdesk/pkg/iam/auth"
	"github.com/Abraxas-365/talentdesk/pkg/iam/scopes"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job/jobsrv"
	"github.com/Abraxas-365/talentdesk/pkg/store/storeapi"
	"github.com/gofiber/fiber/v2"
)

var access = storeapi.Access{
	Read:   scopes.ScopeJobsRead,
	Write:  scopes.ScopeJobsWrite,
	Delete: scopes.ScopeJobsDelete,
}

// Handlers expone las ofertas, su flujo de selección y la extracción de JD
type Handlers struct {
	service   *jobsrv.Service
	extractor *jobsrv.Extractor
	views     httpx.ViewResolver
	crud      *storeapi.Handlers[job.Job]
}

func NewHandlers(service *jobsrv.Service, extractor *jobsrv.Extractor, views httpx.ViewResolver) *Handlers {
	return &Handlers{
		service:   service,
		extractor: extractor,
		views:     views,
		crud:      storeapi.NewHandlers(service.Records(), views, access),
	}
}

// RegisterRoutes mounts /jobs
func (h *Handlers) RegisterRoutes(router fiber.Router, mw *auth.Middleware) {
	read := mw.RequireScope(scopes.ScopeJobsRead)
	workflow := mw.RequireScope(scopes.ScopeJobsWorkflow)

	h.crud.RegisterRoutes(router, mw, func(g fiber.Router) {
		g.Get("/board", read, h.Board)
		g.Post("/board/search", read, h.SearchBoard)
		g.Get("/phases", read, h.PhaseCatalogue)
		g.Get("/code/:code", read, h.ByCode)
		g.Post("/extract", mw.RequireAllScopes(scopes.ScopeJobsExtract, scopes.ScopeJobsWrite), h.Extract)

		g.Patch("/:id/status", mw.RequireScope(scopes.ScopeJobsWrite), h.SetStatus)
		g.Post("/:id/workflow", workflow, h.CreateWorkflow)
		g.Post("/:id/phases", workflow, h.AddPhase)
		g.Delete("/:id/phases/:phaseId", workflow, h.RemovePhase)
		g.Post("/:id/phases/:phaseId/questions", workflow, h.AddQuestion)
		g.Delete("/:id/phases/:phaseId/questions/:questionId", workflow, h.RemoveQuestion)
	})
}

// Board is the landing page: active and inactive tabs under the same criteria
func (h *Handlers) Board(c *fiber.Ctx) error {
	criteria, err := httpx.Criteria(c, h.service.Records().Adapter(), h.views)
	if err != nil {
		return err
	}
	split, err := h.service.ListSplit(c.Context(), criteria)
	if err != nil {
		return err
	}
	return c.JSON(split)
}

func (h *Handlers) SearchBoard(c *fiber.Ctx) error {
	criteria, err := httpx.SearchCriteria(c, h.service.Records().Adapter(), h.views)
	if err != nil {
		return err
	}
	split, err := h.service.ListSplit(c.Context(), criteria)
	if err != nil {
		return err
	}
	return c.JSON(split)
}

func (h *Handlers) PhaseCatalogue(c *fiber.Ctx) error {
	return c.JSON(httpx.NewList(job.DefaultPhases()))
}

func (h *Handlers) ByCode(c *fiber.Ctx) error {
	j, err := h.service.ByCode(c.Context(), c.Params("code"))
	if err != nil {
		return err
	}
	return c.JSON(j)
}

// Extract stores an uploaded JD and returns the pre-filled job form
func (h *Handlers) Extract(c *fiber.Ctx) error {
	f, err := httpx.File(c, "file")
	if err != nil {
		return err
	}

	res, err := h.extractor.Extract(c.Context(), recruiting.Upload{FileName: f.Name, Data: f.Data}, h.service.Records().Now())
	if err != nil {
		return err
	}
	return c.JSON(res)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handlers) SetStatus(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req statusRequest
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}

	j, err := h.service.SetStatus(c.Context(), auth.Actor(c), id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(j)
}

type workflowRequest struct {
	PhaseIDs []string `json:"phaseIds"`
}

func (h *Handlers) CreateWorkflow(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req workflowRequest
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}

	j, err := h.service.CreateWorkflow(c.Context(), auth.Actor(c), id, req.PhaseIDs)
	if err != nil {
		return err
	}
	return c.JSON(j)
}

func (h *Handlers) AddPhase(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}
	var phase job.Phase
	if err := httpx.Bind(c, &phase); err != nil {
		return err
	}

	j, err := h.service.AddPhase(c.Context(), auth.Actor(c), id, phase)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(j)
}

func (h *Handlers) RemovePhase(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}

	j, err := h.service.RemovePhase(c.Context(), auth.Actor(c), id, c.Params("phaseId"))
	if err != nil {
		return err
	}
	return c.JSON(j)
}

func (h *Handlers) AddQuestion(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}
	var q job.Question
	if err := httpx.Bind(c, &q); err != nil {
		return err
	}

	j, err := h.service.AddQuestion(c.Context(), auth.Actor(c), id, c.Params("phaseId"), q)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(j)
}

func (h *Handlers) RemoveQuestion(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}

	j, err := h.service.RemoveQuestion(c.Context(), auth.Actor(c), id, c.Params("phaseId"), c.Params("questionId"))
	if err != nil {
		return err
	}
	return c.JSON(j)
}
