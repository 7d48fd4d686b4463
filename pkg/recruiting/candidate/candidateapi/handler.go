package candidateapi

import (
	"github.com/Abraxas-365/talentdesk/pkg/httpx"
	"github.com/Abraxas-365/talentdesk/pkg/iam/auth"
	"github.com/Abraxas-365/talentdesk/pkg/iam/scopes"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/candidate"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/candidate/candidatesrv"
	"github.com/Abraxas-365/talentdesk/pkg/store/storeapi"
	"github.com/gofiber/fiber/v2"
)

var access = storeapi.Access{
	Read:   scopes.ScopeCandidatesRead,
	Write:  scopes.ScopeCandidatesWrite,
	Delete: scopes.ScopeCandidatesWrite,
}

type Handlers struct {
	service *candidatesrv.Service
	views   httpx.ViewResolver
	crud    *storeapi.Handlers[candidate.Candidate]
}

func NewHandlers(service *candidatesrv.Service, views httpx.ViewResolver) *Handlers {
	return &Handlers{
		service: service,
		views:   views,
		crud:    storeapi.NewHandlers(service.Records(), views, access),
	}
}

// RegisterRoutes mounts /candidates and the job scoped candidate list
func (h *Handlers) RegisterRoutes(router fiber.Router, mw *auth.Middleware) {
	read := mw.RequireScope(scopes.ScopeCandidatesRead)
	write := mw.RequireScope(scopes.ScopeCandidatesWrite)

	h.crud.RegisterRoutes(router, mw, func(g fiber.Router) {
		g.Post("/apply", write, h.Apply)
		g.Get("/:id/profile", read, h.Profile)
		g.Patch("/:id/status", write, h.UpdateStatus)
		g.Post("/:id/comments", write, h.AddComment)
		g.Post("/:id/score", mw.RequireScope(scopes.ScopeCandidatesScore), h.Rescore)
	})

	router.Get("/jobs/:id/candidates", mw.Authenticate(), read, h.ForJob)
	router.Post("/jobs/:id/candidates/search", mw.Authenticate(), read, h.SearchForJob)
}

// ForJob is the job details screen: candidates of one job under adapter criteria
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

func (h *Handlers) SearchForJob(c *fiber.Ctx) error {
	jobID, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}
	criteria, err := httpx.SearchCriteria(c, h.service.Records().Adapter(), h.views)
	if err != nil {
		return err
	}

	items, err := h.service.ForJob(c.Context(), jobID, criteria)
	if err != nil {
		return err
	}
	return c.JSON(httpx.NewList(items))
}

type applyRequest struct {
	JobID    kernel.RecordID `json:"jobId"`
	ResumeID kernel.RecordID `json:"resumeId"`
}

func (h *Handlers) Apply(c *fiber.Ctx) error {
	var req applyRequest
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}

	created, err := h.service.Apply(c.Context(), auth.Actor(c), req.JobID, req.ResumeID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handlers) Profile(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.service.Profile(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(p)
}

type statusRequest struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
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

	updated, err := h.service.UpdateStatus(c.Context(), auth.Actor(c), id, req.Status, req.Comment)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

type commentRequest struct {
	Text string `json:"text"`
}

func (h *Handlers) AddComment(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req commentRequest
	if err := httpx.Bind(c, &req); err != nil {
		return err
	}

	updated, err := h.service.AddComment(c.Context(), auth.Actor(c), id, req.Text)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(updated)
}

func (h *Handlers) Rescore(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}
	updated, err := h.service.Rescore(c.Context(), auth.Actor(c), id)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}
