package dashboardapi

import (
	"github.com/Abraxas-365/talentdesk/pkg/dashboard"
	"github.com/Abraxas-365/talentdesk/pkg/httpx"
	"github.com/Abraxas-365/talentdesk/pkg/iam/auth"
	"github.com/Abraxas-365/talentdesk/pkg/iam/scopes"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	service *dashboard.Service
	views   httpx.ViewResolver
}

func NewHandlers(service *dashboard.Service, views httpx.ViewResolver) *Handlers {
	return &Handlers{service: service, views: views}
}

// RegisterRoutes mounts /dashboard and /jobs/:id/summary
func (h *Handlers) RegisterRoutes(router fiber.Router, mw *auth.Middleware) {
	router.Get("/dashboard", mw.Authenticate(), mw.RequireScope(scopes.ScopeResumesRead), h.Overview)
	router.Get("/jobs/:id/summary", mw.Authenticate(),
		mw.RequireAllScopes(scopes.ScopeJobsRead, scopes.ScopeCandidatesRead), h.JobSummary)
}

// Overview acepta los filtros de currículums, p. ej. ?location=Chennai
func (h *Handlers) Overview(c *fiber.Ctx) error {
	criteria, err := httpx.Criteria(c, h.service.ResumeAdapter(), h.views)
	if err != nil {
		return err
	}
	o, err := h.service.Overview(c.Context(), criteria)
	if err != nil {
		return err
	}
	return c.JSON(o)
}

func (h *Handlers) JobSummary(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}
	criteria, err := httpx.Criteria(c, h.service.CandidateAdapter(), h.views)
	if err != nil {
		return err
	}
	s, err := h.service.JobSummary(c.Context(), id, criteria)
	if err != nil {
		return err
	}
	return c.JSON(s)
}
