package httpx

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/metrics"
	"github.com/gofiber/fiber/v2"
)

// ViewResolver looks up the criteria of a saved view
type ViewResolver interface {
	Resolve(ctx context.Context, screen, id string) ([]filter.Spec, error)
}

// ListResponse is the body of every list and search endpoint
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

// SearchRequest is the body of POST /<entity>/search
type SearchRequest struct {
	Criteria []filter.Spec `json:"criteria"`
	View     string        `json:"view,omitempty"`
}

// QueryValues copies the request query string, keeping repeated keys
func QueryValues(c *fiber.Ctx) url.Values {
	values := url.Values{}
	c.Context().QueryArgs().VisitAll(func(k, v []byte) {
		values.Add(string(k), string(v))
	})
	return values
}

// ParseID reads a positive record identifier from a route parameter
func ParseID(c *fiber.Ctx, param string) (kernel.RecordID, error) {
	raw := c.Params(param)
	id, ok := kernel.ParseRecordID(raw)
	if !ok {
		return 0, ErrInvalidID(raw)
	}
	return id, nil
}

// Bind parses the JSON body into v
func Bind(c *fiber.Ctx, v any) error {
	if err := c.BodyParser(v); err != nil {
		return ErrInvalidBody(err)
	}
	return nil
}

// Criteria builds the criteria of a list request from its query string and an
// optional ?view=<id>. Both constrain the result.
func Criteria(c *fiber.Ctx, adapter *filter.Adapter, views ViewResolver) (filter.Criteria, error) {
	values := QueryValues(c)

	specs, err := adapter.SpecsFromQuery(values)
	if err != nil {
		metrics.RecordFilterRejected(adapter.Entity())
		return filter.Criteria{}, err
	}
	return withView(c, adapter, views, values.Get(filter.ParamView), specs)
}

// SearchCriteria builds criteria from a POST search body
func SearchCriteria(c *fiber.Ctx, adapter *filter.Adapter, views ViewResolver) (filter.Criteria, error) {
	var req SearchRequest
	if len(c.Body()) > 0 {
		if err := Bind(c, &req); err != nil {
			return filter.Criteria{}, err
		}
	}
	return withView(c, adapter, views, req.View, req.Criteria)
}

func withView(c *fiber.Ctx, adapter *filter.Adapter, views ViewResolver, viewID string, specs []filter.Spec) (filter.Criteria, error) {
	if viewID != "" && views != nil {
		saved, err := views.Resolve(c.Context(), adapter.Entity(), viewID)
		if err != nil {
			return filter.Criteria{}, err
		}
		specs = append(append([]filter.Spec{}, saved...), specs...)
	}

	criteria, err := adapter.Build(specs)
	if err != nil {
		metrics.RecordFilterRejected(adapter.Entity())
		return filter.Criteria{}, err
	}
	return criteria, nil
}

// Limit reads ?limit=, falling back to def for missing or invalid values
func Limit(c *fiber.Ctx, def int) int {
	n, err := strconv.Atoi(c.Query("limit"))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// Download sends data as an attachment
func Download(c *fiber.Ctx, filename, contentType string, data []byte) error {
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(data)
}
