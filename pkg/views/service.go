package views

import (
	"context"
	"strings"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/logx"
	"github.com/google/uuid"
)

// Service saves and resolves views. Criteria are checked against the screen's
// adapter when saved, so a stored view always compiles.
type Service struct {
	repo     Repository
	adapters map[string]*filter.Adapter
	now      func() time.Time
}

func NewService(repo Repository, adapters ...*filter.Adapter) *Service {
	s := &Service{
		repo:     repo,
		adapters: make(map[string]*filter.Adapter, len(adapters)),
		now:      time.Now,
	}
	for _, a := range adapters {
		s.Register(a)
	}
	return s
}

// Register enables saved views for the adapter's entity
func (s *Service) Register(a *filter.Adapter) {
	s.adapters[a.Entity()] = a
}

func (s *Service) adapter(screen string) (*filter.Adapter, error) {
	a, ok := s.adapters[screen]
	if !ok {
		return nil, ErrUnknownScreen(screen)
	}
	return a, nil
}

// Save crea una vista con nombre para la pantalla indicada
func (s *Service) Save(ctx context.Context, actor, screen, name string, specs []filter.Spec) (View, error) {
	a, err := s.adapter(screen)
	if err != nil {
		return View{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return View{}, ErrRegistry.New(CodeMissingName)
	}

	c, err := a.Build(specs)
	if err != nil {
		return View{}, err
	}

	v := View{
		ID:        uuid.NewString(),
		Screen:    screen,
		Name:      name,
		Criteria:  c.Specs(),
		CreatedBy: actor,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, v); err != nil {
		return View{}, err
	}

	logx.WithFields(logx.Fields{"screen": screen, "view": v.ID, "actor": actor}).Info("view saved")
	return v, nil
}

func (s *Service) Get(ctx context.Context, id string) (View, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, screen string) ([]View, error) {
	if _, err := s.adapter(screen); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, screen)
}

func (s *Service) Delete(ctx context.Context, screen, id string) error {
	v, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if v.Screen != screen {
		return ErrNotFound(id)
	}
	return s.repo.Delete(ctx, id)
}

// Resolve returns the criteria of a view saved for screen. A view saved for a
// different screen is reported as not found.
func (s *Service) Resolve(ctx context.Context, screen, id string) ([]filter.Spec, error) {
	v, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.Screen != screen {
		return nil, ErrNotFound(id)
	}
	return v.Criteria, nil
}
