package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-tracker/internal/config"
	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository"
	"github.com/jwalitptl/clinic-tracker/pkg/clock"
	"github.com/jwalitptl/clinic-tracker/pkg/errors"
	"github.com/jwalitptl/clinic-tracker/pkg/security"
)

// Seeder creates the initial admin and the master template clinic. Both
// steps are skipped when their rows already exist.
type Seeder struct {
	users    repository.UserRepository
	clinics  repository.ClinicRepository
	hasher   security.PasswordHasher
	cfg      config.SeedConfig
	clock    clock.Clock
	template func() (*Template, error)
}

func NewSeeder(users repository.UserRepository, clinics repository.ClinicRepository, hasher security.PasswordHasher, cfg config.SeedConfig, clk clock.Clock) *Seeder {
	return &Seeder{
		users:    users,
		clinics:  clinics,
		hasher:   hasher,
		cfg:      cfg,
		clock:    clk,
		template: LoadTemplate,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedAdmin(ctx); err != nil {
		return err
	}
	return s.seedTemplate(ctx)
}

func (s *Seeder) seedAdmin(ctx context.Context) error {
	_, err := s.users.GetByUsername(ctx, s.cfg.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.IsNotFound(err) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := s.hasher.Hash(s.cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	now := s.clock.Now()
	admin := &model.User{
		Base:         model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Username:     s.cfg.AdminUsername,
		PasswordHash: hash,
		FullName:     s.cfg.AdminFullName,
		Role:         model.RoleAdmin,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	log.Info().Str("username", admin.Username).Msg("Seeded admin user")
	return nil
}

func (s *Seeder) seedTemplate(ctx context.Context) error {
	_, err := s.clinics.GetTemplate(ctx)
	if err == nil {
		return nil
	}
	if !errors.IsNotFound(err) {
		return fmt.Errorf("failed to look up template clinic: %w", err)
	}

	tmpl, err := s.template()
	if err != nil {
		return err
	}

	now := s.clock.Now()
	clinic := &model.Clinic{
		Base:       model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:       tmpl.Name,
		Status:     tmpl.Status,
		IsTemplate: true,
	}
	tasks := tmpl.Tasks()
	for _, t := range tasks {
		t.ID = uuid.New()
		t.ClinicID = clinic.ID
		t.CreatedAt = now
		t.UpdatedAt = now
	}

	start := time.Now()
	if err := s.clinics.CreateTemplate(ctx, clinic, tasks); err != nil {
		return fmt.Errorf("failed to seed template clinic: %w", err)
	}
	log.Info().
		Str("clinic_id", clinic.ID.String()).
		Int("tasks", len(tasks)).
		Dur("took", time.Since(start)).
		Msg("Seeded master template")
	return nil
}
