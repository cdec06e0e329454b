package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/domain"
	"github.com/aussiebroadwan/projecthub/internal/projecthub/store"
	"github.com/aussiebroadwan/projecthub/pkg/idx"
	"github.com/aussiebroadwan/projecthub/pkg/slogx"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrNotProjectOwner     = errors.New("only the project owner can do this")
	ErrProjectAccessDenied = errors.New("access denied")
	ErrInvalidProject      = errors.New("title and description are required")
)

type ProjectService struct {
	Store store.Store
	Now   func() time.Time
}

// requireOwner loads the project and checks callerID owns it.
func requireOwner(ctx context.Context, st store.Store, projectID, callerID string) (domain.Project, error) {
	p, err := st.Projects().GetProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Project{}, ErrProjectNotFound
		}
		return domain.Project{}, err
	}
	if p.OwnerID != callerID {
		return domain.Project{}, ErrNotProjectOwner
	}
	return p, nil
}

// requireAccess loads the project and checks callerID owns it or is on the
// team.
func requireAccess(ctx context.Context, st store.Store, projectID, callerID string) (domain.Project, error) {
	p, err := st.Projects().GetProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Project{}, ErrProjectNotFound
		}
		return domain.Project{}, err
	}
	if p.OwnerID == callerID {
		return p, nil
	}

	ok, err := st.Members().IsMember(ctx, projectID, callerID)
	if err != nil {
		return domain.Project{}, err
	}
	if !ok {
		return domain.Project{}, ErrProjectAccessDenied
	}
	return p, nil
}

func loadDetail(ctx context.Context, st store.Store, p domain.Project) (domain.ProjectDetail, error) {
	owner, err := st.Users().GetUserByID(ctx, p.OwnerID)
	if err != nil {
		return domain.ProjectDetail{}, err
	}

	members, err := st.Members().ListMembers(ctx, p.ID)
	if err != nil {
		return domain.ProjectDetail{}, err
	}

	return domain.ProjectDetail{Project: p, Owner: owner.Ref(), Members: members}, nil
}

// List returns every project callerID owns or belongs to, newest first.
func (s *ProjectService) List(ctx context.Context, callerID string) ([]domain.ProjectDetail, error) {
	log := slogx.FromContext(ctx)

	projects, err := s.Store.Projects().ListProjectsForUser(ctx, callerID)
	if err != nil {
		log.Error("failed to list projects", slog.Any("error", err))
		return nil, err
	}

	out := make([]domain.ProjectDetail, 0, len(projects))
	for _, p := range projects {
		d, err := loadDetail(ctx, s.Store, p)
		if err != nil {
			log.Error("failed to load project detail",
				slog.String("project_id", p.ID),
				slog.Any("error", err),
			)
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Create makes callerID the owner of a new project. Registered users among
// memberEmails join as members; unknown addresses and the owner are skipped.
func (s *ProjectService) Create(
	ctx context.Context,
	callerID string,
	title, description string,
	memberEmails []string,
) (domain.ProjectDetail, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	title, description = strings.TrimSpace(title), strings.TrimSpace(description)
	if title == "" || description == "" {
		return domain.ProjectDetail{}, ErrInvalidProject
	}

	now := clock(s.Now)
	p := domain.Project{
		ID:          idx.NewAt(now).String(),
		Title:       title,
		Description: description,
		OwnerID:     callerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// 2. Insert the project and resolve the initial team atomically
	var detail domain.ProjectDetail
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Projects().CreateProject(ctx, p); err != nil {
			return err
		}

		seen := make(map[string]struct{}, len(memberEmails))
		for _, raw := range memberEmails {
			email, err := NormalizeEmail(raw)
			if err != nil {
				continue
			}
			if _, dup := seen[email]; dup {
				continue
			}
			seen[email] = struct{}{}

			u, err := tx.Users().GetUserByEmail(ctx, email)
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			if u.ID == callerID {
				continue
			}

			if err := tx.Members().AddMember(ctx, domain.Member{
				ProjectID: p.ID,
				User:      u.Ref(),
				Role:      domain.RoleMember,
				JoinedAt:  now,
			}); err != nil {
				return err
			}
		}

		var err error
		detail, err = loadDetail(ctx, tx, p)
		return err
	})
	if err != nil {
		log.Error("failed to create project", slog.Any("error", err))
		return domain.ProjectDetail{}, err
	}

	log.Info("project created",
		slog.String("project_id", p.ID),
		slog.Int("initial_members", len(detail.Members)),
	)
	return detail, nil
}

// Get returns the project with owner and team for an owner or member.
func (s *ProjectService) Get(ctx context.Context, projectID, callerID string) (domain.ProjectDetail, error) {
	p, err := requireAccess(ctx, s.Store, projectID, callerID)
	if err != nil {
		return domain.ProjectDetail{}, err
	}
	return loadDetail(ctx, s.Store, p)
}

// Update changes the non-nil fields. Owner only.
func (s *ProjectService) Update(
	ctx context.Context,
	projectID, callerID string,
	title, description *string,
) (domain.ProjectDetail, error) {
	log := slogx.FromContext(ctx)

	for _, f := range []*string{title, description} {
		if f == nil {
			continue
		}
		*f = strings.TrimSpace(*f)
		if *f == "" {
			return domain.ProjectDetail{}, ErrInvalidProject
		}
	}

	if _, err := requireOwner(ctx, s.Store, projectID, callerID); err != nil {
		return domain.ProjectDetail{}, err
	}

	p, err := s.Store.Projects().UpdateProject(ctx, projectID, title, description, clock(s.Now))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ProjectDetail{}, ErrProjectNotFound
		}
		log.Error("failed to update project", slog.String("project_id", projectID), slog.Any("error", err))
		return domain.ProjectDetail{}, err
	}

	return loadDetail(ctx, s.Store, p)
}

// Delete removes the project with its team, invitations and tickets. Owner
// only.
func (s *ProjectService) Delete(ctx context.Context, projectID, callerID string) error {
	log := slogx.FromContext(ctx)

	if _, err := requireOwner(ctx, s.Store, projectID, callerID); err != nil {
		return err
	}

	if err := s.Store.Projects().DeleteProject(ctx, projectID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProjectNotFound
		}
		log.Error("failed to delete project", slog.String("project_id", projectID), slog.Any("error", err))
		return err
	}

	log.Info("project deleted", slog.String("project_id", projectID))
	return nil
}
