package services

import (
	"context"
	"fmt"

	"github.com/localnerve/catalogdb/internal/models"
	"github.com/localnerve/catalogdb/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserFilter selects users by age, first name, last name and project
type UserFilter struct {
	Ages       []uint
	FirstNames []string
	LastNames  []string
	ProjectIDs []uint
}

// CacheKey returns the canonical form of the filter
func (f UserFilter) CacheKey() string {
	k := &keyBuilder{}
	return k.uints("ages", f.Ages).
		strings("firstNames", f.FirstNames).
		strings("lastNames", f.LastNames).
		uints("projectIds", f.ProjectIDs).
		String()
}

func (f UserFilter) scopes() []Scope {
	return []Scope{
		WhereIn("age", f.Ages),
		WhereIn("first_name", f.FirstNames),
		WhereIn("last_name", f.LastNames),
		WhereIn("project_id", f.ProjectIDs),
	}
}

// UserService manages users, flat and nested under projects.
// Plain passwords are replaced by their bcrypt hash before storage.
type UserService struct {
	*Repository[models.User]
	projects *Repository[models.Project]
	nested   *Children[models.Project, models.User]
	cost     int
}

// bcrypt rejects longer passwords
const maxPasswordBytes = 72

func NewUserService(db *gorm.DB, bcryptCost int) *UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	users := NewRepository(db, "User", func(dst, src *models.User) {
		dst.Age = src.Age
		dst.Email = src.Email
		dst.FirstName = src.FirstName
		dst.LastName = src.LastName
		if src.PasswordHash != "" {
			dst.PasswordHash = src.PasswordHash
		}
	})
	projects := NewRepository[models.Project](db, "Project", nil)

	s := &UserService{
		Repository: users,
		projects:   projects,
		cost:       bcryptCost,
	}
	s.nested = NewChildren(projects, users, "project_id", func(u *models.User, projectID uint) {
		u.ProjectID = &projectID
	}).WithPrepare(s.hashPassword)
	return s
}

func (s *UserService) hashPassword(u *models.User) error {
	if u.Password == "" {
		return nil
	}
	if len(u.Password) > maxPasswordBytes {
		return types.BadRequest(fmt.Sprintf("Password must not exceed %d bytes", maxPasswordBytes), "data.validation.input")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), s.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	u.Password = ""
	return nil
}

func (s *UserService) checkProject(ctx context.Context, u *models.User) error {
	if u.ProjectID == nil {
		return nil
	}
	return s.projects.Exists(ctx, *u.ProjectID)
}

func (s *UserService) List(ctx context.Context, filter UserFilter) ([]models.User, error) {
	return s.With(filter.scopes()...).Find(ctx)
}

// Create stores a user. A project id must reference an existing project.
func (s *UserService) Create(ctx context.Context, u *models.User) error {
	if err := s.checkProject(ctx, u); err != nil {
		return err
	}
	if err := s.hashPassword(u); err != nil {
		return err
	}
	return s.Repository.Create(ctx, u)
}

func (s *UserService) CreateBatch(ctx context.Context, users []models.User) error {
	for i := range users {
		if err := s.checkProject(ctx, &users[i]); err != nil {
			return err
		}
		if err := s.hashPassword(&users[i]); err != nil {
			return err
		}
	}
	return s.Repository.CreateBatch(ctx, users)
}

func (s *UserService) Update(ctx context.Context, id uint, u *models.User) error {
	if err := s.hashPassword(u); err != nil {
		return err
	}
	return s.Repository.Update(ctx, id, u)
}

func (s *UserService) ListInProject(ctx context.Context, projectID uint) ([]models.User, error) {
	return s.nested.List(ctx, projectID)
}

func (s *UserService) GetInProject(ctx context.Context, projectID, id uint) (*models.User, error) {
	return s.nested.Get(ctx, projectID, id)
}

func (s *UserService) CreateInProject(ctx context.Context, projectID uint, u *models.User) error {
	return s.nested.Create(ctx, projectID, u)
}

func (s *UserService) UpdateInProject(ctx context.Context, projectID, id uint, u *models.User) error {
	return s.nested.Update(ctx, projectID, id, u)
}

func (s *UserService) DeleteInProject(ctx context.Context, projectID, id uint) error {
	return s.nested.Delete(ctx, projectID, id)
}

// ProjectService manages projects. Deleting a project detaches its users.
type ProjectService struct {
	*Repository[models.Project]
}

func NewProjectService(db *gorm.DB) *ProjectService {
	repo := NewRepository(db, "Project", func(dst, src *models.Project) {
		dst.Name = src.Name
		dst.Description = src.Description
	}).OnDelete(func(tx *gorm.DB, id uint) error {
		return tx.Model(&models.User{}).Where("project_id = ?", id).Update("project_id", nil).Error
	})
	return &ProjectService{Repository: repo}
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.Find(ctx)
}
