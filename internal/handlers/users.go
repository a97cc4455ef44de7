package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/catalogdb/internal/models"
	"github.com/localnerve/catalogdb/internal/services"
)

// UserHandler handles user routes, flat and nested under projects.
// Every user route sits behind the shared secret gate.
type UserHandler struct {
	Service *services.UserService
	Lists   *ListCache
}

func parseUserFilter(c *fiber.Ctx) (services.UserFilter, error) {
	ages, err := parseQueryUints(c, "ages")
	if err != nil {
		return services.UserFilter{}, err
	}
	projectIDs, err := parseQueryUints(c, "projectIds")
	if err != nil {
		return services.UserFilter{}, err
	}
	return services.UserFilter{
		Ages:       ages,
		FirstNames: parseQueryValues(c, "firstNames"),
		LastNames:  parseQueryValues(c, "lastNames"),
		ProjectIDs: projectIDs,
	}, nil
}

// List handles GET /api/users
// @Summary List users
// @Tags Users
// @Produce json
// @Param ages query []int false "Ages" collectionFormat(multi)
// @Param firstNames query []string false "First names" collectionFormat(multi)
// @Param lastNames query []string false "Last names" collectionFormat(multi)
// @Param projectIds query []int false "Project IDs" collectionFormat(multi)
// @Success 200 {array} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Security SharedSecret
// @Router /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	filter, err := parseUserFilter(c)
	if err != nil {
		return err
	}
	return serve(h.Lists, c, "listUsers", ScopeUsers, filter.CacheKey(), func(ctx context.Context) ([]models.User, error) {
		return h.Service.List(ctx, filter)
	})
}

// Get handles GET /api/users/:id
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security SharedSecret
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	return getOne(c, "getUser", h.Service.Get)
}

// Create handles POST /api/users
// @Summary Create a user
// @Description The password is stored as a bcrypt hash and never returned.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body models.User true "User"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security SharedSecret
// @Router /users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	return createOne(c, "createUser", h.Service.Create, h.Lists.Invalidate(ScopeUsers))
}

// CreateBatch handles POST /api/users/batch
// @Summary Create several users
// @Tags Users
// @Accept json
// @Produce json
// @Param body body []models.User true "Users"
// @Success 200 {array} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Security SharedSecret
// @Router /users/batch [post]
func (h *UserHandler) CreateBatch(c *fiber.Ctx) error {
	return createBatch(c, "createUsers", h.Service.CreateBatch, h.Lists.Invalidate(ScopeUsers))
}

// Update handles PUT /api/users/:id
// @Summary Update a user
// @Description Copies age, password, email, firstName and lastName onto the stored user.
// @Tags Users
// @Accept json
// @Param id path int true "User ID"
// @Param body body models.User true "User"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security SharedSecret
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	return updateOne(c, "updateUser", h.Service.Update, h.Lists.Invalidate(ScopeUsers))
}

// Delete handles DELETE /api/users/:id
// @Summary Delete a user
// @Tags Users
// @Param id path int true "User ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security SharedSecret
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	return deleteOne(c, "deleteUser", h.Service.Delete, h.Lists.Invalidate(ScopeUsers))
}

// ListInProject handles GET /api/projects/:parentId/users
// @Summary List the users of a project
// @Tags Users
// @Produce json
// @Param parentId path int true "Project ID"
// @Success 200 {array} models.User
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security SharedSecret
// @Router /projects/{parentId}/users [get]
func (h *UserHandler) ListInProject(c *fiber.Ctx) error {
	return listChildren(c, "listProjectUsers", h.Service.ListInProject)
}

// GetInProject handles GET /api/projects/:parentId/users/:id
// @Summary Get a user of a project
// @Tags Users
// @Produce json
// @Param parentId path int true "Project ID"
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security SharedSecret
// @Router /projects/{parentId}/users/{id} [get]
func (h *UserHandler) GetInProject(c *fiber.Ctx) error {
	return getChild(c, "getProjectUser", h.Service.GetInProject)
}

// CreateInProject handles POST /api/projects/:parentId/users
// @Summary Create a user in a project
// @Tags Users
// @Accept json
// @Produce json
// @Param parentId path int true "Project ID"
// @Param body body models.User true "User"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security SharedSecret
// @Router /projects/{parentId}/users [post]
func (h *UserHandler) CreateInProject(c *fiber.Ctx) error {
	return createChild(c, "createProjectUser", h.Service.CreateInProject, h.Lists.Invalidate(ScopeUsers))
}

// UpdateInProject handles PUT /api/projects/:parentId/users/:id
// @Summary Update a user of a project
// @Tags Users
// @Accept json
// @Param parentId path int true "Project ID"
// @Param id path int true "User ID"
// @Param body body models.User true "User"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security SharedSecret
// @Router /projects/{parentId}/users/{id} [put]
func (h *UserHandler) UpdateInProject(c *fiber.Ctx) error {
	return updateChild(c, "updateProjectUser", h.Service.UpdateInProject, h.Lists.Invalidate(ScopeUsers))
}

// DeleteInProject handles DELETE /api/projects/:parentId/users/:id
// @Summary Delete a user of a project
// @Tags Users
// @Param parentId path int true "Project ID"
// @Param id path int true "User ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Security SharedSecret
// @Router /projects/{parentId}/users/{id} [delete]
func (h *UserHandler) DeleteInProject(c *fiber.Ctx) error {
	return deleteChild(c, "deleteProjectUser", h.Service.DeleteInProject, h.Lists.Invalidate(ScopeUsers))
}

// ProjectHandler handles project routes.
// Deleting a project detaches its users, so it also evicts cached user lists.
type ProjectHandler struct {
	Service *services.ProjectService
	Lists   *ListCache
}

// List handles GET /api/projects
// @Summary List projects
// @Tags Projects
// @Produce json
// @Success 200 {array} models.Project
// @Router /projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	return listAll(c, "listProjects", h.Service.List)
}

// Get handles GET /api/projects/:id
// @Summary Get a project
// @Tags Projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	return getOne(c, "getProject", h.Service.Get)
}

// Create handles POST /api/projects
// @Summary Create a project
// @Tags Projects
// @Accept json
// @Produce json
// @Param body body models.Project true "Project"
// @Success 200 {object} models.Project
// @Router /projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	return createOne(c, "createProject", h.Service.Create)
}

// Update handles PUT /api/projects/:id
// @Summary Update a project
// @Tags Projects
// @Accept json
// @Param id path int true "Project ID"
// @Param body body models.Project true "Project"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	return updateOne(c, "updateProject", h.Service.Update)
}

// Delete handles DELETE /api/projects/:id
// @Summary Delete a project
// @Description Users of the project are kept with no project.
// @Tags Projects
// @Param id path int true "Project ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	return deleteOne(c, "deleteProject", h.Service.Delete, h.Lists.Invalidate(ScopeUsers))
}
