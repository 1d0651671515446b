package handlers

import (
	"net/http"

	"orchids/access"
	"orchids/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ListProjects(store ProjectStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := access.RequireCaller(c)
		if !ok {
			return
		}

		projects, err := store.ListProjects(c.Request.Context(), userID)
		if err != nil {
			respondOperationError(c, log, "list projects", err, access.MsgProjectNotFound)
			return
		}

		c.JSON(http.StatusOK, models.ProjectsResponse{Projects: projects})
	}
}

func CreateProject(store ProjectStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := access.RequireCaller(c)
		if !ok {
			return
		}

		var req models.CreateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := req.Validate(); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		req.Normalize()

		project, err := store.CreateProject(c.Request.Context(), userID, req)
		if err != nil {
			respondOperationError(c, log, "create project", err, access.MsgProjectNotFound)
			return
		}

		c.JSON(http.StatusCreated, models.ProjectResponse{Project: project})
	}
}

func GetProject(store ProjectStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, ok := access.Authorize(c, store, access.KindProject)
		if !ok {
			return
		}

		project, err := store.GetProject(c.Request.Context(), res.ProjectID, res.UserID)
		if err != nil {
			respondOperationError(c, log, "get project", err, access.MsgProjectNotFound)
			return
		}

		c.JSON(http.StatusOK, models.ProjectResponse{Project: project})
	}
}

// UpdateProject replaces name, description and url. Ownership is checked
// again here even though the id came from the path.
func UpdateProject(store ProjectStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, ok := access.Authorize(c, store, access.KindProject)
		if !ok {
			return
		}

		var req models.UpdateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		project, err := store.UpdateProject(c.Request.Context(), res.ProjectID, res.UserID, req)
		if err != nil {
			respondOperationError(c, log, "update project", err, access.MsgProjectNotFound)
			return
		}

		c.JSON(http.StatusOK, models.ProjectResponse{Project: project})
	}
}

func DeleteProject(store ProjectStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, ok := access.Authorize(c, store, access.KindProject)
		if !ok {
			return
		}

		if err := store.DeleteProject(c.Request.Context(), res.ProjectID, res.UserID); err != nil {
			respondOperationError(c, log, "delete project", err, access.MsgProjectNotFound)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
	}
}
