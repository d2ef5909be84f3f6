package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pragyan-chakra/hazard-watch/internal/model"
	"github.com/pragyan-chakra/hazard-watch/internal/store"
)

// UserHandler serves user profile lookups. The credential hash never
// serializes (model.User marks it json:"-"), so responses need no
// explicit stripping.
type UserHandler struct {
	Store *store.Store
}

func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{Store: s}
}

// GetUser returns a user profile by id.
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.Store.GetUser(c.Param("id"))
	if err != nil {
		if notFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch user"})
	}
	return c.JSON(http.StatusOK, user)
}

// ListByRole returns every user holding the role in the path.
func (h *UserHandler) ListByRole(c echo.Context) error {
	role := model.Role(c.Param("role"))
	if !role.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid role. Must be user, authority, or volunteer"})
	}
	return c.JSON(http.StatusOK, h.Store.GetUsersByRole(role))
}
