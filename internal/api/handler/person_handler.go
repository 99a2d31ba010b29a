package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/authbase/person-api/internal/api/metrics"
	"github.com/authbase/person-api/internal/core/domain"
	"github.com/authbase/person-api/internal/core/ports"
)

// PersonHandler handles HTTP requests for account records.
type PersonHandler struct {
	service ports.PersonService
}

func NewPersonHandler(service ports.PersonService) *PersonHandler {
	return &PersonHandler{service: service}
}

// SignUp registers a new account. The response body is intentionally empty so
// the endpoint reveals nothing about the stored record.
//
// @Summary      Register a new account
// @Tags         person
// @Accept       json
// @Param        body  body  createPersonRequest  true  "Account credentials"
// @Success      200
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  errorResponse
// @Router       /person/sign-up [post]
func (h *PersonHandler) SignUp(c echo.Context) error {
	var req createPersonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.service.SignUp(c.Request().Context(), req.Login, req.Password); err != nil {
		if errors.Is(err, domain.ErrLoginTaken) {
			metrics.SignupsTotal.WithLabelValues("conflict").Inc()
		}
		return err
	}

	metrics.SignupsTotal.WithLabelValues("ok").Inc()
	return c.NoContent(http.StatusOK)
}

// List returns all accounts as public projections.
//
// @Summary      List accounts
// @Tags         person
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  personResponse
// @Router       /person/ [get]
func (h *PersonHandler) List(c echo.Context) error {
	persons, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPersonListResponse(persons))
}

// Get returns a single account by id.
//
// @Summary      Get an account by id
// @Tags         person
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Account id"
// @Success      200  {object}  personResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /person/{id} [get]
func (h *PersonHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	person, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPersonResponse(person))
}

// Create persists a new account and returns its projection.
//
// @Summary      Create an account
// @Tags         person
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPersonRequest  true  "Account credentials"
// @Success      201   {object}  personResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  errorResponse
// @Router       /person/ [post]
func (h *PersonHandler) Create(c echo.Context) error {
	if _, err := callerLogin(c); err != nil {
		return err
	}

	var req createPersonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	person, err := h.service.Create(c.Request().Context(), req.Login, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toPersonResponse(person))
}

// Update replaces login and password of the account with the given id.
//
// @Summary      Update an account
// @Tags         person
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  updatePersonRequest  true  "Updated account"
// @Success      200
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  errorResponse
// @Router       /person/ [put]
func (h *PersonHandler) Update(c echo.Context) error {
	if _, err := callerLogin(c); err != nil {
		return err
	}

	var req updatePersonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), req.ID, req.Login, req.Password); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// UpdatePassword overwrites the password of the account with the given login.
//
// @Summary      Change an account password
// @Tags         person
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  passwordUpdateRequest  true  "Login and new password"
// @Success      200
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  errorResponse
// @Router       /person/ [patch]
func (h *PersonHandler) UpdatePassword(c echo.Context) error {
	if _, err := callerLogin(c); err != nil {
		return err
	}

	var req passwordUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.service.UpdatePassword(c.Request().Context(), req.Login, req.Password); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Delete removes the account with the given id.
//
// @Summary      Delete an account
// @Tags         person
// @Security     BearerAuth
// @Param        id  path  int  true  "Account id"
// @Success      200
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /person/{id} [delete]
func (h *PersonHandler) Delete(c echo.Context) error {
	if _, err := callerLogin(c); err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// pathID parses the :id path parameter, rejecting non-numeric values with 400.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}
	return id, nil
}
