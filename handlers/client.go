package handlers

import (
	"net/http"

	"caseboard/models"

	"github.com/labstack/echo/v4"
)

// GetClientsHandler returns the clients matching ?search=
func (h *Handler) GetClientsHandler(c echo.Context) error {
	clients := h.clients.List(c.QueryParam("search"))
	return c.JSON(http.StatusOK, listResponse{Data: clients, Total: len(clients)})
}

// GetClientHandler returns a single client
func (h *Handler) GetClientHandler(c echo.Context) error {
	client, err := h.clients.Get(c.Param("id"))
	if err != nil {
		return h.fail(c, err, "Client not found")
	}
	return c.JSON(http.StatusOK, client)
}

// CreateClientHandler creates a client from the JSON body
func (h *Handler) CreateClientHandler(c echo.Context) error {
	var in models.Client
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	client, err := h.clients.Create(c.Request().Context(), in)
	if err != nil {
		return h.fail(c, err, "Client not found")
	}
	return c.JSON(http.StatusCreated, client)
}

// UpdateClientHandler replaces a client; the id comes from the path
func (h *Handler) UpdateClientHandler(c echo.Context) error {
	var in models.Client
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	in.ID = c.Param("id")

	client, err := h.clients.Update(c.Request().Context(), in)
	if err != nil {
		return h.fail(c, err, "Client not found")
	}
	return c.JSON(http.StatusOK, client)
}

// DeleteClientHandler removes a client once confirmed
func (h *Handler) DeleteClientHandler(c echo.Context) error {
	if err := requireConfirmation(c); err != nil {
		return err
	}
	if err := h.clients.Delete(c.Param("id")); err != nil {
		return h.fail(c, err, "Client not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// GetClientCasesHandler returns the cases filed under the client's name
func (h *Handler) GetClientCasesHandler(c echo.Context) error {
	cases, err := h.clients.Cases(c.Param("id"))
	if err != nil {
		return h.fail(c, err, "Client not found")
	}
	return c.JSON(http.StatusOK, listResponse{Data: cases, Total: len(cases)})
}
