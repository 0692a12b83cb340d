package handler

import (
	"errors"
	"net/http"

	"github.com/carmart/marketplace-api/internal/api/metrics"
	"github.com/carmart/marketplace-api/internal/api/pipeline"
	"github.com/carmart/marketplace-api/internal/core/domain"
	"github.com/carmart/marketplace-api/internal/core/ports"
)

// CarHandler serves the listing catalog and the buy route.
type CarHandler struct {
	cars ports.CarService
}

func NewCarHandler(cars ports.CarService) *CarHandler {
	return &CarHandler{cars: cars}
}

// publicCar is the unauthenticated catalog representation: ownership is not
// exposed on public reads.
type publicCar struct {
	ID    string `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Price int64  `json:"price"`
}

func toPublicCar(c *domain.Car) publicCar {
	return publicCar{ID: c.ID, Brand: c.Brand, Model: c.Model, Price: c.Price}
}

// List handles GET /cars (public).
func (h *CarHandler) List(c *pipeline.Context, _ func()) {
	cars, err := h.cars.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]publicCar, 0, len(cars))
	for i := range cars {
		out = append(out, toPublicCar(&cars[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /cars/:id (public).
func (h *CarHandler) Get(c *pipeline.Context, _ func()) {
	car, err := h.cars.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPublicCar(car))
}

// Create handles POST /cars (admin).
func (h *CarHandler) Create(c *pipeline.Context, _ func()) {
	var req carRequest
	if err := c.Bind(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "brand, model and price are required"})
		return
	}
	if err := checkStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	car, err := h.cars.Create(c.Request.Context(), ports.CreateCarInput{
		Brand: req.Brand,
		Model: req.Model,
		Price: req.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, car)
}

// Update handles PUT /cars/:id (admin).
func (h *CarHandler) Update(c *pipeline.Context, _ func()) {
	var req carRequest
	if err := c.Bind(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "brand, model and price are required"})
		return
	}
	if err := checkStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	car, err := h.cars.Update(c.Request.Context(), ports.UpdateCarInput{
		ID:    c.Param("id"),
		Brand: req.Brand,
		Model: req.Model,
		Price: req.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, car)
}

// Delete handles DELETE /cars/:id (admin).
func (h *CarHandler) Delete(c *pipeline.Context, _ func()) {
	if err := h.cars.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.NoContent(http.StatusNoContent)
}

// Buy handles POST /cars/:id/buy (authenticated user). The buy never retries:
// a busy lock comes straight back to the client as a declined purchase.
func (h *CarHandler) Buy(c *pipeline.Context, _ func()) {
	err := h.cars.Buy(c.Request.Context(), c.Param("id"), c.User)
	if err != nil {
		metrics.PurchasesTotal.WithLabelValues(purchaseResult(err)).Inc()
		respondError(c, err)
		return
	}

	metrics.PurchasesTotal.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, messageResponse{Message: "Car purchased successfully"})
}

func purchaseResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrResourceBusy):
		return "busy"
	case errors.Is(err, domain.ErrCarUnavailable):
		return "unavailable"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrCarNotFound):
		return "not_found"
	default:
		return "error"
	}
}
