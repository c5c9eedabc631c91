// Package controllers maps the HTTP surface onto the service layer. Every
// service error is translated here into the JSON {message} contract.
package controllers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/boutiklabs/boutik/app/models"
	"github.com/boutiklabs/boutik/app/services"
	"github.com/boutiklabs/boutik/pkg/bind"
	"github.com/boutiklabs/boutik/pkg/logger"
	"github.com/boutiklabs/boutik/pkg/response"
)

const msgProductNotFound = "Produit non trouvé"

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// Index handles GET /products.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, c.service.List())
}

// Show handles GET /products/{id}.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := services.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		response.Message(w, http.StatusNotFound, msgProductNotFound)
		return
	}

	product, err := c.service.Get(id)
	if err != nil {
		response.Message(w, http.StatusNotFound, msgProductNotFound)
		return
	}

	response.JSON(w, http.StatusOK, product)
}

// Store handles POST /products.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var fields models.ProductPatch
	if _, err := bind.JSON(r, &fields); err != nil {
		response.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := c.service.Create(fields)
	if err != nil {
		logger.WithCtx(r.Context()).Error("create product", "error", err)
		response.Message(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	logger.WithCtx(r.Context()).Info("product created", "id", product.ID)
	response.JSON(w, http.StatusCreated, product)
}

// Update handles PUT /products/{id}.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := services.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		response.Message(w, http.StatusNotFound, msgProductNotFound)
		return
	}

	var patch models.ProductPatch
	if _, err := bind.JSON(r, &patch); err != nil {
		response.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := c.service.Update(id, patch)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.Message(w, http.StatusNotFound, msgProductNotFound)
			return
		}
		logger.WithCtx(r.Context()).Error("update product", "id", id, "error", err)
		response.Message(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.JSON(w, http.StatusOK, product)
}

// Destroy handles DELETE /products/{id}.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, err := services.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		response.Message(w, http.StatusNotFound, msgProductNotFound)
		return
	}

	if err := c.service.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.Message(w, http.StatusNotFound, msgProductNotFound)
			return
		}
		logger.WithCtx(r.Context()).Error("delete product", "id", id, "error", err)
		response.Message(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.NoContent(w)
}
