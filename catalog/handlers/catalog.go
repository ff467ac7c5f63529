package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelieraurum/studio-api/catalog/dal"
	"github.com/atelieraurum/studio-api/framework/connection"
	"github.com/atelieraurum/studio-api/framework/web"
	"github.com/atelieraurum/studio-api/logger"
)

type Catalog struct {
	loggerProvider logger.Provider
	productsDAL    dal.Products
}

// NewCatalog creates new catalog package handlers.
func NewCatalog(loggerProvider logger.Provider, conn *connection.Connection) *Catalog {
	return &Catalog{
		loggerProvider,
		dal.NewProductsFirestoreWithClient(conn.Firestore),
	}
}

func (h *Catalog) ListProductsHandler(ctx *gin.Context) error {
	products, err := h.productsDAL.ListProducts(ctx)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, products, http.StatusOK)
}

func (h *Catalog) GetProductHandler(ctx *gin.Context) error {
	productID := ctx.Param("productID")
	if productID == "" {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	product, err := h.productsDAL.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, dal.ErrProductNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, product, http.StatusOK)
}

type setStockRequest struct {
	QuantityInStock *int64 `json:"quantityInStock" binding:"required,gte=0"`
}

// SetStockHandler sets the absolute stock quantity of a product. Used by the
// admin inventory edit form; checkout flows only ever decrement.
func (h *Catalog) SetStockHandler(ctx *gin.Context) error {
	productID := ctx.Param("productID")
	if productID == "" {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	var body setStockRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.productsDAL.SetQuantity(ctx, productID, *body.QuantityInStock); err != nil {
		if errors.Is(err, dal.ErrProductNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusNoContent)
}
