package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"vendorgrid/internal/service"
	"vendorgrid/pkg/pagination"
	"vendorgrid/pkg/response"

	"github.com/gin-gonic/gin"
)

const notifyTimeout = 10 * time.Second

type VendorHandler struct {
	vendorService      service.VendorService
	integrationService service.IntegrationService
}

func NewVendorHandler(vendorService service.VendorService, integrationService service.IntegrationService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService, integrationService: integrationService}
}

func (h *VendorHandler) RegisterRoutes(router *gin.RouterGroup) {
	vendors := router.Group("/api/vendors")
	{
		vendors.GET("", h.ListVendors)
		vendors.GET("/search", h.SearchVendors)
		vendors.GET("/export", h.ExportVendors)
		vendors.POST("/import", h.ImportVendors)
		vendors.GET("/:id", h.GetVendor)
		vendors.POST("", h.CreateVendor)
		vendors.PUT("/:id", h.UpdateVendor)
		vendors.DELETE("/:id", h.DeleteVendor)
	}
}

// notify runs a webhook notification off the request goroutine so delivery
// can never block or fail the triggering operation.
func (h *VendorHandler) notify(fn func(ctx context.Context)) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		fn(ctx)
	}()
}

// ListVendors returns all vendors without pagination
// @Summary      List vendors
// @Tags         vendors
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/vendors [get]
func (h *VendorHandler) ListVendors(c *gin.Context) {
	vendors, err := h.vendorService.GetAllVendors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch vendors"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, vendors))
}

// SearchVendors filters vendors with OR-combined substring matches
// @Summary      Search vendors
// @Tags         vendors
// @Produce      json
// @Param        name           query  string  false  "Partial match on name"
// @Param        tax_id         query  string  false  "Partial match on tax ID"
// @Param        address        query  string  false  "Partial match on address"
// @Param        contact_email  query  string  false  "Partial match on contact email"
// @Param        page           query  int     false  "Page number (default: 1)"
// @Param        page_size      query  int     false  "Items per page (default: 50, max: 100)"
// @Success      200  {object}  response.Response
// @Router       /api/vendors/search [get]
func (h *VendorHandler) SearchVendors(c *gin.Context) {
	params := service.SearchVendorsParams{
		Name:         c.Query("name"),
		TaxID:        c.Query("tax_id"),
		Address:      c.Query("address"),
		ContactEmail: c.Query("contact_email"),
	}
	p := pagination.Parse(c)

	page, err := h.vendorService.SearchVendorsPaged(c.Request.Context(), params, p.Page, p.PageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to search vendors"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, page))
}

// GetVendor returns a single vendor by id
// @Summary      Get vendor
// @Tags         vendors
// @Produce      json
// @Param        id  path  int  true  "Vendor ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/vendors/{id} [get]
func (h *VendorHandler) GetVendor(c *gin.Context) {
	id, ok := parseVendorID(c)
	if !ok {
		return
	}

	vendor, err := h.vendorService.GetVendorByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Vendor not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch vendor"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, vendor))
}

// CreateVendor creates a new vendor
// @Summary      Create vendor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateVendorRequest  true  "Vendor payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/vendors [post]
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	var req service.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), req)
	if err != nil {
		c.JSON(vendorErrorStatus(err), response.Error(vendorErrorStatus(err), vendorErrorMessage(err)))
		return
	}

	h.notify(func(ctx context.Context) {
		h.integrationService.NotifyVendorCreated(ctx, vendor)
	})
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, vendor))
}

// UpdateVendor applies a partial update to an existing vendor
// @Summary      Update vendor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        id       path  int                           true  "Vendor ID"
// @Param        payload  body  service.UpdateVendorRequest   true  "Update payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/vendors/{id} [put]
func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	id, ok := parseVendorID(c)
	if !ok {
		return
	}

	var req service.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(vendorErrorStatus(err), response.Error(vendorErrorStatus(err), vendorErrorMessage(err)))
		return
	}

	h.notify(func(ctx context.Context) {
		h.integrationService.NotifyVendorUpdated(ctx, vendor)
	})
	c.JSON(http.StatusOK, response.Success(http.StatusOK, vendor))
}

// DeleteVendor removes a vendor by id
// @Summary      Delete vendor
// @Tags         vendors
// @Produce      json
// @Param        id  path  int  true  "Vendor ID"
// @Success      204  "No Content"
// @Failure      404  {object}  response.Response
// @Router       /api/vendors/{id} [delete]
func (h *VendorHandler) DeleteVendor(c *gin.Context) {
	id, ok := parseVendorID(c)
	if !ok {
		return
	}

	deleted, err := h.vendorService.DeleteVendor(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to delete vendor"))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Vendor not found"))
		return
	}

	h.notify(func(ctx context.Context) {
		h.integrationService.NotifyVendorDeleted(ctx, id)
	})
	c.Status(http.StatusNoContent)
}

// ExportVendors streams all vendors as a CSV attachment
// @Summary      Export vendors to CSV
// @Tags         vendors
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/vendors/export [get]
func (h *VendorHandler) ExportVendors(c *gin.Context) {
	vendors, err := h.vendorService.GetAllVendors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Export failed"))
		return
	}

	csvContent, err := h.vendorService.ExportVendorsCSV(vendors)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Export failed"))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="vendors.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(csvContent))
}

// ImportVendors imports vendors from an uploaded CSV file
// @Summary      Import vendors from CSV
// @Tags         vendors
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV file with name, tax_id, address, contact_email columns"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/vendors/import [post]
func (h *VendorHandler) ImportVendors(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "CSV file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Failed to read uploaded file"))
		return
	}
	defer file.Close()

	result, err := h.vendorService.ImportVendorsCSV(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCSV) {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Import failed"))
		return
	}

	h.notify(func(ctx context.Context) {
		h.integrationService.NotifyImportCompleted(ctx, result)
	})
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// --- Helpers ---

func parseVendorID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid vendor ID"))
		return 0, false
	}
	return uint(id), true
}

// vendorErrorStatus maps service conditions to HTTP status codes. Anything
// outside the known taxonomy is a 500 with no internal detail leaked.
func vendorErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrVendorNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrDuplicateTaxID):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCSV):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func vendorErrorMessage(err error) string {
	if vendorErrorStatus(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}
