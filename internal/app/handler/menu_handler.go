package handler

import (
	"io"
	"net/http"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ds"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func menuItemToResponse(item *ds.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		ImageURL:    item.ImageURL,
		Category:    item.Category,
		IsAvailable: item.IsAvailable,
	}
}

// GetMenu lists the available menu of a restaurant (the sole restaurant
// when none is given).
// @Summary Customer menu
// @Tags Menu
// @Produce json
// @Param restaurantId query string false "Restaurant ID"
// @Success 200 {array} dto.MenuItemResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/menu [get]
func (h *APIHandler) GetMenu(c *gin.Context) {
	restaurant, err := h.Repository.ResolveRestaurant(c.Query("restaurantId"))
	if err != nil {
		h.repositoryError(c, err, "failed to fetch menu")
		return
	}

	items, err := h.Repository.ListAvailableMenuItems(restaurant.ID)
	if err != nil {
		h.repositoryError(c, err, "failed to fetch menu")
		return
	}

	resp := make([]dto.MenuItemResponse, len(items))
	for i := range items {
		resp[i] = menuItemToResponse(&items[i])
	}
	c.JSON(http.StatusOK, resp)
}

// GetRestaurantMenu lists the available menu of an explicit restaurant.
// @Summary Restaurant menu
// @Tags Menu
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {array} dto.MenuItemResponse
// @Router /api/restaurants/{id}/menu [get]
func (h *APIHandler) GetRestaurantMenu(c *gin.Context) {
	items, err := h.Repository.ListAvailableMenuItems(c.Param("id"))
	if err != nil {
		h.repositoryError(c, err, "failed to fetch menu")
		return
	}

	resp := make([]dto.MenuItemResponse, len(items))
	for i := range items {
		resp[i] = menuItemToResponse(&items[i])
	}
	c.JSON(http.StatusOK, resp)
}

// CreateMenuItem adds a dish to a restaurant menu.
// @Summary Create menu item
// @Tags Menu
// @Accept json
// @Produce json
// @Param request body dto.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/menu-items [post]
func (h *APIHandler) CreateMenuItem(c *gin.Context) {
	var req dto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "missing required fields")
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	item := ds.MenuItem{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		Category:     req.Category,
		IsAvailable:  isAvailable,
	}
	if err := h.Repository.CreateMenuItem(&item); err != nil {
		logrus.Error("create menu item failed: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to create menu item")
		return
	}

	resp := menuItemToResponse(&item)
	h.successResponse(c, http.StatusCreated, "menu item created", resp)
}

// UpdateMenuItem changes a dish. Only supplied fields are touched; placed
// orders keep their snapshots regardless.
// @Summary Update menu item
// @Tags Menu
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param request body dto.UpdateMenuItemRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/menu-items/{id} [put]
func (h *APIHandler) UpdateMenuItem(c *gin.Context) {
	var req dto.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}

	item, err := h.Repository.UpdateMenuItem(c.Param("id"), updates)
	if err != nil {
		h.repositoryError(c, err, "failed to update menu item")
		return
	}

	resp := menuItemToResponse(item)
	h.successResponse(c, http.StatusOK, "menu item updated", resp)
}

// DeleteMenuItem removes a dish from the menu.
// @Summary Delete menu item
// @Tags Menu
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/menu-items/{id} [delete]
func (h *APIHandler) DeleteMenuItem(c *gin.Context) {
	id := c.Param("id")

	// Fetch first so the stored photo can be cleaned up too.
	item, err := h.Repository.GetMenuItemByID(id)
	if err != nil {
		h.repositoryError(c, err, "failed to delete menu item")
		return
	}

	if err := h.Repository.DeleteMenuItem(id); err != nil {
		h.repositoryError(c, err, "failed to delete menu item")
		return
	}

	if item.ImageURL != nil && *item.ImageURL != "" && h.MinIOClient != nil {
		if err := h.MinIOClient.DeleteFile(*item.ImageURL); err != nil {
			logrus.Warnf("failed to delete image %s: %v", *item.ImageURL, err)
		}
	}

	h.successResponse(c, http.StatusOK, "menu item deleted", nil)
}

// UploadMenuItemImage stores a dish photo in MinIO and links it to the item.
// @Summary Upload menu item image
// @Tags Menu
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Menu item ID"
// @Param image formData file true "Image file"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/menu-items/{id}/image [post]
func (h *APIHandler) UploadMenuItemImage(c *gin.Context) {
	id := c.Param("id")
	item, err := h.Repository.GetMenuItemByID(id)
	if err != nil {
		h.repositoryError(c, err, "failed to upload image")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "image file missing")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "cannot read image file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "cannot read image file")
		return
	}

	// The replaced photo would otherwise stay orphaned in the bucket.
	if item.ImageURL != nil && *item.ImageURL != "" {
		if err := h.MinIOClient.DeleteFile(*item.ImageURL); err != nil {
			logrus.Warnf("failed to delete old image %s: %v", *item.ImageURL, err)
		}
	}

	filename, err := h.MinIOClient.UploadFile(data, fileHeader.Filename)
	if err != nil {
		logrus.Error("image upload failed: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to upload image")
		return
	}

	if err := h.Repository.SetMenuItemImage(id, filename); err != nil {
		h.repositoryError(c, err, "failed to upload image")
		return
	}

	h.successResponse(c, http.StatusOK, "image uploaded", gin.H{"image_url": filename})
}

// CreateRestaurant registers a new restaurant owned by the caller.
// @Summary Create restaurant
// @Tags Restaurants
// @Accept json
// @Produce json
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/restaurants [post]
func (h *APIHandler) CreateRestaurant(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		IsActive    *bool  `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "missing required fields")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	ownerID := c.GetString("userID")

	restaurant, err := h.Repository.CreateRestaurant(req.Name, req.Description, ownerID, isActive)
	if err != nil {
		logrus.Error("create restaurant failed: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to create restaurant")
		return
	}

	h.successResponse(c, http.StatusCreated, "restaurant created", gin.H{
		"id":   restaurant.ID,
		"name": restaurant.Name,
	})
}
