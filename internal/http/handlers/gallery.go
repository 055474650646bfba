package handlers

import (
	"net/http"

	"modernband/internal/domain"
	"modernband/internal/site"

	"github.com/gin-gonic/gin"
)

// GET /api/gallery?category=
func (h *Handler) GalleryItems(c *gin.Context) {
	items := h.galleryService(c).List(c.Request.Context(), c.Query("category"))
	c.JSON(http.StatusOK, gin.H{"items": items, "categories": site.GalleryCategories})
}

// POST /admin/api/gallery takes a multipart "file" and "category".
func (h *Handler) UploadGalleryItem(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "file", Msg: "Please choose a file to upload", Err: err})
		return
	}
	url, err := h.galleryService(c).Upload(c.Request.Context(), c.PostForm("category"), file)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "File uploaded", "url": url})
}
