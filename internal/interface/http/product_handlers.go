package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	productuc "example.com/forever-shop/backend/internal/usecase/product"
)

const maxUploadSize = 32 << 20

type productIDRequest struct {
	ID string `json:"id" validate:"required"`
}

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := a.productSvc.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(products))
	for _, p := range products {
		resp = append(resp, mapProduct(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "products": resp})
}

func (a *API) handleSingleProduct(w http.ResponseWriter, r *http.Request) {
	var req productIDRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	p, err := a.productSvc.GetByID(r.Context(), req.ID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "product": mapProduct(p)})
}

// handleAddProduct accepts a multipart form with the catalog fields plus up
// to four image files named image1..image4.
func (a *API) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Errorf("invalid price: %w", err))
		return
	}

	var sizes []string
	if raw := r.FormValue("sizes"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &sizes); err != nil {
			respondError(w, http.StatusBadRequest, fmt.Errorf("invalid sizes: %w", err))
			return
		}
	}

	var images []productuc.ImageFile
	for i := 1; i <= 4; i++ {
		file, header, err := r.FormFile(fmt.Sprintf("image%d", i))
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				continue
			}
			respondError(w, http.StatusBadRequest, err)
			return
		}
		defer file.Close()
		images = append(images, productuc.ImageFile{Name: header.Filename, Reader: file})
	}

	p, err := a.productSvc.Add(r.Context(), productuc.AddInput{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       price,
		Category:    r.FormValue("category"),
		SubCategory: r.FormValue("subCategory"),
		Sizes:       sizes,
		Bestseller:  r.FormValue("bestseller") == "true",
		Images:      images,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Product added successfully",
		"product": mapProduct(p),
	})
}

func (a *API) handleRemoveProduct(w http.ResponseWriter, r *http.Request) {
	var req productIDRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.productSvc.Remove(r.Context(), req.ID); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Product removed successfully"})
}
