package transport

import (
	"net/http"
)

// CreatePackage handler
// @Summary Create package
// @Tags Package
// @Produce json
// @Param name query string true "Package name"
// @Param price query int true "Package price"
// @Success 200 {object} model.Package
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /package/create [post]
func (s *RestHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	name, err := queryString(r, "name")
	if err != nil {
		writeError(w, err)
		return
	}
	price, err := queryInt(r, "price")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PackageApp.SavePackage(r.Context(), name, price)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdatePackage handler
// @Summary Update package
// @Description Replace the package stored under id, creating it when absent
// @Tags Package
// @Produce json
// @Param id query int true "Package ID"
// @Param name query string true "Package name"
// @Param price query int true "Package price"
// @Success 200 {object} model.Package
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /package/update [post]
func (s *RestHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	id, err := queryInt64(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	name, err := queryString(r, "name")
	if err != nil {
		writeError(w, err)
		return
	}
	price, err := queryInt(r, "price")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PackageApp.UpdatePackage(r.Context(), id, name, price)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeletePackage handler
// @Summary Delete package
// @Tags Package
// @Produce json
// @Param id query int true "Package ID"
// @Success 200 {boolean} boolean
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /package/delete [delete]
func (s *RestHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	id, err := queryInt64(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PackageApp.DeletePackage(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// FindPackageByID handler
// @Summary Find package
// @Description Find a package by id, null when absent
// @Tags Package
// @Produce json
// @Param id query int true "Package ID"
// @Success 200 {object} model.Package
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /package/find-by-id [get]
func (s *RestHandler) FindPackageByID(w http.ResponseWriter, r *http.Request) {
	id, err := queryInt64(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.PackageApp.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
