package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	packageapp "github.com/muhammadheryan/package-crud/application/packages"
	userapp "github.com/muhammadheryan/package-crud/application/user"
	"github.com/muhammadheryan/package-crud/constant"
	"github.com/muhammadheryan/package-crud/model"
	utilsContext "github.com/muhammadheryan/package-crud/utils/context"
	"github.com/muhammadheryan/package-crud/utils/errors"
	validatorx "github.com/muhammadheryan/package-crud/utils/validator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp    userapp.UserApp
	PackageApp packageapp.PackageApp
}

// Options carries the transport dependencies that are not application services
type Options struct {
	InternalAPIKey string
	Metrics        *MetricsMiddleware
	Gatherer       prometheus.Gatherer
}

func NewTransport(UserApp userapp.UserApp, PackageApp packageapp.PackageApp, opts Options) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:    UserApp,
		PackageApp: PackageApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Prometheus scrape endpoint, internal only
	if opts.Gatherer != nil {
		mux.Handle("/metrics", InternalMiddleware(opts.InternalAPIKey)(
			promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}),
		)).Methods(http.MethodGet)
	}

	// User routes
	mux.HandleFunc("/user/create", rh.CreateUser).Methods(http.MethodPost)
	mux.HandleFunc("/user/find-all", rh.FindAllUsers).Methods(http.MethodGet)
	mux.HandleFunc("/user/find-by-id", rh.FindUserByID).Methods(http.MethodGet)
	mux.HandleFunc("/user/login", rh.Login).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/user/update", rh.UpdateUser).Methods(http.MethodPost)
	mux.HandleFunc("/user/delete", rh.DeleteUser).Methods(http.MethodDelete)
	mux.HandleFunc("/user/logout", rh.Logout).Methods(http.MethodPost)

	// Package routes
	mux.HandleFunc("/package/create", rh.CreatePackage).Methods(http.MethodPost)
	mux.HandleFunc("/package/update", rh.UpdatePackage).Methods(http.MethodPost)
	mux.HandleFunc("/package/delete", rh.DeletePackage).Methods(http.MethodDelete)
	mux.HandleFunc("/package/find-by-id", rh.FindPackageByID).Methods(http.MethodGet)

	// middleware
	if opts.Metrics != nil {
		mux.Use(opts.Metrics.Handler())
	}
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(UserApp))

	return mux
}

// CreateUser handler
// @Summary Create user
// @Description Register a new user. Validation failures are reported in statusCode and description.
// @Tags User
// @Accept json
// @Produce json
// @Param request body model.UserRequest true "User Request"
// @Success 200 {object} model.UserResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /user/create [post]
func (s *RestHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.CreateUser(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// FindAllUsers handler
// @Summary List users
// @Description List every user that is not deleted
// @Tags User
// @Produce json
// @Success 200 {array} model.UserResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /user/find-all [get]
func (s *RestHandler) FindAllUsers(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.FindAllUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// FindUserByID handler
// @Summary Find user
// @Description Find an active user by id, null when absent
// @Tags User
// @Produce json
// @Param id query int true "User ID"
// @Success 200 {object} model.UserResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /user/find-by-id [get]
func (s *RestHandler) FindUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := queryInt64(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.FindUserByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateUser handler
// @Summary Update user
// @Description Replace the profile of the authenticated user
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query int true "User ID"
// @Param request body model.UserRequest true "User Request"
// @Success 200 {object} model.UserResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /user/update [post]
func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := s.ownUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.UpdateUser(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteUser handler
// @Summary Delete user
// @Description Soft delete the authenticated user
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param id query int true "User ID"
// @Success 200 {boolean} boolean
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /user/delete [delete]
func (s *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := s.ownUserID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.DeleteUser(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email and password and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /user/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout user
// @Description Invalidate the session of the bearer token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {boolean} boolean
// @Failure 401 {object} model.ErrorResponse
// @Router /user/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.UserApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, true)
}

// ownUserID reads the id query parameter and checks it against the authenticated user
func (s *RestHandler) ownUserID(r *http.Request) (int64, error) {
	id, err := queryInt64(r, "id")
	if err != nil {
		return 0, err
	}

	callerID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		return 0, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if callerID != id {
		return 0, errors.SetCustomError(constant.ErrForbidden)
	}
	return id, nil
}
