package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sanadhr/backoffice-go/internal/domain/user"
	"github.com/sanadhr/backoffice-go/internal/handler/http/middleware"
	"github.com/sanadhr/backoffice-go/internal/handler/http/response"
)

type AccessHandler interface {
	CreateUser(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	SetAccess(w http.ResponseWriter, r *http.Request)
	SetRole(w http.ResponseWriter, r *http.Request)
}

type accessHandlerImpl struct {
	accessService user.AccessService
}

func NewAccessHandler(accessService user.AccessService) AccessHandler {
	return &accessHandlerImpl{accessService: accessService}
}

func (h *accessHandlerImpl) CreateUser(w http.ResponseWriter, r *http.Request) {
	_, actorRole, ok := middleware.ActorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	var req user.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.accessService.Create(r.Context(), actorRole, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created", result)
}

func (h *accessHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	_, actorRole, ok := middleware.ActorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	result, err := h.accessService.List(r.Context(), actorRole)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *accessHandlerImpl) SetAccess(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := middleware.ActorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	var req user.SetAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.UserID = chi.URLParam(r, "id")
	req.ActorID = actorID
	req.ActorRole = actorRole

	result, err := h.accessService.SetAccess(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *accessHandlerImpl) SetRole(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := middleware.ActorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	var req user.SetRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.UserID = chi.URLParam(r, "id")
	req.ActorID = actorID
	req.ActorRole = actorRole

	result, err := h.accessService.SetRole(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
