package http

import (
	"net/http"

	"github.com/timerod/timerod-backend-go/internal/domain/area"
	"github.com/timerod/timerod-backend-go/internal/handler/http/response"
)

type AreaHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListByCompany(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type areaHandlerImpl struct {
	areaService area.AreaService
}

func NewAreaHandler(areaService area.AreaService) AreaHandler {
	return &areaHandlerImpl{areaService: areaService}
}

func (h *areaHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	areas, err := h.areaService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, areas)
}

func (h *areaHandlerImpl) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := pathID(r, "empresaId")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	areas, err := h.areaService.ListByCompany(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, areas)
}

func (h *areaHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	result, err := h.areaService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *areaHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req area.AreaRequest
	if !decodeJSON(w, r, &req, "Create area") {
		return
	}
	created, err := h.areaService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Area created successfully", created)
}

func (h *areaHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	var req area.AreaRequest
	if !decodeJSON(w, r, &req, "Update area") {
		return
	}
	req.ID = id
	if err := h.areaService.Update(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Area updated successfully", nil)
}

func (h *areaHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if err := h.areaService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Area deleted successfully", nil)
}
