package v1

import (
	"encoding/json"
	"net/http"

	"github.com/mybooks/mybooks/http/request"
	"github.com/mybooks/mybooks/http/response"
	"github.com/mybooks/mybooks/model"
	"github.com/mybooks/mybooks/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := request.RouteUUIDParam(r, "id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	user, err := h.store.GetUser(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, user)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var create model.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		h.logger.Warn("invalid user payload", zap.Error(err))
		response.BadRequest(h.logger, w, r, errors.New("Corpo da requisição inválido!"))
		return
	}
	user, err := h.store.CreateUser(r.Context(), &create)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, user)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := request.QueryUUIDParam(r, "usuario_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	var update model.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.logger.Warn("invalid user payload", zap.Error(err))
		response.BadRequest(h.logger, w, r, errors.New("Corpo da requisição inválido!"))
		return
	}
	user, err := h.store.UpdateUser(r.Context(), id, &update)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, user)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, &model.Paginated[model.User]{
		Page:  page,
		Limit: limit,
		Total: len(users),
		Items: util.Paginate(users, page, limit),
	})
}

func (h *Handler) listUsersSorted(w http.ResponseWriter, r *http.Request) {
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	util.SortCaseInsensitive(users, func(u model.User) string { return u.Name })
	response.OK(w, r, &model.Paginated[model.User]{
		Page:  page,
		Limit: limit,
		Total: len(users),
		Items: util.Paginate(users, page, limit),
	})
}

func (h *Handler) countUsers(w http.ResponseWriter, r *http.Request) {
	total, err := h.store.CountUsers(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, model.UserCount{Total: total})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := request.QueryUUIDParam(r, "usuario_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	if err := h.store.DeleteUser(r.Context(), id); err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, model.Message{Message: "Usuário deletado com sucesso!"})
}

func (h *Handler) filterUsers(w http.ResponseWriter, r *http.Request) {
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	find := &model.FindUser{
		Name:  request.OptionalQueryStringParam(r, "nome"),
		Email: request.OptionalQueryStringParam(r, "email"),
		CPF:   request.OptionalQueryStringParam(r, "cpf"),
	}

	users, err := h.store.FilterUsers(r.Context(), find)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, &model.Paginated[model.User]{
		Page:  page,
		Limit: limit,
		Total: len(users),
		Items: util.Paginate(users, page, limit),
	})
}
