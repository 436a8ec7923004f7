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

func (h *Handler) getPublisher(w http.ResponseWriter, r *http.Request) {
	id, err := request.RouteUUIDParam(r, "id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	publisher, err := h.store.GetPublisher(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, publisher)
}

func (h *Handler) createPublisher(w http.ResponseWriter, r *http.Request) {
	var create model.PublisherCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		h.logger.Warn("invalid publisher payload", zap.Error(err))
		response.BadRequest(h.logger, w, r, errors.New("Corpo da requisição inválido!"))
		return
	}
	publisher, err := h.store.CreatePublisher(r.Context(), &create)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, publisher)
}

// updatePublisher takes the target id as a query parameter, unlike the author
// route. The asymmetry comes from the wire contract.
func (h *Handler) updatePublisher(w http.ResponseWriter, r *http.Request) {
	id, err := request.QueryUUIDParam(r, "editora_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	var update model.PublisherUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.logger.Warn("invalid publisher payload", zap.Error(err))
		response.BadRequest(h.logger, w, r, errors.New("Corpo da requisição inválido!"))
		return
	}
	publisher, err := h.store.UpdatePublisher(r.Context(), id, &update)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, publisher)
}

func (h *Handler) listPublishers(w http.ResponseWriter, r *http.Request) {
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	publishers, err := h.store.ListPublishers(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, &model.Paginated[model.Publisher]{
		Page:  page,
		Limit: limit,
		Total: len(publishers),
		Items: util.Paginate(publishers, page, limit),
	})
}

func (h *Handler) listPublishersSorted(w http.ResponseWriter, r *http.Request) {
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	publishers, err := h.store.ListPublishers(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	util.SortCaseInsensitive(publishers, func(p model.Publisher) string { return p.Name })
	response.OK(w, r, &model.Paginated[model.Publisher]{
		Page:  page,
		Limit: limit,
		Total: len(publishers),
		Items: util.Paginate(publishers, page, limit),
	})
}

func (h *Handler) countPublishers(w http.ResponseWriter, r *http.Request) {
	total, err := h.store.CountPublishers(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, model.PublisherCount{Total: total})
}

func (h *Handler) deletePublisher(w http.ResponseWriter, r *http.Request) {
	id, err := request.QueryUUIDParam(r, "editora_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	if err := h.store.DeletePublisher(r.Context(), id); err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, model.Message{Message: "Editora deletada com sucesso!"})
}

func (h *Handler) filterPublishers(w http.ResponseWriter, r *http.Request) {
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	find := &model.FindPublisher{
		Name:    request.OptionalQueryStringParam(r, "nome"),
		Address: request.OptionalQueryStringParam(r, "endereco"),
		Phone:   request.OptionalQueryStringParam(r, "telefone"),
		Email:   request.OptionalQueryStringParam(r, "email"),
	}

	publishers, err := h.store.FilterPublishers(r.Context(), find)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, &model.Paginated[model.Publisher]{
		Page:  page,
		Limit: limit,
		Total: len(publishers),
		Items: util.Paginate(publishers, page, limit),
	})
}
