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

func (h *Handler) getAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := request.RouteUUIDParam(r, "id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	author, err := h.store.GetAuthor(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, author)
}

func (h *Handler) createAuthor(w http.ResponseWriter, r *http.Request) {
	var create model.AuthorCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		h.logger.Warn("invalid author payload", zap.Error(err))
		response.BadRequest(h.logger, w, r, errors.New("Corpo da requisição inválido!"))
		return
	}
	author, err := h.store.CreateAuthor(r.Context(), &create)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, author)
}

func (h *Handler) updateAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := request.RouteUUIDParam(r, "id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	var update model.AuthorUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.logger.Warn("invalid author payload", zap.Error(err))
		response.BadRequest(h.logger, w, r, errors.New("Corpo da requisição inválido!"))
		return
	}
	author, err := h.store.UpdateAuthor(r.Context(), id, &update)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, author)
}

func (h *Handler) listAuthors(w http.ResponseWriter, r *http.Request) {
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	authors, err := h.store.ListAuthors(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, &model.Paginated[model.Author]{
		Page:  page,
		Limit: limit,
		Total: len(authors),
		Items: util.Paginate(authors, page, limit),
	})
}

func (h *Handler) listAuthorsSorted(w http.ResponseWriter, r *http.Request) {
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	authors, err := h.store.ListAuthors(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	util.SortCaseInsensitive(authors, func(a model.Author) string { return a.Name })
	response.OK(w, r, &model.Paginated[model.Author]{
		Page:  page,
		Limit: limit,
		Total: len(authors),
		Items: util.Paginate(authors, page, limit),
	})
}

func (h *Handler) countAuthors(w http.ResponseWriter, r *http.Request) {
	total, err := h.store.CountAuthors(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, model.AuthorCount{Total: total})
}

func (h *Handler) deleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := request.QueryUUIDParam(r, "autor_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	if err := h.store.DeleteAuthor(r.Context(), id); err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, model.Message{Message: "Autor deletado com sucesso!"})
}

func (h *Handler) filterAuthors(w http.ResponseWriter, r *http.Request) {
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}

	// The birth date filter is the one endpoint using DD-MM-AAAA.
	birth, err := request.OptionalQueryDateBRParam(r, "data_nascimento")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	find := &model.FindAuthor{
		Name:        request.OptionalQueryStringParam(r, "nome"),
		Email:       request.OptionalQueryStringParam(r, "email"),
		BirthDate:   birth,
		Nationality: request.OptionalQueryStringParam(r, "nacionalidade"),
	}

	authors, err := h.store.FilterAuthors(r.Context(), find)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, &model.Paginated[model.Author]{
		Page:  page,
		Limit: limit,
		Total: len(authors),
		Items: util.Paginate(authors, page, limit),
	})
}
