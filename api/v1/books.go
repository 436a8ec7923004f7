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

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	id, err := request.RouteUUIDParam(r, "id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	book, err := h.store.GetBook(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, book)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	var create model.BookCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		h.logger.Warn("invalid book payload", zap.Error(err))
		response.BadRequest(h.logger, w, r, errors.New("Corpo da requisição inválido!"))
		return
	}
	book, err := h.store.CreateBook(r.Context(), &create)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, book)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	id, err := request.QueryUUIDParam(r, "livro_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	var update model.BookUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.logger.Warn("invalid book payload", zap.Error(err))
		response.BadRequest(h.logger, w, r, errors.New("Corpo da requisição inválido!"))
		return
	}
	book, err := h.store.UpdateBook(r.Context(), id, &update)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, book)
}

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	books, err := h.store.ListBooks(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, &model.Paginated[model.Book]{
		Page:  page,
		Limit: limit,
		Total: len(books),
		Items: util.Paginate(books, page, limit),
	})
}

func (h *Handler) listBooksSorted(w http.ResponseWriter, r *http.Request) {
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	books, err := h.store.ListBooks(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	util.SortCaseInsensitive(books, func(b model.Book) string { return b.Title })
	response.OK(w, r, &model.Paginated[model.Book]{
		Page:  page,
		Limit: limit,
		Total: len(books),
		Items: util.Paginate(books, page, limit),
	})
}

func (h *Handler) countBooks(w http.ResponseWriter, r *http.Request) {
	total, err := h.store.CountBooks(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, model.BookCount{Total: total})
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := request.QueryUUIDParam(r, "livro_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	if err := h.store.DeleteBook(r.Context(), id); err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, model.Message{Message: "Livro deletado com sucesso!"})
}

func (h *Handler) filterBooks(w http.ResponseWriter, r *http.Request) {
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}

	priceMin, err := request.OptionalQueryFloatParam(r, "preco_min")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	priceMax, err := request.OptionalQueryFloatParam(r, "preco_max")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	authorID, err := request.OptionalQueryUUIDParam(r, "autor_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	publisherID, err := request.OptionalQueryUUIDParam(r, "editora_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	find := &model.FindBook{
		Title:       request.OptionalQueryStringParam(r, "titulo"),
		Genre:       request.OptionalQueryStringParam(r, "genero"),
		PriceMin:    priceMin,
		PriceMax:    priceMax,
		AuthorID:    authorID,
		PublisherID: publisherID,
	}

	books, err := h.store.FilterBooks(r.Context(), find)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, &model.Paginated[model.Book]{
		Page:  page,
		Limit: limit,
		Total: len(books),
		Items: util.Paginate(books, page, limit),
	})
}
