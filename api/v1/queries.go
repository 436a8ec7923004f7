package v1

import (
	"net/http"

	"github.com/mybooks/mybooks/http/request"
	"github.com/mybooks/mybooks/http/response"
)

// Cross-entity read endpoints. The heavy lifting lives in the store's
// aggregation methods; these handlers only parse params and map errors.

func (h *Handler) userOrderDetails(w http.ResponseWriter, r *http.Request) {
	userID, err := request.RouteUUIDParam(r, "usuario_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	details, err := h.store.OrderDetailsByUser(r.Context(), userID, page, limit)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, details)
}

func (h *Handler) publisherDetail(w http.ResponseWriter, r *http.Request) {
	publisherID, err := request.RouteUUIDParam(r, "editora_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	detail, err := h.store.PublisherDetail(r.Context(), publisherID, page, limit)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, detail)
}

func (h *Handler) listPublishersWithBooks(w http.ResponseWriter, r *http.Request) {
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	publishers, err := h.store.PublishersWithBooks(r.Context(), page, limit)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, publishers)
}
