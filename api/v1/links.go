package v1

import (
	"encoding/json"
	"net/http"

	"github.com/mybooks/mybooks/http/request"
	"github.com/mybooks/mybooks/http/response"
	"github.com/mybooks/mybooks/model"
	"github.com/mybooks/mybooks/store"
	"github.com/mybooks/mybooks/util"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (h *Handler) linkOrderBook(w http.ResponseWriter, r *http.Request) {
	var link model.OrderBookLink
	if err := json.NewDecoder(r.Body).Decode(&link); err != nil {
		h.logger.Warn("invalid link payload", zap.Error(err))
		response.BadRequest(h.logger, w, r, errors.New("Corpo da requisição inválido!"))
		return
	}
	if err := h.store.LinkOrderBook(r.Context(), &link); err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.Created(w, r, link)
}

// listOrderBooks resolves each linked book into {id, titulo, autor_nome}.
// A link whose book or author no longer exists is dropped from the page, but
// still counted in total.
func (h *Handler) listOrderBooks(w http.ResponseWriter, r *http.Request) {
	orderID, err := request.RouteUUIDParam(r, "pedido_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}

	links, err := h.store.ListOrderBooks(r.Context(), orderID)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	total := len(links)
	if total == 0 {
		response.NotFound(h.logger, w, r, errors.New("Nenhum livro vinculado a esse pedido."))
		return
	}

	items := []model.BookInfo{}
	for _, link := range util.Paginate(links, page, limit) {
		book, err := h.store.GetBook(r.Context(), link.BookID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				h.logger.Warn("linked book missing", zap.String("livro_id", link.BookID.String()))
				continue
			}
			h.respondStoreError(w, r, err)
			return
		}
		author, err := h.store.GetAuthor(r.Context(), book.AuthorID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				h.logger.Warn("author of linked book missing", zap.String("autor_id", book.AuthorID.String()))
				continue
			}
			h.respondStoreError(w, r, err)
			return
		}
		items = append(items, model.BookInfo{ID: book.ID, Title: book.Title, AuthorName: author.Name})
	}

	response.OK(w, r, &model.Paginated[model.BookInfo]{
		Page:  page,
		Limit: limit,
		Total: total,
		Items: items,
	})
}

func (h *Handler) unlinkOrderBook(w http.ResponseWriter, r *http.Request) {
	orderID, err := request.QueryUUIDParam(r, "pedido_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	bookID, err := request.QueryUUIDParam(r, "livro_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	if err := h.store.UnlinkOrderBook(r.Context(), &model.OrderBookLink{OrderID: orderID, BookID: bookID}); err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.NoContent(w, r)
}

func (h *Handler) linkOrderPayment(w http.ResponseWriter, r *http.Request) {
	var link model.OrderPaymentLink
	if err := json.NewDecoder(r.Body).Decode(&link); err != nil {
		h.logger.Warn("invalid link payload", zap.Error(err))
		response.BadRequest(h.logger, w, r, errors.New("Corpo da requisição inválido!"))
		return
	}
	if err := h.store.LinkOrderPayment(r.Context(), &link); err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.Created(w, r, link)
}

// listOrderPayments returns the raw link rows, unpaginated. The book listing
// above paginates; this one never did.
func (h *Handler) listOrderPayments(w http.ResponseWriter, r *http.Request) {
	orderID, err := request.RouteUUIDParam(r, "pedido_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	links, err := h.store.ListOrderPayments(r.Context(), orderID)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	if len(links) == 0 {
		response.NotFound(h.logger, w, r, errors.New("Nenhum pagamento vinculado a esse pedido."))
		return
	}
	response.OK(w, r, links)
}

func (h *Handler) unlinkOrderPayment(w http.ResponseWriter, r *http.Request) {
	orderID, err := request.QueryUUIDParam(r, "pedido_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	paymentID, err := request.QueryUUIDParam(r, "pagamento_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	if err := h.store.UnlinkOrderPayment(r.Context(), &model.OrderPaymentLink{OrderID: orderID, PaymentID: paymentID}); err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.NoContent(w, r)
}
