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

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := request.RouteUUIDParam(r, "id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	order, err := h.store.GetOrder(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, order)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var create model.OrderCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		h.logger.Warn("invalid order payload", zap.Error(err))
		response.BadRequest(h.logger, w, r, errors.New("Corpo da requisição inválido!"))
		return
	}
	order, err := h.store.CreateOrder(r.Context(), &create)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, order)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := request.QueryUUIDParam(r, "pedido_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	var update model.OrderUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.logger.Warn("invalid order payload", zap.Error(err))
		response.BadRequest(h.logger, w, r, errors.New("Corpo da requisição inválido!"))
		return
	}
	order, err := h.store.UpdateOrder(r.Context(), id, &update)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	orders, err := h.store.ListOrders(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, &model.Paginated[model.Order]{
		Page:  page,
		Limit: limit,
		Total: len(orders),
		Items: util.Paginate(orders, page, limit),
	})
}

// listOrdersSorted orders by the date's string form, matching the stored wire
// behavior rather than chronological order.
func (h *Handler) listOrdersSorted(w http.ResponseWriter, r *http.Request) {
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	orders, err := h.store.ListOrders(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	util.SortCaseInsensitive(orders, func(o model.Order) string { return o.OrderDate.String() })
	response.OK(w, r, &model.Paginated[model.Order]{
		Page:  page,
		Limit: limit,
		Total: len(orders),
		Items: util.Paginate(orders, page, limit),
	})
}

func (h *Handler) countOrders(w http.ResponseWriter, r *http.Request) {
	total, err := h.store.CountOrders(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, model.OrderCount{Total: total})
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := request.QueryUUIDParam(r, "pedido_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	if err := h.store.DeleteOrder(r.Context(), id); err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, model.Message{Message: "Pedido deletado com sucesso!"})
}

func (h *Handler) filterOrders(w http.ResponseWriter, r *http.Request) {
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}

	userID, err := request.OptionalQueryUUIDParam(r, "usuario_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	orderDate, err := request.OptionalQueryDateParam(r, "data_pedido")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	valueMin, err := request.OptionalQueryFloatParam(r, "valor_min")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	valueMax, err := request.OptionalQueryFloatParam(r, "valor_max")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	find := &model.FindOrder{
		UserID:    userID,
		Status:    request.OptionalQueryStringParam(r, "status"),
		OrderDate: orderDate,
		ValueMin:  valueMin,
		ValueMax:  valueMax,
	}

	orders, err := h.store.FilterOrders(r.Context(), find)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, &model.Paginated[model.Order]{
		Page:  page,
		Limit: limit,
		Total: len(orders),
		Items: util.Paginate(orders, page, limit),
	})
}
