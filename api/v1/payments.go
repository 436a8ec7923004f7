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

func (h *Handler) getPayment(w http.ResponseWriter, r *http.Request) {
	id, err := request.RouteUUIDParam(r, "id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	payment, err := h.store.GetPayment(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, payment)
}

func (h *Handler) createPayment(w http.ResponseWriter, r *http.Request) {
	var create model.PaymentCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		h.logger.Warn("invalid payment payload", zap.Error(err))
		response.BadRequest(h.logger, w, r, errors.New("Corpo da requisição inválido!"))
		return
	}
	payment, err := h.store.CreatePayment(r.Context(), &create)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, payment)
}

func (h *Handler) updatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := request.QueryUUIDParam(r, "pagamento_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	var update model.PaymentUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.logger.Warn("invalid payment payload", zap.Error(err))
		response.BadRequest(h.logger, w, r, errors.New("Corpo da requisição inválido!"))
		return
	}
	payment, err := h.store.UpdatePayment(r.Context(), id, &update)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, payment)
}

func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	payments, err := h.store.ListPayments(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, &model.Paginated[model.Payment]{
		Page:  page,
		Limit: limit,
		Total: len(payments),
		Items: util.Paginate(payments, page, limit),
	})
}

func (h *Handler) listPaymentsSorted(w http.ResponseWriter, r *http.Request) {
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	payments, err := h.store.ListPayments(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	util.SortCaseInsensitive(payments, func(p model.Payment) string { return p.PaymentDate.String() })
	response.OK(w, r, &model.Paginated[model.Payment]{
		Page:  page,
		Limit: limit,
		Total: len(payments),
		Items: util.Paginate(payments, page, limit),
	})
}

func (h *Handler) countPayments(w http.ResponseWriter, r *http.Request) {
	total, err := h.store.CountPayments(r.Context())
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, model.PaymentCount{Total: total})
}

func (h *Handler) deletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := request.QueryUUIDParam(r, "pagamento_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	if err := h.store.DeletePayment(r.Context(), id); err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, model.Message{Message: "Pagamento deletado com sucesso!"})
}

func (h *Handler) filterPayments(w http.ResponseWriter, r *http.Request) {
	page, limit, err := request.Pagination(r)
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}

	orderID, err := request.OptionalQueryUUIDParam(r, "pedido_id")
	if err != nil {
		response.BadRequest(h.logger, w, r, err)
		return
	}
	paymentDate, err := request.OptionalQueryDateParam(r, "data_pagamento")
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
	find := &model.FindPayment{
		OrderID:     orderID,
		Method:      request.OptionalQueryStringParam(r, "forma_pagamento"),
		PaymentDate: paymentDate,
		ValueMin:    valueMin,
		ValueMax:    valueMax,
	}

	payments, err := h.store.FilterPayments(r.Context(), find)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	response.OK(w, r, &model.Paginated[model.Payment]{
		Page:  page,
		Limit: limit,
		Total: len(payments),
		Items: util.Paginate(payments, page, limit),
	})
}
