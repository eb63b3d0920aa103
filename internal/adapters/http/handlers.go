package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/application"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain/order"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/mediator"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/pagination"
)

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var cmd application.CreateOrderCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid json body")
		return
	}
	res := mediator.Send[application.CreateOrderCommand, application.CreateOrderResponse](r.Context(), h.mediator, cmd)
	if res.IsFailure() {
		h.writeFailure(w, res.Error())
		return
	}
	writeSuccess(w, http.StatusCreated, res.Value())
}

func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDParam(w, r)
	if !ok {
		return
	}
	res := mediator.SendCommand(r.Context(), h.mediator, application.SubmitOrderCommand{OrderID: orderID})
	if res.IsFailure() {
		h.writeFailure(w, res.Error())
		return
	}
	writeMessage(w, http.StatusOK, "order submitted")
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDParam(w, r)
	if !ok {
		return
	}
	res := mediator.SendCommand(r.Context(), h.mediator, application.DeleteOrderCommand{OrderID: orderID})
	if res.IsFailure() {
		h.writeFailure(w, res.Error())
		return
	}
	writeMessage(w, http.StatusOK, "order deleted")
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDParam(w, r)
	if !ok {
		return
	}
	res := mediator.Send[application.GetOrderByIDQuery, application.OrderDTO](r.Context(), h.mediator, application.GetOrderByIDQuery{OrderID: orderID})
	if res.IsFailure() {
		h.writeFailure(w, res.Error())
		return
	}
	writeSuccess(w, http.StatusOK, res.Value())
}

func (h *Handler) filterOrders(w http.ResponseWriter, r *http.Request) {
	query, ok := parseFilterQuery(w, r)
	if !ok {
		return
	}
	res := mediator.SendCollection[application.FilterOrdersQuery, application.OrderDTO](r.Context(), h.mediator, query)
	if res.IsFailure() {
		h.writeFailure(w, res.Error())
		return
	}
	writeSuccess(w, http.StatusOK, res.Value())
}

func orderIDParam(w http.ResponseWriter, r *http.Request) (order.ID, bool) {
	orderID, err := order.ParseID(chi.URLParam(r, "order_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "order_id must be a valid uuid")
		return order.ID{}, false
	}
	return orderID, true
}

func parseFilterQuery(w http.ResponseWriter, r *http.Request) (application.FilterOrdersQuery, bool) {
	q := r.URL.Query()
	query := application.FilterOrdersQuery{OrderNumber: q.Get("order_number")}

	for _, raw := range q["status"] {
		status, ok := order.ParseStatus(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "unknown status: "+raw)
			return application.FilterOrdersQuery{}, false
		}
		query.Statuses = append(query.Statuses, status)
	}

	page := pagination.PageRequest{}
	if raw := q.Get("page_index"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "page_index must be an integer")
			return application.FilterOrdersQuery{}, false
		}
		page.PageIndex = n
	}
	if raw := q.Get("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "page_size must be an integer")
			return application.FilterOrdersQuery{}, false
		}
		page.PageSize = n
	}
	if raw := q.Get("sort_by"); raw != "" {
		page.SortBy = strings.Split(raw, ",")
	}
	page.SortDesc = q.Get("sort_desc") == "true"

	query.Page = page
	return query, true
}
