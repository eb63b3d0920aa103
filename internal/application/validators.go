package application

import (
	"fmt"

	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/mediator"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/pagination"
)

const maxOrderNumberLength = 12

func validateCreateOrder(cmd CreateOrderCommand) []mediator.FieldFailure {
	var failures []mediator.FieldFailure
	for i, item := range cmd.Items {
		field := fmt.Sprintf("items[%d]", i)
		if item.ProductName == "" {
			failures = append(failures, mediator.FieldFailure{
				Field: field + ".product_name", Code: "order.item.productNameRequired", Message: "product name is required",
			})
		}
		if item.Quantity < 1 {
			failures = append(failures, mediator.FieldFailure{
				Field: field + ".quantity", Code: "order.item.quantityPositive", Message: "quantity must be at least 1",
			})
		}
		if item.Price < 0 {
			failures = append(failures, mediator.FieldFailure{
				Field: field + ".price", Code: "order.item.priceNonNegative", Message: "price cannot be negative",
			})
		}
	}
	return failures
}

func validateSubmitOrder(cmd SubmitOrderCommand) []mediator.FieldFailure {
	return requireOrderID(cmd.OrderID.IsZero())
}

func validateDeleteOrder(cmd DeleteOrderCommand) []mediator.FieldFailure {
	return requireOrderID(cmd.OrderID.IsZero())
}

func validateGetOrder(query GetOrderByIDQuery) []mediator.FieldFailure {
	return requireOrderID(query.OrderID.IsZero())
}

func requireOrderID(zero bool) []mediator.FieldFailure {
	if !zero {
		return nil
	}
	return []mediator.FieldFailure{{
		Field: "order_id", Code: "order.idRequired", Message: "order id is required",
	}}
}

func validateFilterOrders(query FilterOrdersQuery) []mediator.FieldFailure {
	var failures []mediator.FieldFailure
	if len(query.OrderNumber) > maxOrderNumberLength {
		failures = append(failures, mediator.FieldFailure{
			Field: "order_number", Code: "order.orderNumberMaxLength",
			Message: fmt.Sprintf("order number cannot exceed %d characters", maxOrderNumberLength),
		})
	}
	if query.Page.PageIndex < 0 {
		failures = append(failures, mediator.FieldFailure{
			Field: "page_index", Code: "page.indexNonNegative", Message: "page index cannot be negative",
		})
	}
	if query.Page.PageSize > pagination.MaxPageSize {
		failures = append(failures, mediator.FieldFailure{
			Field: "page_size", Code: "page.sizeMax",
			Message: fmt.Sprintf("page size cannot exceed %d", pagination.MaxPageSize),
		})
	}
	for _, sortField := range query.Page.SortBy {
		switch sortField {
		case "id", "orderNumber", "status":
		default:
			failures = append(failures, mediator.FieldFailure{
				Field: "sort_by", Code: "page.sortFieldUnknown", Message: "unknown sort field: " + sortField,
			})
		}
	}
	return failures
}
