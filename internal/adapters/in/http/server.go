// Package http exposes the fulfillment operations over an Echo HTTP API.
// The acting identity arrives in trusted X-Customer-Id / X-Customer-Role
// headers set by the upstream identity provider and is passed into commands
// explicitly; no ambient auth context is used.
package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerCustomerID   = "X-Customer-Id"
	headerCustomerRole = "X-Customer-Role"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is one requested line item in an order placement request.
type NewOrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image_url"`
}

// NewOrderRequest is the body of POST /api/v1/orders.
type NewOrderRequest struct {
	Items   []NewOrderItem `json:"items"`
	Payment struct {
		Method        string  `json:"method"`
		TransactionID string  `json:"transaction_id"`
		Amount        float64 `json:"amount"`
	} `json:"payment"`
	Cost struct {
		ItemCost     float64 `json:"item_cost"`
		TaxCost      float64 `json:"tax_cost"`
		ShippingCost float64 `json:"shipping_cost"`
		TotalCost    float64 `json:"total_cost"`
	} `json:"cost"`
}

// ChangeStatusRequest is the body of POST /api/v1/orders/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse is one line item in an order history response.
type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image_url,omitempty"`
}

// OrderResponse is one order in the customer's order history.
type OrderResponse struct {
	ID           string              `json:"id"`
	Status       string              `json:"status"`
	ItemCost     float64             `json:"item_cost"`
	TaxCost      float64             `json:"tax_cost"`
	ShippingCost float64             `json:"shipping_cost"`
	TotalCost    float64             `json:"total_cost"`
	CreatedAt    string              `json:"created_at"`
	DeliveredAt  *string             `json:"delivered_at,omitempty"`
	Items        []OrderItemResponse `json:"items"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler        commands.PlaceOrderCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		deleteOrderHandler:       deleteOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
	}
}

// RegisterRoutes attaches the fulfillment routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetOrders)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
}

// PlaceOrder handles POST /api/v1/orders - places a new order for the
// calling customer, snapshotting their stored shipping address.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	customerID, _, err := identity(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing or invalid identity headers")
	}

	var request NewOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	items := make([]order.LineItem, 0, len(request.Items))
	for _, reqItem := range request.Items {
		productID, idErr := kernel.UUIDFromString(reqItem.ProductID)
		if idErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid product id: "+reqItem.ProductID)
		}

		item, itemErr := order.NewLineItem(
			productID, reqItem.Name, reqItem.UnitPrice, reqItem.Quantity, reqItem.ImageURL,
		)
		if itemErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid line item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	cost, err := order.NewCostInfo(
		request.Cost.ItemCost, request.Cost.TaxCost, request.Cost.ShippingCost, request.Cost.TotalCost,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid cost breakdown: "+err.Error())
	}

	payment := order.NewPaymentInfo(
		request.Payment.Method, order.PaymentStatusPending, request.Payment.TransactionID,
		request.Payment.Amount, nil,
	)

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, items, payment, cost)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainErrorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrders handles GET /api/v1/orders - retrieves the calling customer's orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	customerID, _, err := identity(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing or invalid identity headers")
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid customer id")
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		items := make([]OrderItemResponse, len(o.Items))
		for j, item := range o.Items {
			items[j] = OrderItemResponse{
				ProductID: item.ProductID.String(),
				Name:      item.Name,
				UnitPrice: item.UnitPrice,
				Quantity:  item.Quantity,
				ImageURL:  item.ImageURL,
			}
		}

		var deliveredAt *string
		if o.DeliveredAt != nil {
			formatted := o.DeliveredAt.UTC().Format(time.RFC3339)
			deliveredAt = &formatted
		}

		response[i] = OrderResponse{
			ID:           o.ID.String(),
			Status:       o.Status,
			ItemCost:     o.ItemCost,
			TaxCost:      o.TaxCost,
			ShippingCost: o.ShippingCost,
			TotalCost:    o.TotalCost,
			CreatedAt:    o.CreatedAt.UTC().Format(time.RFC3339),
			DeliveredAt:  deliveredAt,
			Items:        items,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteOrder handles DELETE /api/v1/orders/:id - deletes an order.
// The owner and admins may delete; stock is never restored.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	customerID, role, err := identity(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing or invalid identity headers")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, customerID, role)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainErrorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status - moves an order
// to a new fulfillment status. Admin only; shipping decrements stock.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	_, role, err := identity(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing or invalid identity headers")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var request ChangeStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status: "+request.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status, role)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainErrorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"id":     orderID.String(),
		"status": status.String(),
	})
}

// identity reads the trusted identity headers set by the upstream gateway.
func identity(ctx echo.Context) (kernel.UUID, string, error) {
	customerID, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerCustomerID))
	if err != nil {
		return kernel.UUID{}, "", err
	}

	role := ctx.Request().Header.Get(headerCustomerRole)
	if role == "" {
		return kernel.UUID{}, "", errs.NewValueIsRequiredError("role")
	}

	return customerID, role, nil
}

// domainErrorJSON maps failures from the command layer onto HTTP statuses.
func domainErrorJSON(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrActorNotAllowed):
		return errorJSON(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInsufficientStock):
		return errorJSON(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrIllegalTransition):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
