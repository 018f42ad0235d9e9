package http

import (
	"errors"
	"net/http"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/services"
	"ecommerce/internal/core/ports"
	"ecommerce/internal/generated/servers"
	"ecommerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases, and
// dispatches the notification effects of committed mutations.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	updateOrderStatusHandler    commands.UpdateOrderStatusCommandHandler
	requestReturnHandler        commands.RequestReturnCommandHandler
	cancelReturnHandler         commands.CancelReturnCommandHandler
	updateReturnTrackingHandler commands.UpdateReturnTrackingCommandHandler
	issueRefundHandler          commands.IssueRefundCommandHandler
	purgeOrderHandler           commands.PurgeOrderCommandHandler
	createProductHandler        commands.CreateProductCommandHandler
	restockProductHandler       commands.RestockProductCommandHandler
	updateShippingConfigHandler commands.UpdateShippingConfigCommandHandler
	updateTaxTableHandler       commands.UpdateTaxTableCommandHandler

	// Query handlers
	getUserOrdersHandler     queries.GetUserOrdersQueryHandler
	getReturnedOrdersHandler queries.GetReturnedOrdersQueryHandler
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler
	quoteOrderHandler        queries.QuoteOrderQueryHandler

	dispatcher ports.NotificationDispatcher
	classifier services.CarrierClassifier
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	requestReturnHandler commands.RequestReturnCommandHandler,
	cancelReturnHandler commands.CancelReturnCommandHandler,
	updateReturnTrackingHandler commands.UpdateReturnTrackingCommandHandler,
	issueRefundHandler commands.IssueRefundCommandHandler,
	purgeOrderHandler commands.PurgeOrderCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	restockProductHandler commands.RestockProductCommandHandler,
	updateShippingConfigHandler commands.UpdateShippingConfigCommandHandler,
	updateTaxTableHandler commands.UpdateTaxTableCommandHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getReturnedOrdersHandler queries.GetReturnedOrdersQueryHandler,
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler,
	quoteOrderHandler queries.QuoteOrderQueryHandler,
	dispatcher ports.NotificationDispatcher,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		requestReturnHandler:        requestReturnHandler,
		cancelReturnHandler:         cancelReturnHandler,
		updateReturnTrackingHandler: updateReturnTrackingHandler,
		issueRefundHandler:          issueRefundHandler,
		purgeOrderHandler:           purgeOrderHandler,
		createProductHandler:        createProductHandler,
		restockProductHandler:       restockProductHandler,
		updateShippingConfigHandler: updateShippingConfigHandler,
		updateTaxTableHandler:       updateTaxTableHandler,

		getUserOrdersHandler:     getUserOrdersHandler,
		getReturnedOrdersHandler: getReturnedOrdersHandler,
		getDashboardStatsHandler: getDashboardStatsHandler,
		quoteOrderHandler:        quoteOrderHandler,

		dispatcher: dispatcher,
		classifier: services.NewCarrierClassifier(),
	}
}

// errorResponse maps application errors onto HTTP statuses and writes
// the error body. Conflicts surface as 409 only after the handlers have
// exhausted their internal retries.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInsufficientStock):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromBytes(newOrder.UserId[:])
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	items := make([]commands.OrderItem, 0, len(newOrder.Items))
	for _, item := range newOrder.Items {
		productID, idErr := kernel.UUIDFromBytes(item.ProductId[:])
		if idErr != nil {
			return badRequest(ctx, "Invalid product id: "+idErr.Error())
		}
		orderItem, itemErr := commands.NewOrderItem(productID, item.Quantity)
		if itemErr != nil {
			return badRequest(ctx, "Invalid cart item: "+itemErr.Error())
		}
		items = append(items, orderItem)
	}

	address, err := kernel.NewAddress(
		newOrder.Address.Street,
		newOrder.Address.City,
		newOrder.Address.State,
		newOrder.Address.PostalCode,
		newOrder.Address.Country,
	)
	if err != nil {
		return badRequest(ctx, "Invalid address: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, userID, items, address,
		newOrder.PaymentMethod, newOrder.PaymentRef,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	notifications, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}
	s.dispatcher.Dispatch(ctx.Request().Context(), notifications)

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// GetUserOrders handles GET /api/v1/orders - retrieves a customer's order history.
func (s *Server) GetUserOrders(ctx echo.Context, params servers.GetUserOrdersParams) error {
	userID, err := kernel.UUIDFromBytes(params.UserId[:])
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.OrderSummary, len(orders))
	for i, o := range orders {
		var trackingURL *string
		if o.TrackingNumber != "" {
			trackingURL = optional(s.classifier.TrackingURL(o.TrackingNumber, o.Carrier))
		}

		response[i] = servers.OrderSummary{
			Id:             o.ID.Bytes(),
			Status:         o.Status.String(),
			PaymentStatus:  o.PaymentStatus.String(),
			ReturnStatus:   o.ReturnStatus.String(),
			Total:          o.Total.String(),
			TrackingNumber: optional(o.TrackingNumber),
			Carrier:        optional(o.Carrier),
			TrackingUrl:    trackingURL,
			CreatedAt:      o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// QuoteOrder handles POST /api/v1/orders/quote - prices a basket without
// reserving stock or persisting anything.
func (s *Server) QuoteOrder(ctx echo.Context) error {
	var request servers.QuoteRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]queries.QuoteOrderItem, 0, len(request.Items))
	for _, item := range request.Items {
		productID, idErr := kernel.UUIDFromBytes(item.ProductId[:])
		if idErr != nil {
			return badRequest(ctx, "Invalid product id: "+idErr.Error())
		}
		quoteItem, itemErr := queries.NewQuoteOrderItem(productID, item.Quantity)
		if itemErr != nil {
			return badRequest(ctx, "Invalid basket item: "+itemErr.Error())
		}
		items = append(items, quoteItem)
	}

	query, err := queries.NewQuoteOrderQuery(items, request.State, request.PostalCode)
	if err != nil {
		return badRequest(ctx, "Invalid quote request: "+err.Error())
	}

	quote, err := s.quoteOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Quote{
		Subtotal: quote.Subtotal.String(),
		TaxRate:  quote.TaxRate.String(),
		Tax:      quote.Tax.String(),
		Shipping: quote.Shipping.String(),
		Total:    quote.Total.String(),
	})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status - updates
// an order's lifecycle fields.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var update servers.StatusUpdate
	if err := ctx.Bind(&update); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var status *order.Status
	if update.Status != nil {
		parsed, parseErr := order.StatusFromString(*update.Status)
		if parseErr != nil {
			return badRequest(ctx, "Invalid status: "+parseErr.Error())
		}
		status = &parsed
	}

	var paymentStatus *order.PaymentStatus
	if update.PaymentStatus != nil {
		parsed, parseErr := order.PaymentStatusFromString(*update.PaymentStatus)
		if parseErr != nil {
			return badRequest(ctx, "Invalid payment status: "+parseErr.Error())
		}
		paymentStatus = &parsed
	}

	trackingNumber := ""
	if update.TrackingNumber != nil {
		trackingNumber = *update.TrackingNumber
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, paymentStatus, trackingNumber)
	if err != nil {
		return badRequest(ctx, "Invalid update: "+err.Error())
	}

	notifications, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}
	s.dispatcher.Dispatch(ctx.Request().Context(), notifications)

	return ctx.NoContent(http.StatusNoContent)
}

// RequestReturn handles POST /api/v1/orders/{orderId}/return - opens a
// return for a delivered order.
func (s *Server) RequestReturn(ctx echo.Context, orderId openapi_types.UUID) error {
	var request servers.ReturnRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}
	requesterID, err := kernel.UUIDFromBytes(request.UserId[:])
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	cmd, err := commands.NewRequestReturnCommand(orderID, requesterID)
	if err != nil {
		return badRequest(ctx, "Invalid return request: "+err.Error())
	}

	notifications, err := s.requestReturnHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}
	s.dispatcher.Dispatch(ctx.Request().Context(), notifications)

	return ctx.NoContent(http.StatusNoContent)
}

// CancelReturn handles POST /api/v1/orders/{orderId}/return/cancel -
// cancels an active return and restores the order to delivered.
func (s *Server) CancelReturn(ctx echo.Context, orderId openapi_types.UUID) error {
	var request servers.ReturnRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}
	requesterID, err := kernel.UUIDFromBytes(request.UserId[:])
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	cmd, err := commands.NewCancelReturnCommand(orderID, requesterID)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation: "+err.Error())
	}

	notifications, err := s.cancelReturnHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}
	s.dispatcher.Dispatch(ctx.Request().Context(), notifications)

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateReturnTracking handles PATCH /api/v1/orders/{orderId}/return -
// records return shipment progress.
func (s *Server) UpdateReturnTracking(ctx echo.Context, orderId openapi_types.UUID) error {
	var update servers.ReturnTrackingUpdate
	if err := ctx.Bind(&update); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var returnStatus *order.ReturnStatus
	if update.ReturnStatus != nil {
		parsed, parseErr := order.ReturnStatusFromString(*update.ReturnStatus)
		if parseErr != nil {
			return badRequest(ctx, "Invalid return status: "+parseErr.Error())
		}
		returnStatus = &parsed
	}

	trackingNumber := ""
	if update.TrackingNumber != nil {
		trackingNumber = *update.TrackingNumber
	}

	cmd, err := commands.NewUpdateReturnTrackingCommand(orderID, trackingNumber, returnStatus)
	if err != nil {
		return badRequest(ctx, "Invalid update: "+err.Error())
	}

	notifications, err := s.updateReturnTrackingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}
	s.dispatcher.Dispatch(ctx.Request().Context(), notifications)

	return ctx.NoContent(http.StatusNoContent)
}

// IssueRefund handles POST /api/v1/orders/{orderId}/refund - issues the
// refund for an order whose return reached the received stage.
func (s *Server) IssueRefund(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewIssueRefundCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid refund request: "+err.Error())
	}

	notifications, err := s.issueRefundHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}
	s.dispatcher.Dispatch(ctx.Request().Context(), notifications)

	return ctx.NoContent(http.StatusNoContent)
}

// PurgeOrder handles DELETE /api/v1/orders/{orderId} - removes an order record.
func (s *Server) PurgeOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewPurgeOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid purge request: "+err.Error())
	}

	if err := s.purgeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetReturnedOrders handles GET /api/v1/returns - retrieves all orders
// with an active return, oldest request first.
func (s *Server) GetReturnedOrders(ctx echo.Context) error {
	query := queries.NewGetReturnedOrdersQuery()

	returns, err := s.getReturnedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.ReturnSummary, len(returns))
	for i, r := range returns {
		response[i] = servers.ReturnSummary{
			Id:                   r.ID.Bytes(),
			UserId:               r.UserID.Bytes(),
			ReturnStatus:         r.ReturnStatus.String(),
			ReturnTrackingNumber: optional(r.ReturnTrackingNumber),
			ReturnCarrier:        optional(r.ReturnCarrier),
			ReturnRequestedAt:    r.ReturnRequestedAt,
			Total:                r.Total.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDashboardStats handles GET /api/v1/admin/stats - retrieves aggregate
// order statistics.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	query := queries.NewGetDashboardStatsQuery()

	stats, err := s.getDashboardStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	ordersByStatus := make(map[string]int, len(stats.OrdersByStatus))
	for status, count := range stats.OrdersByStatus {
		ordersByStatus[status.String()] = count
	}

	return ctx.JSON(http.StatusOK, servers.DashboardStats{
		OrdersByStatus: ordersByStatus,
		GrossRevenue:   stats.GrossRevenue.String(),
		Refunded:       stats.Refunded.String(),
	})
}

// CreateProduct handles POST /api/v1/products - adds a catalog product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var newProduct servers.NewProduct
	if err := ctx.Bind(&newProduct); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoneyFromString(newProduct.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), newProduct.Name, price, newProduct.Stock)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if err := s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RestockProduct handles POST /api/v1/products/{productId}/restock - adds
// stock to a catalog product.
func (s *Server) RestockProduct(ctx echo.Context, productId openapi_types.UUID) error {
	var restock servers.Restock
	if err := ctx.Bind(&restock); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	cmd, err := commands.NewRestockProductCommand(productID, restock.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid restock: "+err.Error())
	}

	if err := s.restockProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateShippingConfig handles PUT /api/v1/admin/shipping-config - replaces
// the shipping fee schedule.
func (s *Server) UpdateShippingConfig(ctx echo.Context) error {
	var config servers.ShippingConfig
	if err := ctx.Bind(&config); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cost, err := kernel.NewMoneyFromString(config.Cost)
	if err != nil {
		return badRequest(ctx, "Invalid cost: "+err.Error())
	}
	threshold, err := kernel.NewMoneyFromString(config.FreeShippingThreshold)
	if err != nil {
		return badRequest(ctx, "Invalid free shipping threshold: "+err.Error())
	}

	cmd, err := commands.NewUpdateShippingConfigCommand(cost, threshold)
	if err != nil {
		return badRequest(ctx, "Invalid shipping configuration: "+err.Error())
	}

	if err := s.updateShippingConfigHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateTaxTable handles PUT /api/v1/admin/tax-table - replaces the tax
// rate table.
func (s *Server) UpdateTaxTable(ctx echo.Context) error {
	var table servers.TaxTable
	if err := ctx.Bind(&table); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	byRegion, err := parseRates(table.ByRegion)
	if err != nil {
		return badRequest(ctx, "Invalid region rate: "+err.Error())
	}
	byPostalPrefix, err := parseRates(table.ByPostalPrefix)
	if err != nil {
		return badRequest(ctx, "Invalid postal prefix rate: "+err.Error())
	}
	defaultRate, err := decimal.NewFromString(table.DefaultRate)
	if err != nil {
		return badRequest(ctx, "Invalid default rate: "+err.Error())
	}

	cmd, err := commands.NewUpdateTaxTableCommand(byRegion, byPostalPrefix, defaultRate)
	if err != nil {
		return badRequest(ctx, "Invalid tax table: "+err.Error())
	}

	if err := s.updateTaxTableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func parseRates(rates *map[string]string) (map[string]decimal.Decimal, error) {
	if rates == nil {
		return nil, nil
	}

	parsed := make(map[string]decimal.Decimal, len(*rates))
	for key, value := range *rates {
		rate, err := decimal.NewFromString(value)
		if err != nil {
			return nil, err
		}
		parsed[key] = rate
	}
	return parsed, nil
}
