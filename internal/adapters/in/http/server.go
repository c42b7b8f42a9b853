package http

import (
	"context"
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/services"
	"ordering/internal/generated/servers"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	log "github.com/sirupsen/logrus"
)

type CreateCustomerHandler interface {
	Handle(ctx context.Context, cmd commands.CreateCustomerCommand) (*customer.Customer, error)
}

type CreateProductHandler interface {
	Handle(ctx context.Context, cmd commands.CreateProductCommand) (*product.Product, error)
}

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
}

type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
}

type ListProductsHandler interface {
	Handle(ctx context.Context, query queries.ListProductsQuery) ([]queries.ProductQueryResponse, error)
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler CreateCustomerHandler
	createProductHandler  CreateProductHandler
	createOrderHandler    CreateOrderHandler

	// Query handlers
	getOrderHandler     GetOrderHandler
	listProductsHandler ListProductsHandler

	logger *log.Entry
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCustomerHandler CreateCustomerHandler,
	createProductHandler CreateProductHandler,
	createOrderHandler CreateOrderHandler,
	getOrderHandler GetOrderHandler,
	listProductsHandler ListProductsHandler,
	logger *log.Entry,
) *Server {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &Server{
		createCustomerHandler: createCustomerHandler,
		createProductHandler:  createProductHandler,
		createOrderHandler:    createOrderHandler,
		getOrderHandler:       getOrderHandler,
		listProductsHandler:   listProductsHandler,
		logger:                logger.WithField("component", "http"),
	}
}

// CreateCustomer handles POST /api/v1/customers - registers a customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body servers.NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(body.Name, string(body.Email))
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	created, err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create customer")
	}

	return ctx.JSON(http.StatusCreated, servers.Customer{
		Id:    created.ID().Bytes(),
		Name:  created.Name(),
		Email: openapi_types.Email(created.Email()),
	})
}

// CreateProduct handles POST /api/v1/products - adds a product to the catalog.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.NewProduct
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.MoneyFromString(body.Price)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	cmd, err := commands.NewCreateProductCommand(body.Name, price, body.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create product")
	}

	return ctx.JSON(http.StatusCreated, servers.Product{
		Id:       created.ID().Bytes(),
		Name:     created.Name(),
		Price:    created.Price().String(),
		Quantity: created.Quantity(),
	})
}

// ListProducts handles GET /api/v1/products - lists the catalog.
func (s *Server) ListProducts(ctx echo.Context) error {
	found, err := s.listProductsHandler.Handle(ctx.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve products")
	}

	response := make([]servers.Product, len(found))
	for i, p := range found {
		response[i] = servers.Product{
			Id:       p.ID.Bytes(),
			Name:     p.Name,
			Price:    p.Price.String(),
			Quantity: p.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places an order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := newCreateOrderCommand(body)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(placed))
}

// GetOrder handles GET /api/v1/orders/{orderId} - returns one order.
func (s *Server) GetOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve order")
	}

	lines := make([]servers.OrderLine, len(found.Lines))
	for i, line := range found.Lines {
		lines[i] = servers.OrderLine{
			ProductId: line.ProductID.Bytes(),
			Quantity:  line.Quantity,
			Price:     line.UnitPrice.String(),
		}
	}

	return ctx.JSON(http.StatusOK, servers.Order{
		Id:         found.ID.Bytes(),
		CustomerId: found.CustomerID.Bytes(),
		CreatedAt:  found.CreatedAt,
		Total:      found.Total.String(),
		Products:   lines,
	})
}

func newCreateOrderCommand(body servers.NewOrder) (commands.CreateOrderCommand, error) {
	customerID, err := kernel.UUIDFromBytes(body.CustomerId[:])
	if err != nil {
		return commands.CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("customer_id", err)
	}

	items := make([]services.RequestedItem, 0, len(body.Products))
	for _, requested := range body.Products {
		productID, err := kernel.UUIDFromBytes(requested.Id[:])
		if err != nil {
			return commands.CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("products.id", err)
		}
		items = append(items, services.RequestedItem{ProductID: productID, Quantity: requested.Quantity})
	}

	return commands.NewCreateOrderCommand(customerID, items)
}

func orderFromDomain(o *order.Order) servers.Order {
	lines := make([]servers.OrderLine, len(o.Lines()))
	for i, line := range o.Lines() {
		lines[i] = servers.OrderLine{
			ProductId: line.ProductID().Bytes(),
			Quantity:  line.Quantity(),
			Price:     line.UnitPrice().String(),
		}
	}

	return servers.Order{
		Id:         o.ID().Bytes(),
		CustomerId: o.CustomerID().Bytes(),
		CreatedAt:  o.CreatedAt(),
		Total:      o.Total().String(),
		Products:   lines,
	}
}

// fail maps a use case error to a response. Business rule errors carry a
// message meant for the client; anything unexpected is logged and hidden.
func (s *Server) fail(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrBusinessRule):
		return badRequest(ctx, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, "Not found")
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return writeError(ctx, http.StatusConflict, "Concurrent update, retry the request")
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrDuplicateProduct):
		return badRequest(ctx, err.Error())
	}

	s.logger.WithError(err).
		WithField("path", ctx.Path()).
		Error(fallback)
	return writeError(ctx, http.StatusInternalServerError, fallback)
}

func badRequest(ctx echo.Context, message string) error {
	return writeError(ctx, http.StatusBadRequest, message)
}

func writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}
