// Package http exposes the application over echo. Handlers translate
// between boundary JSON and commands/queries; no business rules live here.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	echoswagger "github.com/swaggo/echo-swagger"

	"shipments/internal/adapters/out/pdf"
	"shipments/internal/core/application/usecases/commands"
	"shipments/internal/core/application/usecases/queries"
	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/domain/model/user"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createShipmentHandler    commands.CreateShipmentCommandHandler
	updateShipmentHandler    commands.UpdateShipmentCommandHandler
	deleteShipmentHandler    commands.DeleteShipmentCommandHandler
	duplicateShipmentHandler commands.DuplicateShipmentCommandHandler
	addStatusUpdateHandler   commands.AddStatusUpdateCommandHandler
	createUserHandler        commands.CreateUserCommandHandler
	updateUserHandler        commands.UpdateUserCommandHandler
	deleteUserHandler        commands.DeleteUserCommandHandler
	changePasswordHandler    commands.ChangePasswordCommandHandler

	getShipmentsHandler     queries.GetShipmentsQueryHandler
	getShipmentHandler      queries.GetShipmentQueryHandler
	trackShipmentHandler    queries.TrackShipmentQueryHandler
	getStatusHistoryHandler queries.GetStatusHistoryQueryHandler
	getUsersHandler         queries.GetUsersQueryHandler
	getUserHandler          queries.GetUserQueryHandler

	uowFactory ports.UnitOfWorkFactory
	tokens     *TokenService
	invoices   *pdf.InvoiceRenderer
}

// NewServer creates the HTTP server with its use case handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentCommandHandler,
	deleteShipmentHandler commands.DeleteShipmentCommandHandler,
	duplicateShipmentHandler commands.DuplicateShipmentCommandHandler,
	addStatusUpdateHandler commands.AddStatusUpdateCommandHandler,
	createUserHandler commands.CreateUserCommandHandler,
	updateUserHandler commands.UpdateUserCommandHandler,
	deleteUserHandler commands.DeleteUserCommandHandler,
	changePasswordHandler commands.ChangePasswordCommandHandler,
	getShipmentsHandler queries.GetShipmentsQueryHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	trackShipmentHandler queries.TrackShipmentQueryHandler,
	getStatusHistoryHandler queries.GetStatusHistoryQueryHandler,
	getUsersHandler queries.GetUsersQueryHandler,
	getUserHandler queries.GetUserQueryHandler,
	uowFactory ports.UnitOfWorkFactory,
	tokens *TokenService,
	invoices *pdf.InvoiceRenderer,
) *Server {
	return &Server{
		createShipmentHandler:    createShipmentHandler,
		updateShipmentHandler:    updateShipmentHandler,
		deleteShipmentHandler:    deleteShipmentHandler,
		duplicateShipmentHandler: duplicateShipmentHandler,
		addStatusUpdateHandler:   addStatusUpdateHandler,
		createUserHandler:        createUserHandler,
		updateUserHandler:        updateUserHandler,
		deleteUserHandler:        deleteUserHandler,
		changePasswordHandler:    changePasswordHandler,
		getShipmentsHandler:      getShipmentsHandler,
		getShipmentHandler:       getShipmentHandler,
		trackShipmentHandler:     trackShipmentHandler,
		getStatusHistoryHandler:  getStatusHistoryHandler,
		getUsersHandler:          getUsersHandler,
		getUserHandler:           getUserHandler,
		uowFactory:               uowFactory,
		tokens:                   tokens,
		invoices:                 invoices,
	}
}

// RegisterRoutes wires all routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/api/health", s.Health)
	e.GET("/swagger/*", echoswagger.WrapHandler)
	e.POST("/api/auth/login", s.Login)

	authed := e.Group("/api", AuthMiddleware(s.tokens))
	authed.GET("/auth/profile", s.Profile)

	authed.GET("/shipments", s.GetShipments)
	authed.GET("/shipments/track/:trackingNumber", s.TrackShipment)
	authed.GET("/shipments/:id", s.GetShipment)
	authed.GET("/shipments/:id/status-history", s.GetStatusHistory)
	authed.GET("/shipments/:id/download-invoice", s.DownloadInvoice)

	staff := RequireRoles(user.RoleAdmin, user.RoleOperator)
	authed.POST("/shipments", s.CreateShipment, staff)
	authed.PUT("/shipments/:id", s.UpdateShipment, staff)
	authed.POST("/shipments/:id/duplicate", s.DuplicateShipment, staff)
	authed.POST("/shipments/:id/status", s.AddStatusUpdate, staff)

	admin := RequireRoles(user.RoleAdmin)
	authed.DELETE("/shipments/:id", s.DeleteShipment, admin)
	authed.GET("/users", s.GetUsers, admin)
	authed.GET("/users/:id", s.GetUser, admin)
	authed.POST("/users", s.CreateUser, admin)
	authed.PUT("/users/:id", s.UpdateUser, admin)
	authed.DELETE("/users/:id", s.DeleteUser, admin)
	authed.PATCH("/users/:id/password", s.ChangePassword, admin)
}

// Health handles GET /api/health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// Login handles POST /api/auth/login. Inactive accounts are rejected with
// the same status as bad credentials.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	repo := s.uowFactory.Create().UserRepository()
	account, err := repo.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return writeStatus(c, http.StatusUnauthorized, "invalid email or password")
		}
		return writeError(c, err)
	}

	if err = account.CheckPassword(req.Password); err != nil {
		return writeStatus(c, http.StatusUnauthorized, "invalid email or password")
	}
	if !account.IsActive() {
		return writeStatus(c, http.StatusUnauthorized, "account is deactivated")
	}

	token, err := s.tokens.Issue(account)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		User:  userFromDomain(account),
	})
}

// Profile handles GET /api/auth/profile.
func (s *Server) Profile(c echo.Context) error {
	userID, err := kernel.UUIDFromString(actingUserID(c))
	if err != nil {
		return writeStatus(c, http.StatusUnauthorized, "invalid or expired token")
	}

	query, err := queries.NewGetUserQuery(userID)
	if err != nil {
		return writeError(c, err)
	}

	account, err := s.getUserHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, userFromReadModel(account))
}

// GetShipments handles GET /api/shipments with filters and pagination.
func (s *Server) GetShipments(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	filter, err := parseShipmentFilter(c)
	if err != nil {
		return writeStatus(c, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewGetShipmentsQuery(page, limit, filter)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.getShipmentsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	items := make([]shipmentResponse, 0, len(result.Shipments))
	for _, m := range result.Shipments {
		items = append(items, shipmentFromReadModel(m))
	}

	return c.JSON(http.StatusOK, shipmentListResponse{
		Shipments: items,
		Pagination: paginationResponse{
			Total:      result.Pagination.Total,
			Page:       result.Pagination.Page,
			Limit:      result.Pagination.Limit,
			TotalPages: result.Pagination.TotalPages,
		},
	})
}

// GetShipment handles GET /api/shipments/:id.
func (s *Server) GetShipment(c echo.Context) error {
	shipmentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.getShipmentHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, shipmentFromReadModel(result))
}

// TrackShipment handles GET /api/shipments/track/:trackingNumber.
func (s *Server) TrackShipment(c echo.Context) error {
	trackingNumber, err := shipment.TrackingNumberFromString(c.Param("trackingNumber"))
	if err != nil {
		return writeStatus(c, http.StatusBadRequest, "invalid tracking number")
	}

	query, err := queries.NewTrackShipmentQuery(trackingNumber)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.trackShipmentHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	history := make([]historyEntryResponse, 0, len(result.History))
	for _, entry := range result.History {
		history = append(history, historyFromReadModel(entry))
	}

	return c.JSON(http.StatusOK, trackingResponse{
		Shipment: shipmentFromReadModel(result.Shipment),
		History:  history,
	})
}

// GetStatusHistory handles GET /api/shipments/:id/status-history.
func (s *Server) GetStatusHistory(c echo.Context) error {
	shipmentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetStatusHistoryQuery(shipmentID)
	if err != nil {
		return writeError(c, err)
	}

	entries, err := s.getStatusHistoryHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	history := make([]historyEntryResponse, 0, len(entries))
	for _, entry := range entries {
		history = append(history, historyFromReadModel(entry))
	}

	return c.JSON(http.StatusOK, history)
}

// DownloadInvoice handles GET /api/shipments/:id/download-invoice.
func (s *Server) DownloadInvoice(c echo.Context) error {
	shipmentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.getShipmentHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	document, err := s.invoices.Render(result)
	if err != nil {
		return writeError(c, err)
	}

	c.Response().Header().Set(
		echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, result.TrackingNumber),
	)
	return c.Blob(http.StatusOK, "application/pdf", document)
}

// CreateShipment handles POST /api/shipments.
func (s *Server) CreateShipment(c echo.Context) error {
	var req createShipmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	actingUser, err := kernel.UUIDFromString(actingUserID(c))
	if err != nil {
		return writeStatus(c, http.StatusUnauthorized, "invalid or expired token")
	}

	cmd, err := commands.NewCreateShipmentCommand(req.toData(), actingUser)
	if err != nil {
		return writeError(c, err)
	}

	created, err := s.createShipmentHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, shipmentFromDomain(created))
}

// UpdateShipment handles PUT /api/shipments/:id.
func (s *Server) UpdateShipment(c echo.Context) error {
	shipmentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateShipmentRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	actingUser, err := kernel.UUIDFromString(actingUserID(c))
	if err != nil {
		return writeStatus(c, http.StatusUnauthorized, "invalid or expired token")
	}

	cmd, err := commands.NewUpdateShipmentCommand(shipmentID, req.toUpdateData(), actingUser)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.updateShipmentHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, shipmentFromDomain(updated))
}

// DeleteShipment handles DELETE /api/shipments/:id.
func (s *Server) DeleteShipment(c echo.Context) error {
	shipmentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteShipmentCommand(shipmentID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.deleteShipmentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DuplicateShipment handles POST /api/shipments/:id/duplicate.
func (s *Server) DuplicateShipment(c echo.Context) error {
	shipmentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req duplicateShipmentRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	actingUser, err := kernel.UUIDFromString(actingUserID(c))
	if err != nil {
		return writeStatus(c, http.StatusUnauthorized, "invalid or expired token")
	}

	cmd, err := commands.NewDuplicateShipmentCommand(
		shipmentID, shipment.InvoiceType(req.InvoiceType), actingUser,
	)
	if err != nil {
		return writeError(c, err)
	}

	duplicated, err := s.duplicateShipmentHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, shipmentFromDomain(duplicated))
}

// AddStatusUpdate handles POST /api/shipments/:id/status.
func (s *Server) AddStatusUpdate(c echo.Context) error {
	shipmentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req addStatusRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	actingUser, err := kernel.UUIDFromString(actingUserID(c))
	if err != nil {
		return writeStatus(c, http.StatusUnauthorized, "invalid or expired token")
	}

	cmd, err := commands.NewAddStatusUpdateCommand(
		shipmentID, shipment.Status(req.Status), req.Location, req.Notes, actingUser,
	)
	if err != nil {
		return writeError(c, err)
	}

	entry, err := s.addStatusUpdateHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, historyFromDomain(entry))
}

// GetUsers handles GET /api/users.
func (s *Server) GetUsers(c echo.Context) error {
	accounts, err := s.getUsersHandler.Handle(c.Request().Context(), queries.NewGetUsersQuery())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]userResponse, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, userFromReadModel(account))
	}

	return c.JSON(http.StatusOK, response)
}

// GetUser handles GET /api/users/:id.
func (s *Server) GetUser(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetUserQuery(userID)
	if err != nil {
		return writeError(c, err)
	}

	account, err := s.getUserHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, userFromReadModel(account))
}

// CreateUser handles POST /api/users.
func (s *Server) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateUserCommand(
		req.Email, req.Password, req.FullName, req.Phone, user.Role(req.Role),
	)
	if err != nil {
		return writeError(c, err)
	}

	created, err := s.createUserHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, userFromDomain(created))
}

// UpdateUser handles PUT /api/users/:id.
func (s *Server) UpdateUser(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateUserCommand(userID, req.toUpdateData())
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.updateUserHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, userFromDomain(updated))
}

// DeleteUser handles DELETE /api/users/:id.
func (s *Server) DeleteUser(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	actingUser, err := kernel.UUIDFromString(actingUserID(c))
	if err != nil {
		return writeStatus(c, http.StatusUnauthorized, "invalid or expired token")
	}

	cmd, err := commands.NewDeleteUserCommand(userID, actingUser)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.deleteUserHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ChangePassword handles PATCH /api/users/:id/password.
func (s *Server) ChangePassword(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewChangePasswordCommand(userID, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.changePasswordHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return writeStatus(c, http.StatusBadRequest, "invalid request body")
	}
	return c.Validate(req)
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, writeStatus(c, http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// parseShipmentFilter reads the listing filters from the query string.
// Dates accept 2006-01-02 or RFC 3339; the end date is inclusive.
func parseShipmentFilter(c echo.Context) (queries.ShipmentFilter, error) {
	var filter queries.ShipmentFilter

	if raw := c.QueryParam("status"); raw != "" {
		status := shipment.Status(raw)
		filter.Status = &status
	}
	if raw := c.QueryParam("service"); raw != "" {
		service := shipment.ServiceType(raw)
		filter.Service = &service
	}
	if raw := c.QueryParam("destination"); raw != "" {
		filter.Destination = &raw
	}

	if raw := c.QueryParam("startDate"); raw != "" {
		from, err := parseDate(raw)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &from
	}
	if raw := c.QueryParam("endDate"); raw != "" {
		to, err := parseDate(raw)
		if err != nil {
			return filter, err
		}
		// day-granular end dates cover the whole day
		if to.Hour() == 0 && to.Minute() == 0 && to.Second() == 0 {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		filter.EndDate = &to
	}

	return filter, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", raw)
	}
	return t, nil
}

func writeStatus(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Code: status, Message: message})
}

// writeError maps application errors onto HTTP statuses. Internal failures
// never leak their message to the client.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeStatus(c, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, commands.ErrCannotDeleteSelf):
		return writeStatus(c, http.StatusConflict, err.Error())
	case errors.Is(err, shipment.ErrNoFieldsToUpdate),
		errors.Is(err, user.ErrPasswordTooShort),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeStatus(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		return writeStatus(c, http.StatusUnauthorized, err.Error())
	default:
		return writeStatus(c, http.StatusInternalServerError, "internal server error")
	}
}
