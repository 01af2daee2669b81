package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finmex/onboarding_backend/internal/core/domain"
	portssvc "github.com/finmex/onboarding_backend/internal/core/ports/services"
	"github.com/finmex/onboarding_backend/internal/dto"
	"github.com/finmex/onboarding_backend/internal/middleware"
	"github.com/finmex/onboarding_backend/internal/utils/pagination"
)

// clientHandler handles HTTP requests for clients and their income history.
type clientHandler struct {
	clientService   portssvc.ClientSvcFacade
	incomeService   portssvc.IncomeSvcFacade
	documentService portssvc.DocumentSvcFacade
}

func newClientHandler(cs portssvc.ClientSvcFacade, is portssvc.IncomeSvcFacade, ds portssvc.DocumentSvcFacade) *clientHandler {
	return &clientHandler{clientService: cs, incomeService: is, documentService: ds}
}

// registerClientRoutes registers client, income and completeness routes.
func registerClientRoutes(rg *gin.RouterGroup, cs portssvc.ClientSvcFacade, is portssvc.IncomeSvcFacade, ds portssvc.DocumentSvcFacade) {
	h := newClientHandler(cs, is, ds)

	clients := rg.Group("/clientes")
	{
		clients.POST("", h.registerClient)
		clients.GET("", h.listClients)
		clients.GET("/:id", h.getClient)
		clients.PATCH("/:id/status", middleware.RequireRoles(string(domain.RoleAdmin)), h.updateClientStatus)

		clients.POST("/:id/ingresos", h.recordIncome)
		clients.GET("/:id/ingresos", h.listIncomes)
		clients.GET("/:id/ingresos/ultimo", h.getLatestIncome)

		clients.GET("/:id/completitud", h.getCompleteness)
	}
}

// registerClient godoc
// @Summary Register a new client
// @Description Registers an individual or corporate client. Field requirements depend on personType.
// @Tags clientes
// @Accept json
// @Produce json
// @Param client body dto.RegisterClientRequest true "Client details"
// @Success 201 {object} dto.APIResponse{data=dto.ClientResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Security BearerAuth
// @Router /clientes [post]
func (h *clientHandler) registerClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized", "UNAUTHORIZED", nil))
		return
	}

	client, err := h.clientService.RegisterClient(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Client registered", slog.String("client_id", client.ClientID), slog.String("person_type", string(client.PersonType)))
	c.JSON(http.StatusCreated, dto.OK("Client registered", dto.ToClientResponse(client)))
}

// getClient godoc
// @Summary Get a client
// @Description Retrieves a client together with its incomes, documents and applications.
// @Tags clientes
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClientDetailResponse}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /clientes/{id} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	detail, err := h.clientService.GetClientByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Client retrieved", dto.ToClientDetailResponse(detail)))
}

// listClients godoc
// @Summary List clients
// @Description Lists clients with filtering, search, sorting and pagination.
// @Tags clientes
// @Produce json
// @Param personType query string false "Filter by person type" Enums(FISICA, FISICA_EMPRESARIAL, MORAL)
// @Param status query string false "Filter by status" Enums(ACTIVE, INACTIVE, SUSPENDED)
// @Param q query string false "Free text search over names, tax id and email"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (max 100)"
// @Param sortBy query string false "Sort column" Enums(created_at, tax_id, email, status)
// @Param sortDesc query bool false "Sort descending"
// @Success 200 {object} dto.APIResponse{data=dto.ListClientsResponse}
// @Failure 400 {object} dto.APIResponse
// @Security BearerAuth
// @Router /clientes [get]
func (h *clientHandler) listClients(c *gin.Context) {
	var params dto.ListClientsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	clients, total, err := h.clientService.ListClients(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ListClientsResponse{
		Clients:  make([]dto.ClientResponse, len(clients)),
		PageMeta: dto.PageMeta(pagination.NewMeta(total, params.Page, params.Limit)),
	}
	for i := range clients {
		resp.Clients[i] = dto.ToClientResponse(&clients[i])
	}
	c.JSON(http.StatusOK, dto.OK("Clients retrieved", resp))
}

// updateClientStatus godoc
// @Summary Update client status
// @Description Sets the client lifecycle status. Admin only.
// @Tags clientes
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param status body dto.UpdateClientStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.ClientResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /clientes/{id}/status [patch]
func (h *clientHandler) updateClientStatus(c *gin.Context) {
	var req dto.UpdateClientStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized", "UNAUTHORIZED", nil))
		return
	}

	client, err := h.clientService.UpdateClientStatus(c.Request.Context(), c.Param("id"), domain.ClientStatus(req.Status), updaterUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Client status updated", dto.ToClientResponse(client)))
}

// recordIncome godoc
// @Summary Record an income declaration
// @Description Appends a new income declaration for the client.
// @Tags ingresos
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param income body dto.RecordIncomeRequest true "Income declaration"
// @Success 201 {object} dto.APIResponse{data=dto.IncomeResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /clientes/{id}/ingresos [post]
func (h *clientHandler) recordIncome(c *gin.Context) {
	var req dto.RecordIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized", "UNAUTHORIZED", nil))
		return
	}

	income, err := h.incomeService.RecordIncome(c.Request.Context(), c.Param("id"), req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Income declaration recorded", dto.ToIncomeResponse(income)))
}

// listIncomes godoc
// @Summary List income declarations
// @Description Retrieves the client's income declaration history, newest first.
// @Tags ingresos
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.IncomeResponse}
// @Security BearerAuth
// @Router /clientes/{id}/ingresos [get]
func (h *clientHandler) listIncomes(c *gin.Context) {
	incomes, err := h.incomeService.ListIncomes(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.IncomeResponse, len(incomes))
	for i := range incomes {
		resp[i] = dto.ToIncomeResponse(&incomes[i])
	}
	c.JSON(http.StatusOK, dto.OK("Income declarations retrieved", resp))
}

// getLatestIncome godoc
// @Summary Get the latest income declaration
// @Description Retrieves the authoritative (most recent) income declaration.
// @Tags ingresos
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} dto.APIResponse{data=dto.IncomeResponse}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /clientes/{id}/ingresos/ultimo [get]
func (h *clientHandler) getLatestIncome(c *gin.Context) {
	income, err := h.incomeService.GetLatestIncome(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Latest income declaration retrieved", dto.ToIncomeResponse(income)))
}

// getCompleteness godoc
// @Summary Get KYC document completeness
// @Description Recomputes the client's document completeness from the catalog and submission history.
// @Tags documentos
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} dto.APIResponse{data=dto.CompletenessResponse}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /clientes/{id}/completitud [get]
func (h *clientHandler) getCompleteness(c *gin.Context) {
	clientID := c.Param("id")
	completeness, err := h.documentService.ComputeCompleteness(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Completeness computed", dto.ToCompletenessResponse(clientID, completeness)))
}
