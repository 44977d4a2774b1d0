package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/compasshq/erp-api/internal/application/service"
	"github.com/compasshq/erp-api/internal/domain/enum"
	"github.com/compasshq/erp-api/internal/domain/repository"
	"github.com/compasshq/erp-api/internal/presentation/http/dto/request"
	"github.com/compasshq/erp-api/internal/presentation/http/dto/response"
	"github.com/compasshq/erp-api/pkg/pagination"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing customers (supports both page-based and cursor-based pagination)
func (h *CustomerHandler) List(c *gin.Context) {
	search := c.Query("search")

	// Check if cursor-based pagination is requested
	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c, search)
		return
	}

	// Default to page-based pagination
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.CustomerFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: search,
	}

	if t := c.Query("type"); t != "" {
		customerType := enum.CustomerType(t)
		params.Type = &customerType
	}
	if s := c.Query("status"); s != "" {
		status := enum.CustomerStatus(s)
		params.Status = &status
	}

	result, err := h.customerService.ListCustomers(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// listWithCursor handles listing customers with cursor-based pagination
func (h *CustomerHandler) listWithCursor(c *gin.Context, search string) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))
	cursor := c.Query("cursor")
	direction := c.DefaultQuery("direction", "next")

	params := &pagination.CursorParams{
		Cursor:    cursor,
		Direction: pagination.CursorDirection(direction),
		Limit:     limit,
	}

	result, err := h.customerService.ListCustomersWithCursor(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Customers retrieved successfully", result)
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		AddressLine1:  req.AddressLine1,
		AddressLine2:  req.AddressLine2,
		City:          req.City,
		State:         req.State,
		PostalCode:    req.PostalCode,
		Country:       req.Country,
		CompanyName:   req.CompanyName,
		Industry:      req.Industry,
		AnnualRevenue: req.AnnualRevenue,
		EmployeeCount: req.EmployeeCount,
		Type:          enum.CustomerType(req.Type),
		Status:        enum.CustomerStatus(req.Status),
		Notes:         req.Notes,
		CreatedBy:     userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Get handles getting a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateCustomerInput{
		ID:            id,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		AddressLine1:  req.AddressLine1,
		AddressLine2:  req.AddressLine2,
		City:          req.City,
		State:         req.State,
		PostalCode:    req.PostalCode,
		Country:       req.Country,
		CompanyName:   req.CompanyName,
		Industry:      req.Industry,
		AnnualRevenue: req.AnnualRevenue,
		EmployeeCount: req.EmployeeCount,
		Notes:         req.Notes,
	}
	if req.Type != nil {
		customerType := enum.CustomerType(*req.Type)
		input.Type = &customerType
	}
	if req.Status != nil {
		status := enum.CustomerStatus(*req.Status)
		input.Status = &status
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// CreateInteraction handles logging a customer interaction
func (h *CustomerHandler) CreateInteraction(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.CreateInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateInteractionInput{
		CustomerID: customerID,
		Type:       enum.InteractionType(req.Type),
		Summary:    req.Summary,
		Details:    req.Details,
		CreatedBy:  userID,
	}
	if req.InteractionDate != nil {
		date, err := parseDate(*req.InteractionDate)
		if err != nil {
			response.BadRequest(c, "Invalid interaction date")
			return
		}
		input.InteractionDate = date
	}
	if req.NextFollowUpDate != nil {
		date, err := parseDate(*req.NextFollowUpDate)
		if err != nil {
			response.BadRequest(c, "Invalid follow-up date")
			return
		}
		input.NextFollowUpDate = &date
	}

	interaction, err := h.customerService.CreateInteraction(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Interaction logged successfully", interaction)
}

// ListInteractions handles listing a customer's interactions
func (h *CustomerHandler) ListInteractions(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.customerService.ListInteractions(c.Request.Context(), customerID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Interactions retrieved successfully", result)
}

// CreateSegment handles creating a customer segment
func (h *CustomerHandler) CreateSegment(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	segment, err := h.customerService.CreateSegment(c.Request.Context(), &service.CreateSegmentInput{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Segment created successfully", segment)
}

// ListSegments handles listing all customer segments
func (h *CustomerHandler) ListSegments(c *gin.Context) {
	segments, err := h.customerService.ListSegments(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Segments retrieved successfully", segments)
}

// AssignToSegment handles adding a customer to a segment
func (h *CustomerHandler) AssignToSegment(c *gin.Context) {
	segmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid segment ID")
		return
	}

	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.AssignToSegment(c.Request.Context(), segmentID, customerID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer assigned to segment", nil)
}

// ListSegmentCustomers handles listing the customers in a segment
func (h *CustomerHandler) ListSegmentCustomers(c *gin.Context) {
	segmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid segment ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.customerService.ListSegmentCustomers(c.Request.Context(), segmentID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Segment customers retrieved successfully", result)
}
