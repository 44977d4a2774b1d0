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

// FinanceHandler handles invoice, payment and transaction HTTP requests
type FinanceHandler struct {
	financeService *service.FinanceService
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(financeService *service.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// CreateInvoice handles creating an invoice with its line items
func (h *FinanceHandler) CreateInvoice(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	issueDate, err := parseDate(req.IssueDate)
	if err != nil {
		response.BadRequest(c, "Invalid issue date")
		return
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		response.BadRequest(c, "Invalid due date")
		return
	}

	items := make([]service.InvoiceItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.InvoiceItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     item.TaxRate,
		})
	}

	invoice, err := h.financeService.CreateInvoice(c.Request.Context(), &service.CreateInvoiceInput{
		CustomerID: customerID,
		IssueDate:  issueDate,
		DueDate:    dueDate,
		Notes:      req.Notes,
		Terms:      req.Terms,
		CreatedBy:  userID,
		Items:      items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// ListInvoices handles listing invoices with filtering
func (h *FinanceHandler) ListInvoices(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.InvoiceFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
	}

	if s := c.Query("status"); s != "" {
		status := enum.InvoiceStatus(s)
		params.Status = &status
	}
	if cid := c.Query("customer_id"); cid != "" {
		customerID, err := uuid.Parse(cid)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		params.CustomerID = &customerID
	}

	result, err := h.financeService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// GetInvoice handles getting a single invoice with its items
func (h *FinanceHandler) GetInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.financeService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// UpdateInvoiceStatus handles an invoice status transition
func (h *FinanceHandler) UpdateInvoiceStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.financeService.UpdateInvoiceStatus(c.Request.Context(), id, enum.InvoiceStatus(req.Status)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice status updated successfully", nil)
}

// CreatePayment handles recording a payment against an invoice
func (h *FinanceHandler) CreatePayment(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreatePaymentInput{
		InvoiceID:   invoiceID,
		Amount:      req.Amount,
		Method:      enum.PaymentMethod(req.Method),
		ReferenceNo: req.ReferenceNo,
		Notes:       req.Notes,
		CreatedBy:   userID,
	}
	if req.PaymentDate != nil {
		date, err := parseDate(*req.PaymentDate)
		if err != nil {
			response.BadRequest(c, "Invalid payment date")
			return
		}
		input.PaymentDate = date
	}
	if req.Status != nil {
		status := enum.PaymentStatus(*req.Status)
		input.Status = &status
	}

	payment, err := h.financeService.CreatePayment(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded successfully", payment)
}

// ListInvoicePayments handles listing the payments for an invoice
func (h *FinanceHandler) ListInvoicePayments(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	payments, err := h.financeService.ListInvoicePayments(c.Request.Context(), invoiceID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", payments)
}

// CreateTransaction handles recording an income or expense entry
func (h *FinanceHandler) CreateTransaction(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateTransactionInput{
		Type:          enum.TransactionType(req.Type),
		Amount:        req.Amount,
		Category:      req.Category,
		Description:   req.Description,
		ReferenceNo:   req.ReferenceNo,
		AttachmentURL: req.AttachmentURL,
		CreatedBy:     userID,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date")
			return
		}
		input.Date = date
	}

	txn, err := h.financeService.CreateTransaction(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction recorded successfully", txn)
}

// ListTransactions handles listing transactions with filtering
func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.TransactionFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Category: c.Query("category"),
	}

	if t := c.Query("type"); t != "" {
		txnType := enum.TransactionType(t)
		params.Type = &txnType
	}
	if s := c.Query("start_date"); s != "" {
		startDate, err := parseDate(s)
		if err != nil {
			response.BadRequest(c, "Invalid start date")
			return
		}
		params.StartDate = &startDate
	}
	if e := c.Query("end_date"); e != "" {
		endDate, err := parseDate(e)
		if err != nil {
			response.BadRequest(c, "Invalid end date")
			return
		}
		params.EndDate = &endDate
	}

	result, err := h.financeService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

// GetTransaction handles getting a single transaction
func (h *FinanceHandler) GetTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	txn, err := h.financeService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved successfully", txn)
}

// UpdateTransaction handles updating a transaction
func (h *FinanceHandler) UpdateTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	var req request.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateTransactionInput{
		ID:            id,
		Amount:        req.Amount,
		Category:      req.Category,
		Description:   req.Description,
		ReferenceNo:   req.ReferenceNo,
		AttachmentURL: req.AttachmentURL,
	}
	if req.Type != nil {
		txnType := enum.TransactionType(*req.Type)
		input.Type = &txnType
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date")
			return
		}
		input.Date = &date
	}

	txn, err := h.financeService.UpdateTransaction(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction updated successfully", txn)
}

// DeleteTransaction handles deleting a transaction
func (h *FinanceHandler) DeleteTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	if err := h.financeService.DeleteTransaction(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
