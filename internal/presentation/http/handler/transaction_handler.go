package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/adiwignya/tembakau-api/internal/application/service"
	"github.com/adiwignya/tembakau-api/internal/domain/enum"
	"github.com/adiwignya/tembakau-api/internal/domain/repository"
	"github.com/adiwignya/tembakau-api/internal/domain/weighing"
	"github.com/adiwignya/tembakau-api/internal/presentation/http/dto/request"
	"github.com/adiwignya/tembakau-api/internal/presentation/http/dto/response"
	"github.com/adiwignya/tembakau-api/pkg/pagination"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// Create handles saving a transaction with its weighed items
func (h *TransactionHandler) Create(c *gin.Context) {
	var req request.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	items := make([]weighing.ItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = weighing.ItemInput{
			Name:    item.Name,
			Weights: item.Weights,
			Price:   item.Price,
		}
	}

	kind, err := enum.ParseTransactionKind(req.Kind)
	if err != nil {
		response.BadRequest(c, "Unknown transaction kind")
		return
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), &service.CreateTransactionInput{
		Date:  date,
		Name:  req.Name,
		Kind:  kind,
		Items: items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction saved successfully", transaction)
}

// List handles listing transactions with filters, newest first
func (h *TransactionHandler) List(c *gin.Context) {
	params := &repository.TransactionFilterParams{
		Pagination: pagination.DefaultPagination(),
		Search:     c.Query("search"),
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		params.Pagination.Page = page
	}
	if perPage, err := strconv.Atoi(c.Query("per_page")); err == nil {
		params.Pagination.PerPage = perPage
	}
	params.Pagination.Validate()

	if kindStr := c.Query("kind"); kindStr != "" && kindStr != "all" {
		kind, err := enum.ParseTransactionKind(kindStr)
		if err != nil {
			response.BadRequest(c, "Unknown transaction kind")
			return
		}
		params.Kind = &kind
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			response.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
			return
		}
		params.StartDate = &startDate
	}

	if endDateStr := c.Query("end_date"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			response.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
			return
		}
		params.EndDate = &endDate
	}

	result, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

// Get handles getting a single transaction with its items
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	transaction, err := h.transactionService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved successfully", transaction)
}
