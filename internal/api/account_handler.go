package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"evermore/couple-app/internal/domain"
	"evermore/couple-app/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountHandler holds the account service dependency.
type AccountHandler struct {
	accountService service.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// --- Request/Response Structs ---

type CreateAccountRequest struct {
	Email        string  `json:"email" binding:"required,email"`
	PartnerEmail *string `json:"partnerEmail,omitempty"`
	CoupleID     string  `json:"coupleId,omitempty"`
}

// AccountResponse converts the Mongo ObjectID to its hex string form.
type AccountResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PartnerEmail *string   `json:"partnerEmail,omitempty"`
	CoupleID     string    `json:"coupleId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// --- Handler Methods ---

// CreateAccount registers a new couple account. A couple id is generated
// when the request does not carry one.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	account, err := h.accountService.Register(c.Request.Context(), req.Email, req.PartnerEmail, req.CoupleID)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		}
		return
	}

	c.JSON(http.StatusCreated, mapAccountToResponse(account))
}

func mapAccountToResponse(account *domain.CoupleAccount) AccountResponse {
	return AccountResponse{
		ID:           account.ID.Hex(),
		Email:        account.Email,
		PartnerEmail: account.PartnerEmail,
		CoupleID:     account.CoupleID,
		CreatedAt:    account.CreatedAt,
	}
}
