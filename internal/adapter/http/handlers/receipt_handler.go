package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "pgw_comprovantes/internal/adapter/http/dto/request"
	response "pgw_comprovantes/internal/adapter/http/dto/response"
	"pgw_comprovantes/internal/domain/receipt"
	"pgw_comprovantes/internal/usecase"
	"pgw_comprovantes/pkg"

	"github.com/gin-gonic/gin"
)

// ReceiptHandler handles HTTP requests for payment receipts.

type ReceiptHandler struct {
	usecase usecase.IReceiptUseCase
}

func NewReceiptHandler(uc usecase.IReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{usecase: uc}
}

// GenerateReceipt renders the PDF receipt for a payment-confirmation
// record and emails it to the record's recipient.
func (h *ReceiptHandler) GenerateReceipt(c *gin.Context) {
	log.Printf("[receipt][handler] generate start")

	payload, err := readReceiptPayload(c)
	if err != nil {
		log.Printf("[receipt][handler] invalid envelope err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var req request.ReceiptRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		log.Printf("[receipt][handler] payload unmarshal failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid payment payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.GenerateAndSend(c.Request.Context(), req.ToEntity())
	if err != nil {
		log.Printf("[receipt][handler] generate failed email=%s err=%v", req.Email, err)
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[receipt][handler] generate success email=%s email_sent=%t", req.Email, result.Email.Success)

	c.JSON(http.StatusOK, response.FromReceiptResult(result))
}

// readReceiptPayload accepts either the payment record itself or an
// API-gateway style envelope whose "body" field holds the record, possibly
// string-encoded (one decode step).
func readReceiptPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, errors.New("request body is empty")
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["body"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("body cannot be empty")
			}
			if strings.HasPrefix(trimmed, `"`) {
				var inner string
				if err := json.Unmarshal(wrapped, &inner); err != nil {
					return nil, err
				}
				if !json.Valid([]byte(inner)) {
					return nil, errors.New("body is not valid json")
				}
				return json.RawMessage(inner), nil
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapReceiptError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, receipt.ErrMissingRequiredField), errors.Is(err, receipt.ErrMalformedTimestamp):
		return pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid payment payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
