package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/api-sage/bank-records-api/internal/adapter/http/models"
	"github.com/api-sage/bank-records-api/internal/domain"
)

type BankService interface {
	GetBanks(ctx context.Context) ([]domain.Bank, error)
	GetBank(ctx context.Context, accountNumber string) (domain.Bank, error)
	CreateBank(ctx context.Context, bank domain.Bank) (domain.Bank, error)
	UpdateBank(ctx context.Context, bank domain.Bank) (domain.Bank, error)
	DeleteBank(ctx context.Context, accountNumber string) error
}

type BankController struct {
	service BankService
}

func NewBankController(service BankService) *BankController {
	return &BankController{service: service}
}

func (c *BankController) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/bank/all", http.HandlerFunc(c.getBanks))
	mux.Handle("/api/bank", http.HandlerFunc(c.handleBank))
	mux.Handle("/api/bank/", http.HandlerFunc(c.handleBankByAccountNumber))
}

func (c *BankController) getBanks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if r.Method != http.MethodGet {
		writeMessage(w, http.StatusMethodNotAllowed, "method not allowed")
		logResponse(r, http.StatusMethodNotAllowed, start)
		return
	}

	banks, err := c.service.GetBanks(r.Context())
	if err != nil {
		status := writeError(w, err)
		logError(r, err, nil)
		logResponse(r, status, start)
		return
	}

	writeJSON(w, http.StatusOK, models.FromBanks(banks))
	logResponse(r, http.StatusOK, start)
}

func (c *BankController) handleBank(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.createBank(w, r)
	case http.MethodPut:
		c.updateBank(w, r)
	default:
		writeMessage(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (c *BankController) createBank(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.BankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		logResponse(r, http.StatusBadRequest, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		logResponse(r, http.StatusBadRequest, start)
		return
	}

	created, err := c.service.CreateBank(r.Context(), req.ToDomain())
	if err != nil {
		status := writeError(w, err)
		logError(r, err, nil)
		logResponse(r, status, start)
		return
	}

	writeJSON(w, http.StatusCreated, models.FromBank(created))
	logResponse(r, http.StatusCreated, start)
}

func (c *BankController) updateBank(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.BankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		logResponse(r, http.StatusBadRequest, start)
		return
	}
	logRequest(r, req)

	updated, err := c.service.UpdateBank(r.Context(), req.ToDomain())
	if err != nil {
		status := writeError(w, err)
		logError(r, err, nil)
		logResponse(r, status, start)
		return
	}

	writeJSON(w, http.StatusOK, models.FromBank(updated))
	logResponse(r, http.StatusOK, start)
}

func (c *BankController) handleBankByAccountNumber(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	accountNumber := strings.TrimPrefix(r.URL.Path, "/api/bank/")
	if accountNumber == "" || strings.Contains(accountNumber, "/") {
		writeMessage(w, http.StatusNotFound, "not found")
		logResponse(r, http.StatusNotFound, start)
		return
	}

	switch r.Method {
	case http.MethodGet:
		bank, err := c.service.GetBank(r.Context(), accountNumber)
		if err != nil {
			status := writeError(w, err)
			logError(r, err, nil)
			logResponse(r, status, start)
			return
		}
		writeJSON(w, http.StatusOK, models.FromBank(bank))
		logResponse(r, http.StatusOK, start)
	case http.MethodDelete:
		if err := c.service.DeleteBank(r.Context(), accountNumber); err != nil {
			status := writeError(w, err)
			logError(r, err, nil)
			logResponse(r, status, start)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		logResponse(r, http.StatusNoContent, start)
	default:
		writeMessage(w, http.StatusMethodNotAllowed, "method not allowed")
		logResponse(r, http.StatusMethodNotAllowed, start)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, message)
}

// writeError is the single translation point from domain errors to HTTP
// statuses. The response body is the bare error message.
func writeError(w http.ResponseWriter, err error) int {
	status := statusFor(err)
	writeMessage(w, status, err.Error())
	return status
}

func statusFor(err error) int {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		switch domainErr.Kind {
		case domain.KindNotFound:
			return http.StatusNotFound
		case domain.KindConflict, domain.KindInvalidArgument:
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}
