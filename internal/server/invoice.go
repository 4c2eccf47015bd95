package server

import (
	"encoding/json"
	"net/http"
	"strings"

	invoicedomain "github.com/finboard/finboard/internal/invoice/domain"
	invoiceservice "github.com/finboard/finboard/internal/invoice/service"
	"github.com/finboard/finboard/internal/viewcache"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type invoiceForm struct {
	CustomerID string `form:"customerId" json:"customerId"`
	Amount     string `form:"amount" json:"amount"`
	Status     string `form:"status" json:"status"`
}

// ListInvoices serves the invoice listing through the view cache: a mutation
// invalidates the cached entry, so a miss here recomputes it.
func (s *Server) ListInvoices(c *gin.Context) {
	if payload, ok := s.views.Get(invoiceservice.ListingPath); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	invoices, err := s.invoiceSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	payload, err := json.Marshal(gin.H{"data": invoices})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.views.Set(invoiceservice.ListingPath, payload, viewcache.DefaultTTL)
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

func (s *Server) GetInvoiceByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	item, err := s.invoiceSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": item})
}

func (s *Server) CreateInvoice(c *gin.Context) {
	var form invoiceForm
	_ = c.ShouldBind(&form)

	result := s.invoiceSvc.Create(c.Request.Context(), invoicedomain.MutationInput{
		CustomerID: form.CustomerID,
		Amount:     form.Amount,
		Status:     form.Status,
	})
	s.writeMutationResult(c, result)
}

func (s *Server) UpdateInvoice(c *gin.Context) {
	var form invoiceForm
	_ = c.ShouldBind(&form)

	result := s.invoiceSvc.Update(c.Request.Context(), strings.TrimSpace(c.Param("id")), invoicedomain.MutationInput{
		CustomerID: form.CustomerID,
		Amount:     form.Amount,
		Status:     form.Status,
	})
	s.writeMutationResult(c, result)
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	result := s.invoiceSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	s.writeMutationResult(c, result)
}

// writeMutationResult translates the pipeline's tagged outcome into a
// response. The redirect variant is handled here, outside any error path.
func (s *Server) writeMutationResult(c *gin.Context, result invoicedomain.Result) {
	switch result.Outcome {
	case invoicedomain.OutcomeRedirected:
		c.Redirect(http.StatusSeeOther, result.Location)
	case invoicedomain.OutcomeReported:
		c.JSON(http.StatusOK, result)
	case invoicedomain.OutcomeRejected:
		c.JSON(http.StatusBadRequest, result)
	case invoicedomain.OutcomeFailed:
		c.JSON(http.StatusInternalServerError, result)
	default:
		s.log.Error("unknown mutation outcome", zap.String("outcome", string(result.Outcome)))
		c.Status(http.StatusInternalServerError)
	}
}
