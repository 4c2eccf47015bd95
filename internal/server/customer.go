package server

import (
	"net/http"

	invoicedomain "github.com/finboard/finboard/internal/invoice/domain"
	"github.com/gin-gonic/gin"
)

// Overview is the dashboard landing page.
func (s *Server) Overview(c *gin.Context) {
	invoices, err := s.invoiceSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	customers, err := s.customerSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var totalPending, totalPaid int64
	for _, inv := range invoices {
		switch inv.Status {
		case invoicedomain.StatusPaid:
			totalPaid += inv.Amount
		default:
			totalPending += inv.Amount
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"number_of_invoices":  len(invoices),
		"number_of_customers": len(customers),
		"total_paid":          totalPaid,
		"total_pending":       totalPending,
	})
}

func (s *Server) ListCustomers(c *gin.Context) {
	customers, err := s.customerSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": customers})
}
