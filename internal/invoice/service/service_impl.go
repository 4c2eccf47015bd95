package service

import (
	"context"
	"math"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/finboard/finboard/internal/clock"
	"github.com/finboard/finboard/internal/invoice/domain"
	"github.com/finboard/finboard/internal/invoice/validate"
	"github.com/finboard/finboard/internal/viewcache"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	// ListingPath is the cached invoice listing view every committed
	// mutation invalidates.
	ListingPath = "/dashboard/invoices"

	dateLayout = "2006-01-02"

	msgCreateMissing = "Missing Fields. Failed to Create Invoice."
	msgUpdateMissing = "Missing Fields. Failed to Update Invoice."
	msgCreateDBError = "Database Error: Failed to Create Invoice."
	msgUpdateDBError = "Database Error: Failed to Update Invoice."
	msgDeleteDBError = "Database Error: Failed to Delete Invoice."
	msgDeleted       = "Invoice Deleted."
)

type Params struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
	Views viewcache.Invalidator
	Clock clock.Clock
}

// Service runs the validated-mutation pipeline: validate, normalize, persist,
// invalidate dependent views, then redirect or report. Each call is one
// short-lived sequential unit of work; retries belong to the caller.
type Service struct {
	log       *zap.Logger
	genID     *snowflake.Node
	repo      domain.Repository
	views     viewcache.Invalidator
	clock     clock.Clock
	validator validate.Validator
}

func New(p Params) domain.Service {
	return &Service{
		log:       p.Log.Named("invoice.service"),
		genID:     p.GenID,
		repo:      p.Repo,
		views:     p.Views,
		clock:     p.Clock,
		validator: validate.New(),
	}
}

func (s *Service) Create(ctx context.Context, input domain.MutationInput) domain.Result {
	normalized, errs := s.validator.Validate(input)
	if errs != nil {
		return domain.Rejected(errs, msgCreateMissing)
	}

	invoice := &domain.Invoice{
		ID:         s.genID.Generate(),
		CustomerID: normalized.CustomerID,
		Amount:     toCents(normalized.Amount),
		Status:     normalized.Status,
		Date:       s.clock.Now().Format(dateLayout),
	}

	if err := s.repo.Insert(ctx, invoice); err != nil {
		return domain.Failed(msgCreateDBError)
	}

	s.views.Invalidate(ListingPath)
	return domain.Redirected(ListingPath)
}

func (s *Service) Update(ctx context.Context, id string, input domain.MutationInput) domain.Result {
	invoiceID, err := parseID(id)
	if err != nil {
		return domain.Failed(msgUpdateDBError)
	}

	normalized, errs := s.validator.Validate(input)
	if errs != nil {
		return domain.Rejected(errs, msgUpdateMissing)
	}

	if err := s.repo.Update(ctx, invoiceID, normalized.CustomerID, toCents(normalized.Amount), normalized.Status); err != nil {
		return domain.Failed(msgUpdateDBError)
	}

	s.views.Invalidate(ListingPath)
	return domain.Redirected(ListingPath)
}

func (s *Service) Delete(ctx context.Context, id string) domain.Result {
	invoiceID, err := parseID(id)
	if err != nil {
		return domain.Failed(msgDeleteDBError)
	}

	if err := s.repo.Delete(ctx, invoiceID); err != nil {
		return domain.Failed(msgDeleteDBError)
	}

	s.views.Invalidate(ListingPath)
	return domain.Reported(msgDeleted)
}

func (s *Service) List(ctx context.Context) ([]domain.Invoice, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Invoice, error) {
	invoiceID, err := parseID(id)
	if err != nil {
		return domain.Invoice{}, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, invoiceID)
	if err != nil {
		return domain.Invoice{}, err
	}
	if item == nil {
		return domain.Invoice{}, domain.ErrNotFound
	}

	return *item, nil
}

// toCents converts a major-unit amount to minor units, rounding to the nearest
// whole cent so binary floating point never leaks into storage.
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
