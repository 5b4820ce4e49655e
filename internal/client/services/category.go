// Package services contains the catalog retrieval services of the storefront
// client: the page fetcher, the full-collection aggregator, the active filter
// and the connectivity probe.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/client"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/models"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/common"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/logging"
)

// DefaultMaxPages is the page-count safety bound of FetchAll.
const DefaultMaxPages = 100

// CategoryService defines the catalog retrieval operations.
//
// Contract:
//   - FetchPage: one page; never returns an error, failures become data.
//   - FetchAll: follow pagination from page 1 until exhaustion or the safety bound.
//   - FetchActive: FetchAll narrowed to active categories.
//   - TestConnection: probe the endpoint with a one-item page.
//
// All methods honor context cancellation.
type CategoryService interface {
	FetchPage(ctx context.Context, page, perPage int) models.PageResult
	FetchAll(ctx context.Context, perPage int) models.CollectionResult
	FetchActive(ctx context.Context, perPage int) models.CollectionResult
	TestConnection(ctx context.Context) ConnectionReport
}

// ConnectionReport is the result of TestConnection.
type ConnectionReport struct {
	Endpoint        string
	Reachable       bool
	DataReceived    bool
	CategoriesFound int
	Latency         time.Duration
	Message         string
}

// pageRequest is the outbound JSON body.
type pageRequest struct {
	PerPage int `json:"per_page"`
	Page    int `json:"page"`
}

// categoryService is the concrete CategoryService backed by an envelope Client.
type categoryService struct {
	client   client.Client
	logger   logging.Logger
	maxPages int
}

// NewCategoryService binds the service to an envelope client. maxPages <= 0
// selects DefaultMaxPages.
func NewCategoryService(c client.Client, logger logging.Logger, maxPages int) CategoryService {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &categoryService{client: c, logger: logger, maxPages: maxPages}
}

// FetchPage requests one page and maps the envelope into a PageResult.
// This is the single place where envelope-client errors are absorbed.
func (s *categoryService) FetchPage(ctx context.Context, page, perPage int) models.PageResult {
	log := s.logger.With("page", page, "per_page", perPage)

	if page < 1 || perPage < 1 {
		err := common.ErrorInvalidPage
		if perPage < 1 {
			err = common.ErrorInvalidPerPage
		}
		log.Warn(ctx, "rejected page request", "error", err)
		return models.PageResult{Outcome: models.OutcomeFailure, Message: ClassifyError(err)}
	}

	env, err := s.client.Send(ctx, pageRequest{PerPage: perPage, Page: page})
	if err != nil {
		msg := ClassifyError(err)
		log.Error(ctx, "page fetch failed", "error", err, "message", msg)
		return models.PageResult{Outcome: models.OutcomeFailure, Message: msg}
	}

	code, ok := env.CodeString()
	switch {
	case ok && code == common.CodeData:
		payload, err := decodePayload(env.Payload)
		if err != nil || env.Payload == nil {
			log.Error(ctx, "page payload rejected", "error", err)
			return models.PageResult{Outcome: models.OutcomeFailure, Message: MsgMalformed}
		}
		msg := env.Message
		if msg == "" {
			msg = MsgRetrieved
		}
		p := payload.toPage(page)
		log.Debug(ctx, "page fetched", "items", p.Len(), "has_next", p.Pagination.HasNextPage)
		return models.PageResult{Outcome: models.OutcomeSuccess, Page: p, Message: msg}

	case ok && code == common.CodeNoData:
		msg := env.Message
		if msg == "" {
			msg = ClassifyError(client.ErrNoData)
		}
		log.Info(ctx, "server reported no data", "message", msg)
		return models.PageResult{Outcome: models.OutcomeNoData, Message: msg}

	default:
		log.Error(ctx, "unrecognized response code", "code", string(env.Code))
		return models.PageResult{Outcome: models.OutcomeFailure, Message: MsgUnrecognized}
	}
}

// FetchAll aggregates every page starting at page 1, in page order.
//
// It stops when a page reports no next page, returns no items, or reports
// no data. A failed page fails the whole aggregation and discards what was
// gathered. Reaching the maxPages bound is not an error: the partial
// collection is returned with Truncated set.
func (s *categoryService) FetchAll(ctx context.Context, perPage int) models.CollectionResult {
	var (
		all     []models.Category
		fetched int
		message string
	)

	page := 1
	for {
		if page > s.maxPages {
			s.logger.Warn(ctx, "page limit reached, returning partial catalog",
				"max_pages", s.maxPages, "categories", len(all))
			return models.CollectionResult{
				Success:      true,
				Categories:   nonNil(all),
				Total:        len(all),
				Message:      fmt.Sprintf("%d categories retrieved (page limit reached)", len(all)),
				PagesFetched: fetched,
				Truncated:    true,
			}
		}

		res := s.FetchPage(ctx, page, perPage)
		fetched++

		if res.Outcome == models.OutcomeFailure {
			return models.CollectionResult{Success: false, Message: res.Message, PagesFetched: fetched}
		}
		if res.Outcome == models.OutcomeNoData {
			if len(all) == 0 {
				message = res.Message
			}
			break
		}
		if res.Page.Len() == 0 {
			break
		}

		all = append(all, res.Page.Categories...)
		if !res.Page.Pagination.HasNextPage {
			break
		}
		page++
	}

	if message == "" {
		message = fmt.Sprintf("%d categories retrieved", len(all))
	}
	s.logger.Info(ctx, "catalog aggregated", "pages", fetched, "categories", len(all))

	return models.CollectionResult{
		Success:      true,
		Categories:   nonNil(all),
		Total:        len(all),
		Message:      message,
		PagesFetched: fetched,
	}
}

// FetchActive aggregates all pages and keeps only active categories.
// Failures are passed through unchanged.
func (s *categoryService) FetchActive(ctx context.Context, perPage int) models.CollectionResult {
	res := s.FetchAll(ctx, perPage)
	if !res.Success {
		return res
	}

	active := FilterActive(res.Categories)
	res.Categories = active
	res.Total = len(active)
	if len(active) > 0 || res.Message == "" {
		res.Message = fmt.Sprintf("%d active categories found", len(active))
	}
	return res
}

// TestConnection asks for a single one-item page and reports what came back.
func (s *categoryService) TestConnection(ctx context.Context) ConnectionReport {
	started := time.Now()
	res := s.FetchPage(ctx, 1, 1)

	report := ConnectionReport{
		Reachable: res.Outcome != models.OutcomeFailure,
		Latency:   time.Since(started),
		Message:   res.Message,
	}
	if ep, ok := s.client.(interface{ Endpoint() string }); ok {
		report.Endpoint = ep.Endpoint()
	}
	if res.Success() {
		report.DataReceived = true
		report.CategoriesFound = res.Page.Len()
	}
	return report
}

func nonNil(c []models.Category) []models.Category {
	if c == nil {
		return []models.Category{}
	}
	return c
}
