package catalog

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/models"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/common"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/logging"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/netx"
)

const msgNoCategories = "no categories"

type pageRequest struct {
	PerPage int `json:"per_page"`
	Page    int `json:"page"`
}

type envelope struct {
	Code    string   `json:"code"`
	Message string   `json:"message,omitempty"`
	Payload *payload `json:"payload,omitempty"`
}

// payload follows Laravel's LengthAwarePaginator JSON shape.
type payload struct {
	Data         []models.Category `json:"data"`
	CurrentPage  int               `json:"current_page"`
	LastPage     int               `json:"last_page"`
	PerPage      int               `json:"per_page"`
	Total        int               `json:"total"`
	From         *int              `json:"from"`
	To           *int              `json:"to"`
	FirstPageURL string            `json:"first_page_url"`
	LastPageURL  string            `json:"last_page_url"`
	NextPageURL  *string           `json:"next_page_url"`
	PrevPageURL  *string           `json:"prev_page_url"`
	Path         string            `json:"path"`
	Links        []link            `json:"links"`
}

type link struct {
	URL    *string `json:"url"`
	Label  string  `json:"label"`
	Active bool    `json:"active"`
}

// Handler serves the catalog endpoint.
type Handler struct {
	store          *Store
	logger         logging.Logger
	defaultPerPage int
	delay          time.Duration
}

func NewHandler(store *Store, logger logging.Logger, defaultPerPage int, delay time.Duration) *Handler {
	if defaultPerPage < 1 {
		defaultPerPage = 10
	}
	return &Handler{store: store, logger: logger, defaultPerPage: defaultPerPage, delay: delay}
}

// Categories answers POST {"per_page": n, "page": n}. Missing or
// non-positive values fall back to page 1 and the default page size.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.delay > 0 {
		select {
		case <-time.After(h.delay):
		case <-ctx.Done():
			return
		}
	}

	body, err := netx.ReadLimited(r.Body, 1<<20)
	if err != nil {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}

	var req pageRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			h.logger.Warn(ctx, "bad catalog request", "error", err)
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = h.defaultPerPage
	}

	if h.store.Len() == 0 {
		writeJSON(w, envelope{Code: common.CodeNoData, Message: msgNoCategories})
		return
	}

	slice := h.store.Page(req.Page, req.PerPage)
	base := requestURL(r)
	p := &payload{
		Data:         slice.Items,
		CurrentPage:  req.Page,
		LastPage:     slice.LastPage,
		PerPage:      req.PerPage,
		Total:        slice.Total,
		FirstPageURL: pageURL(base, 1),
		LastPageURL:  pageURL(base, slice.LastPage),
		Path:         base,
		Links:        links(base, req.Page, slice.LastPage),
	}
	if slice.From > 0 {
		p.From, p.To = &slice.From, &slice.To
	}
	if req.Page < slice.LastPage {
		next := pageURL(base, req.Page+1)
		p.NextPageURL = &next
	}
	if req.Page > 1 {
		prev := pageURL(base, min(req.Page-1, slice.LastPage))
		p.PrevPageURL = &prev
	}

	h.logger.Debug(ctx, "catalog page served", "page", req.Page, "per_page", req.PerPage, "items", len(slice.Items))
	writeJSON(w, envelope{Code: common.CodeData, Message: "categories retrieved", Payload: p})
}

// Health reports liveness and the catalog size.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"status": "ok", "categories": h.store.Len()})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	u := url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path}
	return u.String()
}

func pageURL(base string, page int) string {
	return base + "?page=" + strconv.Itoa(page)
}

func links(base string, current, last int) []link {
	out := make([]link, 0, last+2)

	var prev *string
	if current > 1 {
		u := pageURL(base, current-1)
		prev = &u
	}
	out = append(out, link{URL: prev, Label: "&laquo; Previous"})

	for i := 1; i <= last; i++ {
		u := pageURL(base, i)
		out = append(out, link{URL: &u, Label: strconv.Itoa(i), Active: i == current})
	}

	var next *string
	if current < last {
		u := pageURL(base, current+1)
		next = &u
	}
	out = append(out, link{URL: next, Label: "Next &raquo;"})
	return out
}

