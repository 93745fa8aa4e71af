package label

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-kit/kit/log"

	"github.com/oracom/socolissimo/colissimo"
	"github.com/oracom/socolissimo/journal"
)

//HandlerConfig to create mux
type HandlerConfig struct {
	Service colissimo.LetterService
	Journal journal.Journal
	Loader  *Downloader
	Logger  log.Logger
}

type proxy struct {
	mux    *chi.Mux
	config *HandlerConfig
}

func (p *proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.mux.ServeHTTP(w, r)
}

//NewHandler creates http.Handler
func NewHandler(config *HandlerConfig) http.Handler {
	return &proxy{
		config: config,
		mux:    createRouter(config),
	}
}

//createRouter creates chi.Mux
func createRouter(config *HandlerConfig) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Route("/api", func(r chi.Router) {
		r.Post("/letter", config.CreateLetter)
		r.Get("/letter/{parcelNumber}", config.GetLetterPDF)
		r.Get("/letters", config.ListLetters)
		r.Get("/health", config.Health)
	})
	return r
}

// LetterRequest is the JSON body of POST /api/letter, the four caller
// mappings as defined by the web service schema.
type LetterRequest struct {
	ServiceCallContext colissimo.ServiceCallContext `json:"service_call_context"`
	Parcel             colissimo.Parcel             `json:"parcel"`
	Recipient          colissimo.Recipient          `json:"recipient"`
	Sender             colissimo.Sender             `json:"sender"`
}

// LetterResponse is the JSON reply of POST /api/letter.
type LetterResponse struct {
	ParcelNumber string `json:"parcelNumber"`
	PDFURL       string `json:"pdfUrl"`
}

func (c *HandlerConfig) CreateLetter(w http.ResponseWriter, r *http.Request) {
	var req LetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	parcelNumber, pdfURL, err := c.Service.GetLetter(r.Context(), req.ServiceCallContext, req.Parcel, req.Recipient, req.Sender)
	if err != nil {
		c.Logger.Log("op", "CreateLetter", "err", err.Error())
		var svcErr *colissimo.ServiceError
		if errors.As(err, &svcErr) {
			render.Render(w, r, ErrRemote(err))
		} else {
			render.Render(w, r, ErrInvalidRequest(err))
		}
		return
	}

	if c.Journal != nil {
		entry := journal.Entry{
			ParcelNumber:  parcelNumber,
			CommandNumber: req.ServiceCallContext.CommandNumber,
			Addressee:     fmt.Sprintf("%s %s", req.Recipient.Address.Surname, req.Recipient.Address.Name),
			City:          req.Recipient.Address.City,
			PostalCode:    req.Recipient.Address.PostalCode,
			CountryCode:   req.Recipient.Address.CountryCode,
			PDFURL:        pdfURL,
		}
		if err := c.Journal.Record(r.Context(), entry); err != nil {
			//the label is already issued, log and keep going
			c.Logger.Log("op", "CreateLetter", "journal err", err.Error())
		}
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, LetterResponse{ParcelNumber: parcelNumber, PDFURL: pdfURL})
}

func (c *HandlerConfig) GetLetterPDF(w http.ResponseWriter, r *http.Request) {
	parcelNumber := chi.URLParam(r, "parcelNumber")
	if parcelNumber == "" {
		render.Render(w, r, ErrNotFound)
		return
	}
	if c.Journal == nil || c.Loader == nil {
		render.Render(w, r, ErrNotConfigured)
		return
	}

	entry, err := c.Journal.Load(r.Context(), parcelNumber)
	if err != nil {
		c.Logger.Log("op", "GetLetterPDF", "err", err.Error())
		render.Render(w, r, ErrNotFound)
		return
	}

	lbl, err := c.Loader.Fetch(r.Context(), entry.ParcelNumber, entry.PDFURL)
	if err != nil {
		c.Logger.Log("op", "GetLetterPDF", "err", err.Error())
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", lbl.FileName))
	http.ServeFile(w, r, lbl.LocalPath)
}

func (c *HandlerConfig) ListLetters(w http.ResponseWriter, r *http.Request) {
	if c.Journal == nil {
		render.Render(w, r, ErrNotConfigured)
		return
	}
	since := time.Time{}
	if s := r.URL.Query().Get("since"); s != "" {
		var err error
		since, err = time.Parse(time.RFC3339, s)
		if err != nil {
			render.Render(w, r, ErrInvalidRequest(err))
			return
		}
	}
	entries, err := c.Journal.List(r.Context(), since)
	if err != nil {
		c.Logger.Log("op", "ListLetters", "err", err.Error())
		render.Render(w, r, ErrRender(err))
		return
	}
	render.JSON(w, r, entries)
}

func (c *HandlerConfig) Health(w http.ResponseWriter, r *http.Request) {
	ok, err := c.Service.CheckService(r.Context())
	if err != nil {
		c.Logger.Log("op", "Health", "err", err.Error())
		render.Render(w, r, ErrRemote(err))
		return
	}
	render.JSON(w, r, map[string]bool{"ok": ok})
}

//--
// Error response payloads & renderers
//--

// ErrResponse renderer type for handling all sorts of errors.
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText string `json:"status"`          // user-level status message
	AppCode    int64  `json:"code,omitempty"`  // application-specific error code
	ErrorText  string `json:"error,omitempty"` // application-level error message, for debugging
}

//Render implement Renderer
func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if e.HTTPStatusCode == 0 {
		e.HTTPStatusCode = 400
	}
	if e.ErrorText == "" && e.Err != nil {
		e.ErrorText = e.Err.Error()
	}
	render.Status(r, e.HTTPStatusCode)
	return nil
}

//ErrInvalidRequest creates ErrInvalidRequest response from error
func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

//ErrRemote creates ErrRemote response from error
func ErrRemote(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 502,
		StatusText:     "Web service error.",
		ErrorText:      err.Error(),
	}
}

//ErrRender creates ErrRender response from error
func ErrRender(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 422,
		StatusText:     "Error rendering response.",
		ErrorText:      err.Error(),
	}
}

//ErrNotFound creates ErrNotFound response
var ErrNotFound = &ErrResponse{HTTPStatusCode: 404, StatusText: "Resource not found."}

//ErrNotConfigured creates ErrNotConfigured response
var ErrNotConfigured = &ErrResponse{HTTPStatusCode: 501, StatusText: "Not configured."}
