package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Page carries the fields every view shares with the layout: title, active
// nav section, and any flash messages popped from the previous request.
type Page struct {
	Title      string
	Active     string
	Flash      string
	FlashError string
}

// Renderer renders embedded HTML templates. Each page is parsed together with
// the layout once at startup.
type Renderer struct {
	templates map[string]*template.Template
	logger    zerolog.Logger
}

var templateFuncs = template.FuncMap{
	"currency": func(amount float64) string {
		return fmt.Sprintf("$%.2f", amount)
	},
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("Jan 2, 2006 15:04")
	},
}

var pageNames = []string{
	"customer_list",
	"customer_form",
	"product_list",
	"product_form",
	"order_list",
	"order_form",
	"order_detail",
}

// NewRenderer parses all embedded view templates.
func NewRenderer(logger zerolog.Logger) (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout.gohtml").
			Funcs(templateFuncs).
			ParseFS(templateFS, "templates/layout.gohtml", "templates/"+name+".gohtml")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return &Renderer{
		templates: templates,
		logger:    logger.With().Str("component", "renderer").Logger(),
	}, nil
}

// Render writes the named page with the given status. A template execution
// failure is logged and downgraded to a plain 500; it never panics the view.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	tmpl, ok := r.templates[page]
	if !ok {
		r.logger.Error().Str("page", page).Msg("unknown template")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.Execute(w, data); err != nil {
		r.logger.Error().Err(err).Str("page", page).Msg("template execution failed")
	}
}

const (
	flashCookie      = "flash"
	flashErrorCookie = "flash_error"
)

// setFlash stores a one-shot success message for the next request.
func setFlash(w http.ResponseWriter, msg string) {
	setFlashCookie(w, flashCookie, msg)
}

// setFlashError stores a one-shot error message for the next request.
func setFlashError(w http.ResponseWriter, msg string) {
	setFlashCookie(w, flashErrorCookie, msg)
}

func setFlashCookie(w http.ResponseWriter, name, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
}

// popFlash reads and clears both flash cookies.
func popFlash(w http.ResponseWriter, r *http.Request) (flash, flashError string) {
	flash = popFlashCookie(w, r, flashCookie)
	flashError = popFlashCookie(w, r, flashErrorCookie)
	return flash, flashError
}

func popFlashCookie(w http.ResponseWriter, r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{Name: name, Path: "/", MaxAge: -1, HttpOnly: true})

	msg, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return msg
}

// pathID extracts the numeric {id} route parameter.
func pathID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s %q", param, raw)
	}
	return id, nil
}

// redirect issues a see-other redirect, the post-redirect-get convention used
// by every mutating view.
func redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}
