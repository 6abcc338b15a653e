package web

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"localnews/internal/client"
	"localnews/internal/domain/entity"
	"localnews/internal/handler/http/pathutil"
	"localnews/internal/render"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server renders the reader-facing pages.
type Server struct {
	cfg    Config
	api    client.Fetcher
	logger *slog.Logger
	tmpl   *template.Template
}

// NewServer parses the page templates and returns a Server that fetches
// from the given API client.
func NewServer(cfg Config, api client.Fetcher, logger *slog.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Server{cfg: cfg, api: api, logger: logger, tmpl: tmpl}, nil
}

// Routes returns the web server's handler.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /article/{id}", s.handleDetail)
	mux.HandleFunc("GET /", s.handleNotFound)
	return mux
}

// card is one article prepared for the list page.
type card struct {
	ID            int64
	Title         string
	Category      string
	Snippet       string
	ImageURL      string
	FallbackURL   string
	Date          string
	FormattedDate string
}

// cardGroup is one category section on the grouped home page.
type cardGroup struct {
	Category string
	Icon     string
	Cards    []card
}

type homeData struct {
	Site       SiteConfig
	Categories []string
	Selected   string
	Title      string
	Subtitle   string
	Error      string
	Grouped    bool
	Groups     []cardGroup
	Cards      []card
	Year       int
}

func newCard(id int64, title, category, content string, imageURL *string, date string) card {
	return card{
		ID:            id,
		Title:         title,
		Category:      category,
		Snippet:       render.Snippet(content),
		ImageURL:      render.ImageOrFallback(imageURL, render.CardFallbackImageURL),
		FallbackURL:   render.CardFallbackImageURL,
		Date:          date,
		FormattedDate: render.FormatDate(date),
	}
}

// toEntities adapts API articles for the grouping helper.
func toEntities(arts []client.Article) []*entity.Article {
	out := make([]*entity.Article, 0, len(arts))
	for i := range arts {
		a := arts[i]
		out = append(out, &entity.Article{
			ID:       a.ID,
			Title:    a.Title,
			Category: entity.Category(a.Category),
			Content:  a.Content,
			ImageURL: a.ImageURL,
			Date:     a.Date,
		})
	}
	return out
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	selected := r.URL.Query().Get("category")
	if selected == "All" {
		selected = ""
	}

	view := client.NewListView(s.api)
	state := view.Load(r.Context(), selected)

	data := homeData{
		Site:       s.cfg.Site,
		Categories: entity.CategoryNames(),
		Selected:   selected,
		Error:      state.Error,
		Year:       time.Now().Year(),
	}
	if selected == "" {
		data.Title = "Latest News"
		data.Subtitle = "Stay updated with the latest stories from our community"
		data.Grouped = true
		for _, g := range render.GroupByCategory(toEntities(state.Articles)) {
			group := cardGroup{
				Category: string(g.Category),
				Icon:     render.CategoryIcon(g.Category),
			}
			for _, a := range g.Articles {
				group.Cards = append(group.Cards, newCard(a.ID, a.Title, string(a.Category), a.Content, a.ImageURL, a.Date))
			}
			data.Groups = append(data.Groups, group)
		}
	} else {
		data.Title = selected + " News"
		data.Subtitle = "Latest stories in " + strings.ToLower(selected)
		for _, a := range state.Articles {
			data.Cards = append(data.Cards, newCard(a.ID, a.Title, a.Category, a.Content, a.ImageURL, a.Date))
		}
	}

	s.renderPage(w, "home.html", data)
}

// detailData carries everything the detail template shows, precomputed
// so the template stays logic-free.
type detailData struct {
	Site          SiteConfig
	Categories    []string
	Selected      string
	Error         string
	Title         string
	Category      string
	Icon          string
	FormattedDate string
	Date          string
	ImageURL      string
	FallbackURL   string
	Paragraphs    []string
	WordCount     int
	ReadTime      int
	PageURL       string
	FacebookURL   string
	TwitterURL    string
	MailtoURL     string
	Year          int
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	data := detailData{Site: s.cfg.Site, Categories: entity.CategoryNames(), Year: time.Now().Year()}

	id, err := pathutil.ExtractID(r.URL.Path, "/article/")
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		data.Error = "The article you're looking for doesn't exist or has been removed."
		s.renderPage(w, "detail.html", data)
		return
	}

	view := client.NewDetailView(s.api)
	state := view.Load(r.Context(), id)
	if state.Error != "" || state.Article == nil {
		w.WriteHeader(http.StatusNotFound)
		if state.Error != "" {
			data.Error = state.Error
		} else {
			data.Error = "The article you're looking for doesn't exist or has been removed."
		}
		s.renderPage(w, "detail.html", data)
		return
	}

	art := state.Article
	pageURL := requestURL(r)

	data.Title = art.Title
	data.Category = art.Category
	data.Icon = render.CategoryIcon(entity.Category(art.Category))
	data.FormattedDate = render.FormatDate(art.Date)
	data.Date = art.Date
	data.ImageURL = render.ImageOrFallback(art.ImageURL, render.DetailFallbackImageURL)
	data.FallbackURL = render.DetailFallbackImageURL
	data.Paragraphs = render.Paragraphs(art.Content)
	data.WordCount = render.WordCount(art.Content)
	data.ReadTime = render.ReadTime(art.Content)
	data.PageURL = pageURL
	data.FacebookURL = render.FacebookShareURL(pageURL, art.Title)
	data.TwitterURL = render.TwitterShareURL(pageURL, art.Title)
	data.MailtoURL = render.MailtoShareURL(pageURL, art.Title)

	s.renderPage(w, "detail.html", data)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}

// requestURL reconstructs the absolute URL of the current page.
func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host + r.URL.Path
}

func (s *Server) renderPage(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("failed to render template", "template", name, "error", err)
	}
}
