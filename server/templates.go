package server

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/shopfront/storefront/guard"
	"github.com/shopfront/storefront/internal/utils"
	"github.com/shopfront/storefront/session"
)

//go:embed templates/*
var templateFiles embed.FS

const contentTypeHTML = "text/html; charset=utf-8"

func TemplateFilesFS() fs.FS {
	subFS, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic("Failed to create templates sub filesystem: " + err.Error())
	}
	return subFS
}

// ParseTemplate parses a template from the embedded filesystem
func ParseTemplate(name string) (*template.Template, error) {
	content, err := fs.ReadFile(TemplateFilesFS(), name)
	if err != nil {
		return nil, err
	}
	return template.New(name).Funcs(templateFuncs).Parse(string(content))
}

var templateFuncs = template.FuncMap{
	"printPrice": func(v float64) string {
		return formatPrice(v)
	},
	"inc": func(n int) int { return n + 1 },
	"dec": func(n int) int { return n - 1 },
}

// renderPage renders a content template inside the storefront layout.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, pageTitle, contentTemplate string, data map[string]interface{}) {
	s.renderWithLayout(w, r, "layout.html", pageTitle, contentTemplate, data)
}

// renderAdminPage renders a content template inside the admin layout.
func (s *Server) renderAdminPage(w http.ResponseWriter, r *http.Request, activePage, pageTitle, contentTemplate string, data map[string]interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}
	data["ActivePage"] = activePage
	s.renderWithLayout(w, r, "admin_layout.html", pageTitle, contentTemplate, data)
}

func (s *Server) renderWithLayout(w http.ResponseWriter, r *http.Request, layoutTemplate, pageTitle, contentTemplate string, data map[string]interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}

	sess := guard.SessionFrom(r.Context())
	data["AppName"] = s.config.GetAppName()
	data["PageTitle"] = pageTitle
	data["Authenticated"] = sess.Authenticated()
	data["IsAdmin"] = sess.Role.IsAdmin()
	data["VisitorName"] = visitorName(sess)

	contentTmpl, err := ParseTemplate(contentTemplate)
	if err != nil {
		log.Err(err).Str("template", contentTemplate).Msg("Failed to load content template")
		http.Error(w, "Failed to load page", http.StatusInternalServerError)
		return
	}

	var contentBuf strings.Builder
	if err := contentTmpl.Execute(&contentBuf, data); err != nil {
		log.Err(err).Str("template", contentTemplate).Msg("Failed to render content")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	data["Content"] = template.HTML(contentBuf.String())

	layoutTmpl, err := ParseTemplate(layoutTemplate)
	if err != nil {
		log.Err(err).Str("template", layoutTemplate).Msg("Failed to load layout template")
		http.Error(w, "Failed to load page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	_ = layoutTmpl.Execute(w, data)
}

func visitorName(sess session.Session) string {
	return utils.Value(sess.Profile).Name
}
