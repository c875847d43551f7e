package chi

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/kailas-cloud/surveyfront/internal/view"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// pageData is what the page template renders from a UI state.
type pageData struct {
	Query   string
	Loading bool
	Alert   string
	Headers [view.ColumnCount]string
	Rows    []view.Row
}

func newPageData(st *view.State) pageData {
	return pageData{
		Query:   st.Input(),
		Loading: st.Loading.Visible(),
		Alert:   st.LastAlert(),
		Headers: view.Headers,
		Rows:    st.Table.Rows(),
	}
}

// renderPage writes st as an HTML page. The template is executed into a
// buffer first so a template error never leaves a half-written page.
func (s *Server) renderPage(w http.ResponseWriter, status int, st *view.State) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, newPageData(st)); err != nil {
		s.logger.Error("render page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
