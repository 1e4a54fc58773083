package dashboard

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/maitri-healthcare/portal/internal/submission"
	module "github.com/maitri-healthcare/portal/internal/services/portal/module"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/authctx"
	flashnotice "github.com/maitri-healthcare/portal/internal/services/portal/platform/flash"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/i18n"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/pagerender"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/weberror"
	"github.com/maitri-healthcare/portal/internal/services/portal/routepath"
	"github.com/maitri-healthcare/portal/internal/services/portal/templates"
	"golang.org/x/text/language"
)

const emptyCell = "-"

type handlers struct {
	service service
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess, ok := authctx.SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, routepath.Login, http.StatusFound)
		return
	}
	query := submission.ParseQuery(r.URL.Query())
	result, err := h.service.load(r.Context(), sess.Token, query)
	if err != nil {
		h.forceLogout(w, r, "dashboard", err)
		return
	}

	loc, tag := i18n.ResolveLocalizer(r)
	page := submission.Paginate(result.Records, pageNumber(r), submission.PageSize)
	view := templates.DashboardView{
		Loc:       loc,
		Action:    routepath.AppDashboard,
		ResetURL:  routepath.AppDashboard,
		ExportURL: routepath.DashboardExportWithQuery(query.Values()),
		Filters: templates.DashboardFilters{
			Search:  query.Search,
			Country: query.Country,
			Start:   query.Start,
			End:     query.End,
			Filter:  query.Filter,
			OrderBy: query.OrderBy,
		},
		Countries: result.Countries,
		Headers:   columnHeaders(),
		Rows:      h.rows(page.Items, tag),
		Total:     page.Total,
		Error:     queryErrorText(result.QueryErr),
	}
	view.Pages, view.PreviousURL, view.NextURL = pageLinks(query, page)
	h.writePage(w, r, loc.Sprintf(i18n.KeyDashboardTitle), templates.Dashboard(view))
}

func (h handlers) handleExport(w http.ResponseWriter, r *http.Request) {
	sess, ok := authctx.SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, routepath.Login, http.StatusFound)
		return
	}
	query := submission.ParseQuery(r.URL.Query())
	result, err := h.service.load(r.Context(), sess.Token, query)
	if err != nil {
		h.forceLogout(w, r, "export", err)
		return
	}
	if result.QueryErr != nil {
		http.Redirect(w, r, routepath.AppDashboardWithQuery(query.Values()), http.StatusFound)
		return
	}

	var buf bytes.Buffer
	if err := submission.WriteCSV(&buf, result.Records); err != nil {
		h.deps.Logf(r.Context(), "export csv: %v", err)
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+submission.ExportFilename+`"`)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
	h.deps.Metrics.AddExported(len(result.Records))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

// forceLogout ends the session after a backend failure and sends the viewer
// home with a notice.
func (h handlers) forceLogout(w http.ResponseWriter, r *http.Request, operation string, err error) {
	h.deps.Logf(r.Context(), "%s: load submissions: %v", operation, err)
	if endErr := h.deps.Sessions.End(r.Context(), w, r); endErr != nil {
		h.deps.Logf(r.Context(), "%s: end session: %v", operation, endErr)
	}
	flashnotice.Write(w, r, flashnotice.Error(i18n.KeySessionExpired), h.deps.SchemePolicy)
	http.Redirect(w, r, routepath.Root, http.StatusFound)
}

func (h handlers) rows(items []submission.Submission, tag language.Tag) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		row := make([]string, 0, len(submission.Columns))
		for _, column := range submission.Columns {
			var value string
			if column.Key == submission.KeyCreatedAt {
				value = i18n.FormatDateTime(tag, item.CreatedAt, h.deps.DisplayLocation())
			} else {
				value = item.Value(column.Key)
			}
			if value == "" {
				value = emptyCell
			}
			row = append(row, value)
		}
		rows = append(rows, row)
	}
	return rows
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, title string, body templ.Component) {
	if err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:      title,
		StatusCode: http.StatusOK,
		Fragment:   body,
	}); err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

func columnHeaders() []string {
	headers := make([]string, 0, len(submission.Columns))
	for _, column := range submission.Columns {
		headers = append(headers, column.Key)
	}
	return headers
}

// pageNumber reads the requested page; anything unparsable is page 1.
func pageNumber(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get(submission.ParamPage))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func pageLinks(query submission.Query, page submission.Page) ([]templates.PageLink, string, string) {
	if page.TotalPages == 0 {
		return nil, "", ""
	}
	link := func(n int) string {
		values := query.Values()
		values.Set(submission.ParamPage, strconv.Itoa(n))
		return routepath.AppDashboardWithQuery(values)
	}
	links := make([]templates.PageLink, 0, page.TotalPages)
	for n := 1; n <= page.TotalPages; n++ {
		links = append(links, templates.PageLink{Number: n, URL: link(n), Active: n == page.Number})
	}
	var previous, next string
	if page.HasPrevious() {
		previous = link(page.Number - 1)
	}
	if page.HasNext() {
		next = link(page.Number + 1)
	}
	return links, previous, next
}
