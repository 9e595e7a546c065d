package handler

import (
	"bytes"
	"embed"
	"errors"
	"expense-tracker/common"
	"expense-tracker/logger"
	"expense-tracker/model"
	"expense-tracker/service"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(
	template.New("index.html").
		Funcs(template.FuncMap{"rupiah": common.FormatRupiah}).
		ParseFS(templatesFS, "templates/index.html"),
)

// pageView is the state rendered by the tracker page: the pending form, its
// per-field errors and the grouped history from the latest fetch.
type pageView struct {
	Form   model.TransactionForm
	Errors map[string]string
	Groups []model.GroupedTransactions
}

// PageHandler serves the HTML form and history.
type PageHandler struct {
	service *service.TransactionService
}

func NewPageHandler(s *service.TransactionService) *PageHandler {
	return &PageHandler{service: s}
}

// Index renders an empty form and the current history.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) *common.AppError {
	view := pageView{
		Form:   model.TransactionForm{Type: string(model.TypeIncome)},
		Groups: h.fetchGroups(r),
	}
	return h.render(w, http.StatusOK, view)
}

// Submit handles the form post: validate, insert, re-fetch, render.
// Store failures are logged only; the typed values stay in the form.
func (h *PageHandler) Submit(w http.ResponseWriter, r *http.Request) *common.AppError {
	if err := r.ParseForm(); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid form submission", err)
	}

	form := model.TransactionForm{
		Amount:      r.PostFormValue("amount"),
		Description: r.PostFormValue("description"),
		Type:        r.PostFormValue("type"),
	}
	view := pageView{Form: form}

	groups, transaction, err := h.service.Submit(r.Context(), form)

	var vErr *service.ValidationError
	switch {
	case err == nil:
		view.Groups = groups
		view.Form.Amount = ""
		view.Form.Description = ""
	case errors.As(err, &vErr):
		view.Errors = vErr.Fields
		view.Groups = h.fetchGroups(r)
		return h.render(w, http.StatusBadRequest, view)
	case transaction != nil:
		logger.Log.WithError(err).Error("Failed to re-fetch transactions after insert")
		view.Form.Amount = ""
		view.Form.Description = ""
		view.Groups = []model.GroupedTransactions{}
	default:
		logger.Log.WithError(err).WithFields(logrus.Fields{
			"type":   form.Type,
			"amount": form.Amount,
		}).Error("Failed to save transaction from form")
		view.Groups = h.fetchGroups(r)
	}

	return h.render(w, http.StatusOK, view)
}

func (h *PageHandler) fetchGroups(r *http.Request) []model.GroupedTransactions {
	groups, err := h.service.ListGrouped(r.Context())
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch transactions for page")
		return []model.GroupedTransactions{}
	}
	return groups
}

func (h *PageHandler) render(w http.ResponseWriter, status int, view pageView) *common.AppError {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not render page", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
	return nil
}
