package api

import (
	"bytes"
	"html/template"
	"net/http"

	"code.cloudfoundry.org/lager"

	"github.com/technical-param/password-checker-web/strength"
)

type IndexHandler struct {
	logger    lager.Logger
	template  *template.Template
	evaluator Evaluator
}

func NewIndexHandler(logger lager.Logger, evaluator Evaluator) (*IndexHandler, error) {
	t, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, err
	}

	return &IndexHandler{
		logger:    logger,
		template:  t,
		evaluator: evaluator,
	}, nil
}

type indexPage struct {
	Result *strength.Result
}

func (h *IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.Session("index")

	page := indexPage{}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			logger.Error("failed-to-parse-form", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		result := h.evaluator.Evaluate(logger, r.PostFormValue("password"))
		page.Result = &result
	}

	buf := bytes.NewBuffer([]byte{})
	if err := h.template.Execute(buf, page); err != nil {
		logger.Error("failed-to-execute-template", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
