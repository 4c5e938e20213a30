// Package api exposes the strength evaluator over HTTP: a server-rendered
// form for browsers and a JSON endpoint for everything else.
package api

import (
	"net/http"

	"code.cloudfoundry.org/lager"
	"github.com/tedsuo/rata"

	"github.com/technical-param/password-checker-web/strength"
)

//go:generate counterfeiter . Evaluator

type Evaluator interface {
	Evaluate(logger lager.Logger, password string) strength.Result
}

func NewRouter(logger lager.Logger, evaluator Evaluator) (http.Handler, error) {
	index, err := NewIndexHandler(logger, evaluator)
	if err != nil {
		return nil, err
	}

	return rata.NewRouter(Routes, rata.Handlers{
		Index:        index,
		EvaluateForm: index,
		EvaluateAPI:  NewEvaluateHandler(logger, evaluator),
	})
}
