package api

import "github.com/tedsuo/rata"

const (
	Index        = "Index"
	EvaluateForm = "EvaluateForm"
	EvaluateAPI  = "EvaluateAPI"
)

var Routes = rata.Routes{
	{Path: "/", Method: "GET", Name: Index},
	{Path: "/", Method: "POST", Name: EvaluateForm},
	{Path: "/api/evaluate", Method: "POST", Name: EvaluateAPI},
}
