package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/technical-param/password-checker-web/api"
	"github.com/technical-param/password-checker-web/api/apifakes"
	"github.com/technical-param/password-checker-web/log"
	"github.com/technical-param/password-checker-web/strength"
)

var _ = Describe("Handlers", func() {
	var (
		fakeEvaluator *apifakes.FakeEvaluator
		router        http.Handler
	)

	goodResult := func() strength.Result {
		count := 0
		return strength.Result{
			Score:   8,
			Label:   "Strong",
			Reasons: nil,
			Entropy: 82.7,
			Breach:  &count,
			Tips:    []string{"Enable MFA for important accounts."},
		}
	}

	BeforeEach(func() {
		fakeEvaluator = &apifakes.FakeEvaluator{}

		var err error
		router, err = api.NewRouter(log.NewNullLogger(), fakeEvaluator)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("POST /api/evaluate", func() {
		It("evaluates the submitted password and returns JSON", func() {
			fakeEvaluator.EvaluateReturns(goodResult())

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest("POST", "/api/evaluate", strings.NewReader(`{"password":"hunter2!"}`))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

			Expect(fakeEvaluator.EvaluateCallCount()).To(Equal(1))
			_, password := fakeEvaluator.EvaluateArgsForCall(0)
			Expect(password).To(Equal("hunter2!"))

			var body map[string]interface{}
			Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
			Expect(body["score"]).To(BeNumerically("==", 8))
			Expect(body["label"]).To(Equal("Strong"))
			Expect(body["entropy"]).To(BeNumerically("~", 82.7, 0.001))
			Expect(body["breach"]).To(BeNumerically("==", 0))
			Expect(body).NotTo(HaveKey("password"), "the password is never echoed back")
		})

		It("renders a null breach count when the lookup failed", func() {
			result := goodResult()
			result.Breach = nil
			fakeEvaluator.EvaluateReturns(result)

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest("POST", "/api/evaluate", strings.NewReader(`{"password":"x"}`))
			router.ServeHTTP(recorder, request)

			var body map[string]interface{}
			Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
			Expect(body).To(HaveKey("breach"))
			Expect(body["breach"]).To(BeNil())
		})

		It("rejects bodies that are not JSON", func() {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest("POST", "/api/evaluate", strings.NewReader("not json"))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(fakeEvaluator.EvaluateCallCount()).To(Equal(0))
		})
	})

	Describe("GET /", func() {
		It("renders the form without a result", func() {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest("GET", "/", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Header().Get("Content-Type")).To(ContainSubstring("text/html"))
			Expect(recorder.Body.String()).To(ContainSubstring(`name="password"`))
			Expect(fakeEvaluator.EvaluateCallCount()).To(Equal(0))
		})
	})

	Describe("POST /", func() {
		It("evaluates the form password and renders the verdict", func() {
			fakeEvaluator.EvaluateReturns(goodResult())

			form := url.Values{"password": []string{"hunter2!"}}
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
			request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring("Strong"))
			Expect(recorder.Body.String()).NotTo(ContainSubstring("hunter2!"))

			Expect(fakeEvaluator.EvaluateCallCount()).To(Equal(1))
			_, password := fakeEvaluator.EvaluateArgsForCall(0)
			Expect(password).To(Equal("hunter2!"))
		})
	})
})
