package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"surveygate/internal/intake"
	"surveygate/internal/intake/service"
	"surveygate/internal/intake/validate"
	"surveygate/internal/ocr"
	"surveygate/internal/reconcile"
	"surveygate/internal/transport/http/mocks"
	"surveygate/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	svc    *mocks.MockService
	router chi.Router
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.svc = mocks.NewMockService(s.ctrl)

	handler := New(s.svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.router = chi.NewRouter()
	handler.Register(s.router)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) TestValidate() {
	s.Run("valid request returns the evaluation", func() {
		record := intake.Record{"name": "テスト太郎"}
		eval := service.Evaluation{
			Validation: validate.Summary{
				Issues: []validate.Issue{{
					Field:    "email",
					Severity: validate.SeverityCritical,
					Message:  "メールアドレスが未記入です",
				}},
				BlankCount:    1,
				CriticalCount: 1,
			},
		}
		s.svc.EXPECT().Evaluate(gomock.Any(), record).Return(eval)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/intake/validate",
			map[string]any{"record": record})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		got := testutil.UnmarshalResponse[service.Evaluation](s.T(), rr)
		s.Equal(1, got.Validation.CriticalCount)
		s.Equal("email", got.Validation.Issues[0].Field)
	})

	s.Run("malformed body is a 400", func() {
		req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/intake/validate", "{nope")
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})

	s.Run("missing record is a 400", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/intake/validate",
			map[string]any{})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
		got := testutil.UnmarshalResponse[map[string]string](s.T(), rr)
		s.Equal("record is required", (*got)["error"])
	})
}

func (s *HandlerSuite) TestReconcile() {
	s.Run("record and blocks are passed through", func() {
		record := intake.Record{"name": ""}
		blocks := []ocr.TextBlock{{Text: "お名前: 田中太郎", Confidence: 0.95}}
		outcome := reconcile.Outcome{
			Record:       intake.Record{"name": "田中太郎"},
			FilledFields: []string{"name"},
		}
		s.svc.EXPECT().Reconcile(gomock.Any(), record, blocks).Return(outcome)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/intake/reconcile",
			map[string]any{"record": record, "textBlocks": blocks})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		got := testutil.UnmarshalResponse[reconcile.Outcome](s.T(), rr)
		s.Equal([]string{"name"}, got.FilledFields)
		s.Equal("田中太郎", got.Record["name"])
	})

	s.Run("absent record defaults to an empty one", func() {
		s.svc.EXPECT().
			Reconcile(gomock.Any(), intake.Record{}, gomock.Nil()).
			Return(reconcile.Outcome{Record: intake.Record{}})

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/intake/reconcile",
			map[string]any{})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})

	s.Run("malformed body is a 400", func() {
		req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/intake/reconcile", "[")
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})
}

func (s *HandlerSuite) TestHealthz() {
	req := testutil.NewJSONRequest(s.T(), http.MethodGet, "/healthz", nil)
	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	got := testutil.UnmarshalResponse[map[string]string](s.T(), rr)
	s.Equal("ok", (*got)["status"])
}
