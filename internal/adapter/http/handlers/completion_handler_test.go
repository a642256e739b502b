package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldops_completion/internal/adapter/http/handlers/mocks"
	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/usecase"
	"fieldops_completion/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCompletionRouter(uc usecase.ICompletionUseCase) *gin.Engine {
	h := NewCompletionHandler(uc, nil)
	r := gin.New()
	r.POST("/v1/work-orders/:id/complete", h.Complete)
	r.POST("/v1/work-orders/:id/validate", h.Validate)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body
}

func TestCompletionHandler_Complete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const path = "/v1/work-orders/WO-1/complete"

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newCompletionRouter(mocks.NewMockICompletionUseCase(ctrl))

		if w := do(r, http.MethodPost, path, "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("body names another work order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newCompletionRouter(mocks.NewMockICompletionUseCase(ctrl))

		w := do(r, http.MethodPost, path, `{"work_order_id":"WO-2","worker_id":"W1"}`)
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "WORK_ORDER_MISMATCH" {
			t.Fatalf("expected 400 WORK_ORDER_MISMATCH, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompletionUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd usecase.SubmitCommand) (entities.CompletionOutcome, error) {
			if cmd.WorkOrderID != "WO-1" || cmd.WorkerID != "W1" || cmd.Fixed.InstallType != "11" {
				t.Fatalf("unexpected command %+v", cmd)
			}
			return entities.CompletionOutcome{WorkOrderID: "WO-1", AttemptID: "A-1", Steps: []string{"submit"}}, nil
		})
		r := newCompletionRouter(uc)

		w := do(r, http.MethodPost, path, `{"worker_id":"W1","fixed":{"install_type":"11"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["attempt_id"] != "A-1" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
		detail string
	}{
		{"validation", &usecase.ValidationError{Messages: []string{"install type is required", "completion date is required"}}, http.StatusUnprocessableEntity, "VALIDATION_FAILED", "install type is required"},
		{"blocking", &usecase.BlockingError{Step: usecase.StepSignal, Reason: "PROC_VOIP_KCT-001"}, http.StatusConflict, "BLOCKING_FAILURE", "signal: PROC_VOIP_KCT-001"},
		{"needs confirmation", &usecase.SignalConfirmationError{Message: "STB offline"}, http.StatusConflict, "SIGNAL_CONFIRMATION_REQUIRED", "STB offline"},
		{"rejected", &usecase.SubmissionError{Message: "E999 closed"}, http.StatusBadGateway, "SUBMISSION_REJECTED", "E999 closed"},
		{"already completed", usecase.ErrWorkOrderCompleted, http.StatusConflict, "WORK_ORDER_COMPLETED", ""},
		{"in progress", usecase.ErrSubmissionInProgress, http.StatusConflict, "COMPLETION_IN_PROGRESS", ""},
		{"not open", usecase.ErrSessionNotFound, http.StatusNotFound, "WORK_ORDER_NOT_OPEN", ""},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockICompletionUseCase(ctrl)
			uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.CompletionOutcome{}, tc.err)
			r := newCompletionRouter(uc)

			w := do(r, http.MethodPost, path, `{"worker_id":"W1"}`)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			body := decodeError(t, w)
			if body.Code != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, body.Code)
			}
			if tc.detail != "" && (len(body.Details) == 0 || body.Details[0] != tc.detail) {
				t.Fatalf("expected detail %q, got %v", tc.detail, body.Details)
			}
		})
	}

	t.Run("confirmation answer reaches the pipeline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompletionUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, cmd usecase.SubmitCommand) (entities.CompletionOutcome, error) {
			if cmd.Confirmer == nil || !cmd.Confirmer.ConfirmSignalFailure(ctx, "x") {
				t.Fatalf("expected confirmer answering yes")
			}
			return entities.CompletionOutcome{WorkOrderID: "WO-1"}, nil
		})
		r := newCompletionRouter(uc)

		if w := do(r, http.MethodPost, path, `{"worker_id":"W1","confirm_signal_failure":true}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCompletionHandler_Validate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICompletionUseCase(ctrl)
	uc.EXPECT().Validate(gomock.Any(), "WO-1", gomock.Any()).Return([]string{"completion date is before the termination hope date"}, nil)
	r := newCompletionRouter(uc)

	w := do(r, http.MethodPost, "/v1/work-orders/WO-1/validate", `{"fixed":{}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Valid    bool     `json:"valid"`
		Warnings []string `json:"warnings"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if !body.Valid || len(body.Warnings) != 1 {
		t.Fatalf("unexpected body %+v", body)
	}
}
