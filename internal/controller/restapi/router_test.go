package restapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/andreyxaxa/Image-Transformer/config"
	"github.com/andreyxaxa/Image-Transformer/internal/controller"
	"github.com/andreyxaxa/Image-Transformer/internal/controller/restapi"
	"github.com/andreyxaxa/Image-Transformer/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/Image-Transformer/internal/entity"
	"github.com/andreyxaxa/Image-Transformer/internal/repo/persistent"
	"github.com/andreyxaxa/Image-Transformer/pkg/logger"
	"github.com/andreyxaxa/Image-Transformer/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type convSubmitter struct {
	reqs []entity.ConversionRequest
	err  error
}

func (s *convSubmitter) Submit(_ context.Context, req entity.ConversionRequest) error {
	if s.err != nil {
		return s.err
	}
	s.reqs = append(s.reqs, req)
	return nil
}

type resizeSubmitter struct {
	reqs []entity.ResizeRequest
	err  error
}

func (s *resizeSubmitter) Submit(_ context.Context, req entity.ResizeRequest) error {
	if s.err != nil {
		return s.err
	}
	s.reqs = append(s.reqs, req)
	return nil
}

func newApp(conv controller.ConversionSubmitter, rs controller.ResizeSubmitter) *fiber.App {
	return newAppWith(&config.Config{}, conv, rs, persistent.NewResultMemoryRepo(time.Minute))
}

func newAppWith(cfg *config.Config, conv controller.ConversionSubmitter, rs controller.ResizeSubmitter,
	results controller.ResultReader,
) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: restapi.ErrorHandler})
	restapi.NewRouter(app, cfg, conv, rs, results, logger.New("error"))
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, b
}

func TestHealthz(t *testing.T) {
	status, body := do(t, newApp(&convSubmitter{}, &resizeSubmitter{}), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", string(body))
}

func TestConvert_Accepted(t *testing.T) {
	conv := &convSubmitter{}
	app := newApp(conv, &resizeSubmitter{})

	status, body := do(t, app, http.MethodPost, "/v1/convert", `{"paths":["a.png","b.jpg"],"quality":60}`)
	require.Equal(t, http.StatusAccepted, status)

	var got response.Accepted
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "convert", got.Operation)
	assert.Equal(t, 2, got.Paths)

	require.Len(t, conv.reqs, 1)
	assert.Equal(t, conv.reqs[0].ID.String(), got.RequestID)
	assert.Equal(t, []string{"a.png", "b.jpg"}, conv.reqs[0].Paths)
	assert.Equal(t, 60.0, conv.reqs[0].Quality)
}

func TestResize_Accepted(t *testing.T) {
	rs := &resizeSubmitter{}
	app := newApp(&convSubmitter{}, rs)

	status, body := do(t, app, http.MethodPost, "/v1/resize",
		`{"paths":["s3://bucket/a.webp"],"width_factor":0.5,"height_factor":0.75}`)
	require.Equal(t, http.StatusAccepted, status)

	var got response.Accepted
	require.NoError(t, json.Unmarshal(body, &got))
	_, err := uuid.Parse(got.RequestID)
	require.NoError(t, err)
	assert.Equal(t, "resize", got.Operation)

	require.Len(t, rs.reqs, 1)
	assert.Equal(t, 0.5, rs.reqs[0].WidthFactor)
	assert.Equal(t, 0.75, rs.reqs[0].HeightFactor)
}

func TestTransform_BadRequest(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
	}{
		{"convert not json", "/v1/convert", `{`},
		{"convert no paths", "/v1/convert", `{"quality":10}`},
		{"convert no quality", "/v1/convert", `{"paths":["a.png"]}`},
		{"convert quality too low", "/v1/convert", `{"paths":["a.png"],"quality":-1}`},
		{"resize zero factor", "/v1/resize", `{"paths":["a.png"],"width_factor":0,"height_factor":1}`},
		{"resize missing factor", "/v1/resize", `{"paths":["a.png"],"width_factor":1}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			conv := &convSubmitter{}
			rs := &resizeSubmitter{}

			status, body := do(t, newApp(conv, rs), http.MethodPost, tc.target, tc.body)
			assert.Equal(t, http.StatusBadRequest, status)

			var got response.Error
			require.NoError(t, json.Unmarshal(body, &got))
			assert.NotEmpty(t, got.Error)

			assert.Empty(t, conv.reqs)
			assert.Empty(t, rs.reqs)
		})
	}
}

func TestTransform_Unavailable(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"closed", errs.ErrListenerClosed, "shutting down"},
		{"busy", context.DeadlineExceeded, "queue is busy"},
		{"wrapped closed", errors.Join(errors.New("listener"), errs.ErrListenerClosed), "shutting down"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := newApp(&convSubmitter{err: tc.err}, &resizeSubmitter{err: tc.err})

			for _, call := range []struct{ target, body string }{
				{"/v1/convert", `{"paths":["a.png"],"quality":1}`},
				{"/v1/resize", `{"paths":["a.png"],"width_factor":1,"height_factor":1}`},
			} {
				status, body := do(t, app, http.MethodPost, call.target, call.body)
				assert.Equal(t, http.StatusServiceUnavailable, status)

				var got response.Error
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, tc.message, got.Error)
			}
		})
	}
}

type panickingSubmitter struct{}

func (panickingSubmitter) Submit(context.Context, entity.ConversionRequest) error {
	panic("listener exploded")
}

// blockingSubmitter waits for the submit context, like a listener with a full queue.
type blockingSubmitter struct{}

func (blockingSubmitter) Submit(ctx context.Context, _ entity.ResizeRequest) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestErrorHandler(t *testing.T) {
	app := newApp(panickingSubmitter{}, &resizeSubmitter{})

	status, body := do(t, app, http.MethodGet, "/v1/unknown", "")
	assert.Equal(t, http.StatusNotFound, status)

	var got response.Error
	require.NoError(t, json.Unmarshal(body, &got))
	assert.NotEmpty(t, got.Error)

	status, body = do(t, app, http.MethodPost, "/v1/convert", `{"paths":["a.png"],"quality":50}`)
	assert.Equal(t, http.StatusInternalServerError, status)
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Contains(t, got.Error, "listener exploded")
}

func TestSubmit_TimesOutOnFullQueue(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.SubmitTimeout = 50 * time.Millisecond

	app := newAppWith(cfg, &convSubmitter{}, blockingSubmitter{}, persistent.NewResultMemoryRepo(time.Minute))

	start := time.Now()
	status, body := do(t, app, http.MethodPost, "/v1/resize", `{"paths":["a.png"],"width_factor":1,"height_factor":1}`)
	assert.Less(t, time.Since(start), 900*time.Millisecond)

	assert.Equal(t, http.StatusServiceUnavailable, status)

	var got response.Error
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "queue is busy", got.Error)
}

func TestResults(t *testing.T) {
	ctx := context.Background()
	store := persistent.NewResultMemoryRepo(time.Minute)
	app := newAppWith(&config.Config{}, &convSubmitter{}, &resizeSubmitter{}, store)

	id := uuid.New()
	completed := entity.ConversionCompleted("a.png", []byte("webp-bytes"))
	completed.RequestID = id.String()
	failed := entity.ConversionFailed("b.png", errors.New("decode failed"))
	failed.RequestID = id.String()
	require.NoError(t, store.Append(ctx, completed, failed))

	status, body := do(t, app, http.MethodGet, "/v1/results/"+id.String(), "")
	require.Equal(t, http.StatusOK, status)

	var got response.Results
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, id.String(), got.RequestID)
	require.Len(t, got.Outcomes, 2)
	assert.Equal(t, response.Outcome{Type: "conversion_completed", Input: "a.png", Output: []byte("webp-bytes")}, got.Outcomes[0])
	assert.Equal(t, response.Outcome{Type: "conversion_failed", Input: "b.png", Error: "decode failed"}, got.Outcomes[1])

	status, _ = do(t, app, http.MethodGet, "/v1/results/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = do(t, app, http.MethodGet, "/v1/results/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

type failingResults struct{}

func (failingResults) Results(context.Context, string) ([]*entity.Event, error) {
	return nil, errs.ErrIO
}

func TestResults_StoreError(t *testing.T) {
	app := newAppWith(&config.Config{}, &convSubmitter{}, &resizeSubmitter{}, failingResults{})

	status, _ := do(t, app, http.MethodGet, "/v1/results/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestSwagger(t *testing.T) {
	cfg := &config.Config{}

	status, _ := do(t, newAppWith(cfg, &convSubmitter{}, &resizeSubmitter{}, failingResults{}),
		http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusNotFound, status)

	cfg.Swagger.Enabled = true

	status, body := do(t, newAppWith(cfg, &convSubmitter{}, &resizeSubmitter{}, failingResults{}),
		http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "/v1/results/{id}")
	assert.Contains(t, string(body), "Image transformer")
}
