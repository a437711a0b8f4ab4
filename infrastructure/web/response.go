package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// NoResponse tells the Respond function to not respond to the request. In these
// cases the app layer code has already done so.
type NoResponse struct{}

// NewNoResponse constructs a no reponse value.
func NewNoResponse() NoResponse {
	return NoResponse{}
}

// Encode implements the Encoder interface.
func (NoResponse) Encode() ([]byte, string, error) {
	return nil, "", nil
}

// JSONResponse represents a JSON response with generic data type
type JSONResponse[T any] struct {
	Data   T
	Status int
}

func (j *JSONResponse[T]) Encode() ([]byte, string, error) {
	data, err := json.Marshal(j.Data)
	if err != nil {
		return nil, "", err
	}
	return data, "application/json; charset=utf-8", nil
}

func (j *JSONResponse[T]) HTTPStatus() int {
	if j.Status == 0 {
		return http.StatusOK
	}
	return j.Status
}

func NewJSONResponse[T any](data T) *JSONResponse[T] {
	return &JSONResponse[T]{Data: data}
}

func NewJSONResponseWithStatus[T any](data T, status int) *JSONResponse[T] {
	return &JSONResponse[T]{Data: data, Status: status}
}

// HTMLResponse carries an already rendered document.
type HTMLResponse struct {
	Body   []byte
	Status int
}

func NewHTMLResponse(body []byte) *HTMLResponse {
	return &HTMLResponse{Body: body}
}

func (h *HTMLResponse) Encode() ([]byte, string, error) {
	return h.Body, "text/html; charset=utf-8", nil
}

func (h *HTMLResponse) HTTPStatus() int {
	if h.Status == 0 {
		return http.StatusOK
	}
	return h.Status
}

// RawResponse carries an already encoded document of any content type.
type RawResponse struct {
	Body        []byte
	ContentType string
	Status      int
}

func NewRawResponse(body []byte, contentType string) *RawResponse {
	return &RawResponse{Body: body, ContentType: contentType}
}

func (r *RawResponse) Encode() ([]byte, string, error) {
	return r.Body, r.ContentType, nil
}

func (r *RawResponse) HTTPStatus() int {
	if r.Status == 0 {
		return http.StatusOK
	}
	return r.Status
}

// =============================================================================

type httpStatus interface {
	HTTPStatus() int
}

// StatusOf reports the status Respond writes for resp: the encoder's own
// HTTPStatus, 500 for a bare error, 204 for nil and 200 otherwise.
func StatusOf(resp Encoder) int {
	switch v := resp.(type) {
	case httpStatus:
		return v.HTTPStatus()
	case error:
		return http.StatusInternalServerError
	case nil:
		return http.StatusNoContent
	default:
		return http.StatusOK
	}
}

// ErrClientGone is returned by Respond when the request context was
// canceled before anything was written.
var ErrClientGone = errors.New("client disconnected, do not send response")

// Respond encodes resp and writes it with its status. NoResponse writes
// nothing.
func Respond(ctx context.Context, w http.ResponseWriter, resp Encoder) error {
	if _, ok := resp.(NoResponse); ok {
		return nil
	}

	if errors.Is(ctx.Err(), context.Canceled) {
		return ErrClientGone
	}

	status := StatusOf(resp)
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return nil
	}

	data, contentType, err := resp.Encode()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return fmt.Errorf("respond: encode: %w", err)
	}

	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(status)

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("respond: write: %w", err)
	}

	return nil
}
