package quotes

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emergencytradesmen/tradesmen-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupQuotesHandlerTest() (*Handler, *MockRepository) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockRepo := new(MockRepository)
	service := NewServiceImpl(mockRepo, logger)
	return NewHandler(service, logger), mockRepo
}

func postQuote(t *testing.T, handler *Handler, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.CreateQuoteRequest(rr, req)
	return rr
}

func TestHandler_CreateQuoteRequest(t *testing.T) {
	t.Run("valid submission is a 201 with the stored quote", func(t *testing.T) {
		handler, mockRepo := setupQuotesHandlerTest()
		mockRepo.On("SaveQuoteRequest", mock.Anything, mock.Anything).Return(nil).Once()

		rr := postQuote(t, handler, validRequest())

		require.Equal(t, http.StatusCreated, rr.Code)
		var quote types.QuoteRequest
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &quote))
		assert.Equal(t, types.QuoteStatusPending, quote.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("validation problems are a 422 with a fields map", func(t *testing.T) {
		handler, mockRepo := setupQuotesHandlerTest()
		req := validRequest()
		req.Phone = "not-a-phone"
		req.Postcode = "nowhere"

		rr := postQuote(t, handler, req)

		require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		var body struct {
			Success bool              `json:"success"`
			Fields  map[string]string `json:"fields"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Contains(t, body.Fields, "phone")
		assert.Contains(t, body.Fields, "postcode")
		mockRepo.AssertNotCalled(t, "SaveQuoteRequest", mock.Anything, mock.Anything)
	})

	t.Run("malformed JSON body is a 400", func(t *testing.T) {
		handler, _ := setupQuotesHandlerTest()
		req := httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewReader([]byte("{not json")))
		rr := httptest.NewRecorder()

		handler.CreateQuoteRequest(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown body keys are a 400", func(t *testing.T) {
		handler, _ := setupQuotesHandlerTest()
		rr := postQuote(t, handler, map[string]any{"surprise": true})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
