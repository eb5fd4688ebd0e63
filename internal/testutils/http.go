package testutils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// HTTPTestSuite wraps a gin router for handler tests
type HTTPTestSuite struct {
	suite.Suite
	Router *gin.Engine
}

// SetupHTTPTest creates a fresh test-mode router
func (s *HTTPTestSuite) SetupHTTPTest() {
	gin.SetMode(gin.TestMode)
	s.Router = gin.New()
}

// MakeRequest performs a request against the suite router. A non-nil body is
// marshaled to JSON.
func (s *HTTPTestSuite) MakeRequest(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	s.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

// ParseJSONResponse unmarshals the recorded body into target
func (s *HTTPTestSuite) ParseJSONResponse(w *httptest.ResponseRecorder, target interface{}) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), target))
}

// AssertErrorResponse checks the status code and the error field
func (s *HTTPTestSuite) AssertErrorResponse(w *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	s.Equal(expectedStatus, w.Code)

	var response map[string]interface{}
	s.ParseJSONResponse(w, &response)
	s.Contains(response, "error")
	if expectedError != "" {
		s.Contains(response["error"], expectedError)
	}
}
