package testutil

import (
	"encoding/json"
	"net/http/httptest"

	"github.com/stretchr/testify/suite"
)

// BaseSuite gives each test a fresh server.
//
// Usage:
//
//	type MySuite struct {
//	    testutil.BaseSuite
//	}
//
//	func (s *MySuite) TestSomething() {
//	    rec := s.Server.GET("/api/blog/posts")
//	}
type BaseSuite struct {
	suite.Suite
	Server *TestServer

	// Options are applied to every server the suite creates.
	Options []Option
}

// SetupTest creates the server. If you override this, call
// s.BaseSuite.SetupTest() first.
func (s *BaseSuite) SetupTest() {
	s.Server = NewTestServer(s.Options...)
}

// DecodeJSON unmarshals a recorder body, failing the test on error.
func (s *BaseSuite) DecodeJSON(rec *httptest.ResponseRecorder, v any) {
	s.T().Helper()
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}
