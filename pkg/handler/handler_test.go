package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/gojuno/minimock/v3"

	qt "github.com/frankban/quicktest"

	"github.com/talkifydocs/ingest-backend/pkg/mock"
	"github.com/talkifydocs/ingest-backend/pkg/repository"
	"github.com/talkifydocs/ingest-backend/pkg/service"
	"github.com/talkifydocs/ingest-backend/pkg/types"

	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

const secret = "whsec_test"

type fakeExecutor struct {
	err error

	mu     sync.Mutex
	events []types.UploadEvent
}

func (f *fakeExecutor) Submit(_ context.Context, event types.UploadEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

func newTestServer(c *qt.C, svc service.Service, e Executor) *httptest.Server {
	srv := httptest.NewServer(NewPublicHandler(svc, e, secret).Router())
	c.Cleanup(srv.Close)
	return srv
}

func postEvent(c *qt.C, url string, body []byte, signature string) (*http.Response, ErrorResponse) {
	req, err := http.NewRequest(http.MethodPost, url+"/v1/uploads:complete", bytes.NewReader(body))
	c.Assert(err, qt.IsNil)
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}

	resp, err := http.DefaultClient.Do(req)
	c.Assert(err, qt.IsNil)
	defer resp.Body.Close()

	var errResp ErrorResponse
	if resp.StatusCode >= 400 {
		c.Assert(json.NewDecoder(resp.Body).Decode(&errResp), qt.IsNil)
	}
	return resp, errResp
}

func TestPublicHandler_CompleteUpload(t *testing.T) {
	c := qt.New(t)

	event := []byte(`{"fileKey":"abc-report.pdf","fileName":"report.pdf","ownerId":"kp_42"}`)

	c.Run("ok - signed event is dispatched", func(c *qt.C) {
		e := &fakeExecutor{}
		srv := newTestServer(c, mock.NewServiceMock(minimock.NewController(c)), e)

		resp, _ := postEvent(c, srv.URL, event, Sign(secret, event))
		c.Check(resp.StatusCode, qt.Equals, http.StatusAccepted)
		c.Check(e.events, qt.DeepEquals, []types.UploadEvent{
			{FileKey: "abc-report.pdf", FileName: "report.pdf", OwnerUID: "kp_42"},
		})
	})

	c.Run("nok - bad signature", func(c *qt.C) {
		e := &fakeExecutor{}
		srv := newTestServer(c, mock.NewServiceMock(minimock.NewController(c)), e)

		resp, errResp := postEvent(c, srv.URL, event, Sign("another secret", event))
		c.Check(resp.StatusCode, qt.Equals, http.StatusUnauthorized)
		c.Check(errResp.Message, qt.Equals, "The upload event signature is invalid.")
		c.Check(e.events, qt.HasLen, 0)
	})

	c.Run("nok - missing signature", func(c *qt.C) {
		e := &fakeExecutor{}
		srv := newTestServer(c, mock.NewServiceMock(minimock.NewController(c)), e)

		resp, _ := postEvent(c, srv.URL, event, "")
		c.Check(resp.StatusCode, qt.Equals, http.StatusUnauthorized)
		c.Check(e.events, qt.HasLen, 0)
	})

	c.Run("nok - incomplete event", func(c *qt.C) {
		e := &fakeExecutor{}
		srv := newTestServer(c, mock.NewServiceMock(minimock.NewController(c)), e)

		body := []byte(`{"fileKey":"abc-report.pdf"}`)
		resp, errResp := postEvent(c, srv.URL, body, Sign(secret, body))
		c.Check(resp.StatusCode, qt.Equals, http.StatusBadRequest)
		c.Check(errResp.Message, qt.Equals, "The upload event is incomplete.")
		c.Check(e.events, qt.HasLen, 0)
	})

	c.Run("nok - malformed JSON", func(c *qt.C) {
		srv := newTestServer(c, mock.NewServiceMock(minimock.NewController(c)), &fakeExecutor{})

		body := []byte(`{"fileKey":`)
		resp, _ := postEvent(c, srv.URL, body, Sign(secret, body))
		c.Check(resp.StatusCode, qt.Equals, http.StatusBadRequest)
	})

	c.Run("nok - body too large", func(c *qt.C) {
		srv := newTestServer(c, mock.NewServiceMock(minimock.NewController(c)), &fakeExecutor{})

		body := []byte(`{"fileKey":"` + strings.Repeat("a", maxEventSize) + `"}`)
		resp, _ := postEvent(c, srv.URL, body, Sign(secret, body))
		c.Check(resp.StatusCode, qt.Equals, http.StatusBadRequest)
	})

	c.Run("nok - executor busy", func(c *qt.C) {
		e := &fakeExecutor{err: fmt.Errorf("%w: pool overload", errdomain.ErrUnavailable)}
		srv := newTestServer(c, mock.NewServiceMock(minimock.NewController(c)), e)

		resp, _ := postEvent(c, srv.URL, event, Sign(secret, event))
		c.Check(resp.StatusCode, qt.Equals, http.StatusServiceUnavailable)
	})

	c.Run("ok - no secret configured", func(c *qt.C) {
		e := &fakeExecutor{}
		srv := httptest.NewServer(NewPublicHandler(mock.NewServiceMock(minimock.NewController(c)), e, "").Router())
		c.Cleanup(srv.Close)

		resp, _ := postEvent(c, srv.URL, event, "")
		c.Check(resp.StatusCode, qt.Equals, http.StatusAccepted)
		c.Check(e.events, qt.HasLen, 1)
	})
}

func TestPublicHandler_GetFile(t *testing.T) {
	c := qt.New(t)

	uid := uuid.Must(uuid.NewV4())
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	file := &repository.FileModel{
		UID:           uid,
		Key:           "abc-report.pdf",
		Name:          "report.pdf",
		OwnerUID:      "kp_42",
		Status:        types.FileProcessStatusFailed,
		StatusMessage: "The file could not be retrieved from storage.",
		CreateTime:    created,
	}
	svc := mock.NewServiceMock(minimock.NewController(c)).
		GetFileMock.Set(func(_ context.Context, fileUID types.FileUIDType) (*repository.FileModel, error) {
			if fileUID != uid {
				return nil, fmt.Errorf("%w: file %s", errdomain.ErrNotFound, fileUID)
			}
			return file, nil
		})
	srv := newTestServer(c, svc, &fakeExecutor{})

	c.Run("ok", func(c *qt.C) {
		resp, err := http.Get(srv.URL + "/v1/files/" + uid.String())
		c.Assert(err, qt.IsNil)
		defer resp.Body.Close()
		c.Assert(resp.StatusCode, qt.Equals, http.StatusOK)

		var got FileResponse
		c.Assert(json.NewDecoder(resp.Body).Decode(&got), qt.IsNil)
		c.Check(got, qt.DeepEquals, FileResponse{
			UID:           uid.String(),
			Key:           "abc-report.pdf",
			Name:          "report.pdf",
			OwnerUID:      "kp_42",
			Status:        "FAILED",
			StatusMessage: "The file could not be retrieved from storage.",
			CreateTime:    created,
		})
	})

	c.Run("nok - not found", func(c *qt.C) {
		resp, err := http.Get(srv.URL + "/v1/files/" + uuid.Must(uuid.NewV4()).String())
		c.Assert(err, qt.IsNil)
		defer resp.Body.Close()
		c.Check(resp.StatusCode, qt.Equals, http.StatusNotFound)
	})

	c.Run("nok - invalid uid", func(c *qt.C) {
		resp, err := http.Get(srv.URL + "/v1/files/not-a-uid")
		c.Assert(err, qt.IsNil)
		defer resp.Body.Close()
		c.Check(resp.StatusCode, qt.Equals, http.StatusBadRequest)
	})
}

func TestPublicHandler_Liveness(t *testing.T) {
	c := qt.New(t)
	srv := newTestServer(c, mock.NewServiceMock(minimock.NewController(c)), &fakeExecutor{})

	resp, err := http.Get(srv.URL + "/v1/health")
	c.Assert(err, qt.IsNil)
	defer resp.Body.Close()
	c.Check(resp.StatusCode, qt.Equals, http.StatusOK)
}

func TestVerifySignature(t *testing.T) {
	c := qt.New(t)
	body := []byte(`{"fileKey":"k"}`)

	c.Check(VerifySignature(secret, body, Sign(secret, body)), qt.IsNil)

	for _, header := range []string{
		"",
		"sha1=abcd",
		"hmac-sha256=zz",
		Sign(secret, []byte(`{"fileKey":"other"}`)),
	} {
		err := VerifySignature(secret, body, header)
		c.Check(errors.Is(err, errdomain.ErrUnauthorized), qt.IsTrue, qt.Commentf("header %q", header))
	}
}
