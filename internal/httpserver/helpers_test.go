package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authsvc "assistmenow/internal/service/auth"
	deliverysvc "assistmenow/internal/service/delivery"
	hampersvc "assistmenow/internal/service/hamper"
	recipientsvc "assistmenow/internal/service/recipient"
	reportsvc "assistmenow/internal/service/report"
	usersvc "assistmenow/internal/service/user"
	"assistmenow/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func logDiscard() *zap.Logger {
	return zap.NewNop()
}

func memoryDeps(stores *store.Stores, opts ...deliverysvc.Option) Deps {
	return Deps{
		RecipientSvc: recipientsvc.New(stores.Recipients),
		HamperSvc:    hampersvc.New(stores.Hampers),
		DeliverySvc:  deliverysvc.New(stores.Deliveries, opts...),
		ReportSvc:    reportsvc.New(stores.Deliveries, stores.Recipients, stores.Hampers),
		AuthSvc:      authsvc.New(stores.Users, stores.Sessions, time.Hour),
		UserSvc:      usersvc.New(stores.Users),
	}
}

func newTestRouter(t *testing.T, opts ...deliverysvc.Option) *gin.Engine {
	t.Helper()
	router, err := buildRouter(logDiscard(), memoryDeps(store.Memory(), opts...))
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return out
}
