package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Shobhanashankar/TourSafe/internal/middleware"
	"github.com/Shobhanashankar/TourSafe/internal/model"
	"github.com/Shobhanashankar/TourSafe/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAlertService struct {
	panicErr   error
	panicUser  string
	trackUser  string
	trackCalls int
}

func (f *fakeAlertService) TriggerPanic(ctx context.Context, userID string, req model.PanicAlertRequest) (*model.Alert, error) {
	f.panicUser = userID
	if f.panicErr != nil {
		return nil, f.panicErr
	}
	return &model.Alert{Location: req.Location, Type: req.Type}, nil
}

func (f *fakeAlertService) TrackLocation(userID string, req model.TrackLocationRequest) {
	f.trackUser = userID
	f.trackCalls++
}

func alertTestRouter(t *testing.T, svc service.AlertService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAlertHandler(svc, testReporter(t))
	authMW := func(c *gin.Context) { c.Set(middleware.AuthUserKey, "u1"); c.Next() }
	h.RegisterAlertRoutes(router.Group("/api"), authMW)
	return router
}

func TestAlertHandler_PanicAlert(t *testing.T) {
	svc := &fakeAlertService{}
	router := alertTestRouter(t, svc)

	w := postJSON(router, "/api/panic-alert", `{"location":{"lat":28.61,"lng":77.21},"type":"panic"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", svc.panicUser)
	assert.JSONEq(t, `{"color":"red","tip":"Help is on the way!"}`, w.Body.String())
}

func TestAlertHandler_PanicAlert_ServiceFailureIs400(t *testing.T) {
	svc := &fakeAlertService{panicErr: errors.New("db down")}
	router := alertTestRouter(t, svc)

	w := postJSON(router, "/api/panic-alert", `{"location":{"lat":28.61,"lng":77.21},"type":"panic"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to record panic alert")
}

func TestAlertHandler_PanicAlert_InvalidBody(t *testing.T) {
	svc := &fakeAlertService{}
	router := alertTestRouter(t, svc)

	w := postJSON(router, "/api/panic-alert", `{"location":"not-an-object"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "", svc.panicUser)
}

func TestAlertHandler_TrackLocation(t *testing.T) {
	svc := &fakeAlertService{}
	router := alertTestRouter(t, svc)

	w := postJSON(router, "/api/track-location", `{"location":{"lat":28.61,"lng":77.21}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", svc.trackUser)
	assert.Equal(t, 1, svc.trackCalls)
	assert.Contains(t, w.Body.String(), `"success":true`)
}
