package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"go.uber.org/zap"

	"levelshort/internal/config"
	"levelshort/internal/repository"
	"levelshort/internal/services"
	"levelshort/internal/tenant"
)

// ExampleController_RegisterTenant demonstrates the tenant registration endpoint.
func ExampleController_RegisterTenant() {
	c := config.NewConfig()
	sugar := zap.NewNop().Sugar()
	repo := repository.NewMemoryRepository()
	encoderService := services.NewEncoderService(repo, sugar)
	sessionService := tenant.NewSessionService()
	controller := NewController(c, encoderService, sessionService, sugar)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	requestBody := bytes.NewBufferString(`{"site": "github.com", "tier": "FREE"}`)
	req, _ := http.NewRequestWithContext(ctx, "POST", "/api/tenants", requestBody)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler := controller.RegisterTenant()
	handler.ServeHTTP(rr, req)

	resp := rr.Result()
	defer func() {
		if err := resp.Body.Close(); err != nil {
			sugar.Errorf("resp.Body.Close() error")
		}
	}()

	fmt.Println("Status Code:", resp.Status)

	// Output:
	// Status Code: 201 Created
}
