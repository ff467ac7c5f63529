package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/atelieraurum/studio-api/common/test_tools"
	"github.com/atelieraurum/studio-api/framework/web"
	"github.com/atelieraurum/studio-api/logger"
	"github.com/atelieraurum/studio-api/orders/dal"
	"github.com/atelieraurum/studio-api/orders/domain"
	"github.com/atelieraurum/studio-api/orders/queue"
	"github.com/atelieraurum/studio-api/orders/service"
	serviceMock "github.com/atelieraurum/studio-api/orders/service/mocks"
)

type fields struct {
	service *serviceMock.Orders
}

func newHandler(f *fields) *Orders {
	return &Orders{
		loggerProvider: logger.FromContext,
		service:        f.service,
	}
}

func requestErrorStatus(t *testing.T, err error) int {
	t.Helper()

	var webErr *web.Error

	if !errors.As(err, &webErr) {
		t.Fatalf("expected *web.Error, got %T", err)
	}

	return webErr.Status
}

func TestOrders_ListOrdersHandler(t *testing.T) {
	tests := []struct {
		name       string
		rawQuery   string
		on         func(ctx *gin.Context, f *fields)
		wantErr    bool
		wantStatus int
	}{
		{
			name:     "query params forwarded to the queue",
			rawQuery: "filter=PENDING&q=smith",
			on: func(ctx *gin.Context, f *fields) {
				f.service.On("ListQueue", ctx, queue.FilterPending, "smith").
					Return([]*domain.Order{{ID: "cs_1"}}, nil)
			},
		},
		{
			name:     "unknown filter falls back to ALL",
			rawQuery: "filter=bogus",
			on: func(ctx *gin.Context, f *fields) {
				f.service.On("ListQueue", ctx, queue.FilterAll, "").
					Return([]*domain.Order{}, nil)
			},
		},
		{
			name: "service error",
			on: func(ctx *gin.Context, f *fields) {
				f.service.On("ListQueue", ctx, queue.FilterAll, "").
					Return(nil, errors.New("firestore unavailable"))
			},
			wantErr:    true,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fields{service: serviceMock.NewOrders(t)}
			ctx := testtools.GenerateCtxWithQuery(t, tt.rawQuery)

			if tt.on != nil {
				tt.on(ctx, f)
			}

			err := newHandler(f).ListOrdersHandler(ctx)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantStatus, requestErrorStatus(t, err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestOrders_UpdateStatusHandler(t *testing.T) {
	params := []gin.Param{{Key: "orderID", Value: "cs_1"}}

	tests := []struct {
		name       string
		params     []gin.Param
		body       map[string]interface{}
		on         func(ctx *gin.Context, f *fields)
		wantErr    bool
		wantStatus int
	}{
		{
			name:   "valid transition",
			params: params,
			body:   map[string]interface{}{"status": "confirmed"},
			on: func(ctx *gin.Context, f *fields) {
				f.service.On("UpdateStatus", ctx, "cs_1", domain.StatusConfirmed).
					Return(&domain.Order{ID: "cs_1", OrderStatus: domain.StatusConfirmed}, nil)
			},
		},
		{
			name:       "missing order id",
			params:     nil,
			body:       map[string]interface{}{"status": "confirmed"},
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing status in body",
			params:     params,
			body:       map[string]interface{}{},
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown status value",
			params:     params,
			body:       map[string]interface{}{"status": "teleported"},
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "invalid transition maps to conflict",
			params: params,
			body:   map[string]interface{}{"status": "delivered"},
			on: func(ctx *gin.Context, f *fields) {
				f.service.On("UpdateStatus", ctx, "cs_1", domain.StatusDelivered).
					Return(nil, service.ErrInvalidTransition)
			},
			wantErr:    true,
			wantStatus: http.StatusConflict,
		},
		{
			name:   "order not found",
			params: params,
			body:   map[string]interface{}{"status": "confirmed"},
			on: func(ctx *gin.Context, f *fields) {
				f.service.On("UpdateStatus", ctx, "cs_1", domain.StatusConfirmed).
					Return(nil, dal.ErrOrderNotFound)
			},
			wantErr:    true,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fields{service: serviceMock.NewOrders(t)}
			ctx := testtools.GenerateCtxWithJSONAndParams(t, tt.body, tt.params)

			if tt.on != nil {
				tt.on(ctx, f)
			}

			err := newHandler(f).UpdateStatusHandler(ctx)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantStatus, requestErrorStatus(t, err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestOrders_DeleteOrderHandler(t *testing.T) {
	tests := []struct {
		name       string
		params     []gin.Param
		on         func(ctx *gin.Context, f *fields)
		wantErr    bool
		wantStatus int
	}{
		{
			name:   "deleted",
			params: []gin.Param{{Key: "orderID", Value: "cs_1"}},
			on: func(ctx *gin.Context, f *fields) {
				f.service.On("DeleteOrder", ctx, "cs_1").Return(nil)
			},
		},
		{
			name:   "not found",
			params: []gin.Param{{Key: "orderID", Value: "cs_missing"}},
			on: func(ctx *gin.Context, f *fields) {
				f.service.On("DeleteOrder", ctx, "cs_missing").Return(dal.ErrOrderNotFound)
			},
			wantErr:    true,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing order id",
			params:     nil,
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fields{service: serviceMock.NewOrders(t)}

			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)
			ctx.Params = tt.params
			ctx.Request = httptest.NewRequest(http.MethodDelete, "http://localhost:8080", nil)

			if tt.on != nil {
				tt.on(ctx, f)
			}

			err := newHandler(f).DeleteOrderHandler(ctx)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantStatus, requestErrorStatus(t, err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
