package pkgrouter

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xhuliohasa/flight-search-engine/internal/pkg/pkgerror"
	"github.com/xhuliohasa/flight-search-engine/internal/pkg/pkguid"
)

const HeaderRequestID = "X-Request-ID"

// Handler returns the payload to encode under "data", or an error that is
// mapped to a status code through pkgerror.
type Handler func(ctx context.Context, r *http.Request) (any, error)

type Router struct {
	engine *gin.Engine
	uuid   pkguid.StringID
}

type (
	paramsKey    struct{}
	requestIDKey struct{}
)

type successResponse struct {
	Data any `json:"data"`
}

type errorResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func NewRouter(uuid pkguid.StringID) *Router {
	gin.SetMode(gin.ReleaseMode)

	r := &Router{engine: gin.New(), uuid: uuid}
	r.engine.Use(r.requestID, logRequest, gin.Recovery())
	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{Message: "route not found", RequestID: c.GetString(HeaderRequestID)})
	})

	return r
}

func (r *Router) GET(path string, h Handler) {
	r.engine.GET(path, r.wrap(h))
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.engine.ServeHTTP(w, req)
}

// Param returns the value of a named path parameter such as :id.
func Param(r *http.Request, name string) string {
	params, ok := r.Context().Value(paramsKey{}).(gin.Params)
	if !ok {
		return ""
	}
	return params.ByName(name)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func (r *Router) wrap(h Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), paramsKey{}, c.Params)
		ctx = context.WithValue(ctx, requestIDKey{}, c.GetString(HeaderRequestID))

		resp, err := h(ctx, c.Request.WithContext(ctx))
		if err != nil {
			writeError(ctx, c, err)
			return
		}

		c.JSON(http.StatusOK, successResponse{Data: resp})
	}
}

func writeError(ctx context.Context, c *gin.Context, err error) {
	status := pkgerror.HTTPStatus(err)
	msg := http.StatusText(status)

	var be *pkgerror.Error
	if errors.As(err, &be) {
		msg = be.Msg()
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "request failed", "path", c.FullPath(), "status", status, "error", err)
	}

	c.JSON(status, errorResponse{Message: msg, RequestID: RequestID(ctx)})
}

func (r *Router) requestID(c *gin.Context) {
	id := c.GetHeader(HeaderRequestID)
	if id == "" {
		id = r.uuid.Generate()
	}
	c.Set(HeaderRequestID, id)
	c.Header(HeaderRequestID, id)
	c.Next()
}

func logRequest(c *gin.Context) {
	start := time.Now()
	c.Next()
	slog.InfoContext(c.Request.Context(), "http request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", c.GetString(HeaderRequestID),
	)
}
