package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/airport/internal/cache"
	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/metrics"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// IdentityParser turns a bearer access token into the caller identity.
type IdentityParser interface {
	Identity(accessToken string) (domain.Identity, error)
}

// Authenticate attaches the caller identity when a bearer token is present.
// Requests without a token continue anonymously; a bad token is rejected.
func Authenticate(parser IdentityParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detailInvalidToken})
			return
		}
		identity, err := parser.Identity(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detailInvalidToken})
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

func identityFrom(c *gin.Context) domain.Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(domain.Identity); ok {
			return identity
		}
	}
	return domain.Identity{}
}

// Metrics records request counts and latency per route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (*cache.StoredResponse, error)
	Reserve(ctx context.Context, key string) (bool, error)
	Complete(ctx context.Context, key string, resp cache.StoredResponse) error
	Release(ctx context.Context, key string) error
}

const (
	IdempotencyHeader = "Idempotency-Key"
	ReplayedHeader    = "Idempotent-Replayed"
)

type capturingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the first successful response for a caller's
// Idempotency-Key. Failed attempts release the key so the client can retry.
// When the store is unreachable the request runs without protection.
func Idempotency(store IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(IdempotencyHeader)
		if store == nil || header == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("user:%d:%s", identityFrom(c).UserID, header)

		stored, err := store.Lookup(ctx, key)
		switch {
		case errors.Is(err, cache.ErrInProgress):
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"detail": "A request with this Idempotency-Key is in progress."})
			return
		case err != nil:
			log.Printf("WARNING: idempotency lookup failed: %v", err)
			c.Next()
			return
		case stored != nil:
			c.Header(ReplayedHeader, "true")
			c.Data(stored.Status, stored.ContentType, stored.Body)
			c.Abort()
			return
		}

		reserved, err := store.Reserve(ctx, key)
		if err != nil {
			log.Printf("WARNING: idempotency reserve failed: %v", err)
			c.Next()
			return
		}
		if !reserved {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"detail": "A request with this Idempotency-Key is in progress."})
			return
		}

		// the request context may already be done once the handler returns
		storeCtx := context.WithoutCancel(ctx)
		finished := false
		defer func() {
			// a panicking handler leaves the key reserved unless released here
			if finished {
				return
			}
			if err := store.Release(storeCtx, key); err != nil {
				log.Printf("WARNING: idempotency release failed: %v", err)
			}
		}()

		writer := &capturingWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()
		finished = true

		status := writer.Status()
		if status >= 200 && status < 300 {
			resp := cache.StoredResponse{
				Status:      status,
				ContentType: writer.Header().Get("Content-Type"),
				Body:        writer.body.Bytes(),
			}
			if err := store.Complete(storeCtx, key, resp); err != nil {
				log.Printf("WARNING: idempotency complete failed: %v", err)
			}
			return
		}
		if err := store.Release(storeCtx, key); err != nil {
			log.Printf("WARNING: idempotency release failed: %v", err)
		}
	}
}
