package pipeline

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handlerStage(marker string, hits *[]string) Stage {
	return func(c *Context, _ func()) {
		*hits = append(*hits, marker)
		c.NoContent(http.StatusOK)
	}
}

func TestRouterMatchesAndExtractsParams(t *testing.T) {
	r := NewRouter()
	var gotID string
	r.Handle(http.MethodGet, "/cars/:id", func(c *Context, _ func()) {
		gotID = c.Param("id")
		c.NoContent(http.StatusOK)
	})

	c, rec := newTestContext(http.MethodGet, "/cars/abc-123")
	r.Dispatch()(c, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", gotID)
}

func TestRouterMultipleParams(t *testing.T) {
	r := NewRouter()
	var action string
	r.Handle(http.MethodPost, "/cars/:id/:action", func(c *Context, _ func()) {
		action = c.Param("id") + "/" + c.Param("action")
		c.NoContent(http.StatusOK)
	})

	c, _ := newTestContext(http.MethodPost, "/cars/c1/buy")
	r.Dispatch()(c, nil)
	assert.Equal(t, "c1/buy", action)
}

// Registration order, not specificity, decides the match: a literal path
// registered after a parameterised pattern that also matches is shadowed.
func TestRouterFirstMatchWins(t *testing.T) {
	r := NewRouter()
	var hits []string
	r.Handle(http.MethodGet, "/cars/:id", handlerStage("param", &hits))
	r.Handle(http.MethodGet, "/cars/special", handlerStage("literal", &hits))

	c, _ := newTestContext(http.MethodGet, "/cars/special")
	r.Dispatch()(c, nil)

	assert.Equal(t, []string{"param"}, hits, "the earlier /cars/:id entry must win")
}

func TestRouterLiteralFirstWhenRegisteredFirst(t *testing.T) {
	r := NewRouter()
	var hits []string
	r.Handle(http.MethodGet, "/cars/special", handlerStage("literal", &hits))
	r.Handle(http.MethodGet, "/cars/:id", handlerStage("param", &hits))

	c, _ := newTestContext(http.MethodGet, "/cars/special")
	r.Dispatch()(c, nil)
	assert.Equal(t, []string{"literal"}, hits)

	hits = nil
	c2, _ := newTestContext(http.MethodGet, "/cars/c1")
	r.Dispatch()(c2, nil)
	assert.Equal(t, []string{"param"}, hits)
}

func TestRouterMethodDiscrimination(t *testing.T) {
	r := NewRouter()
	var hits []string
	r.Handle(http.MethodGet, "/cars", handlerStage("get", &hits))
	r.Handle(http.MethodPost, "/cars", handlerStage("post", &hits))

	c, _ := newTestContext(http.MethodPost, "/cars")
	r.Dispatch()(c, nil)
	assert.Equal(t, []string{"post"}, hits)
}

func TestRouterFullPathMatchOnly(t *testing.T) {
	r := NewRouter()
	var hits []string
	r.Handle(http.MethodGet, "/cars", handlerStage("cars", &hits))

	c, rec := newTestContext(http.MethodGet, "/cars/extra")
	r.Dispatch()(c, nil)

	assert.Empty(t, hits, "prefix matches must not resolve")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterNotFoundEnvelope(t *testing.T) {
	r := NewRouter()

	c, rec := newTestContext(http.MethodGet, "/nope")
	r.Dispatch()(c, nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not found", body["error"])
}

func TestRouterRunsRouteChainThroughPipeline(t *testing.T) {
	r := NewRouter()
	var order []string
	guard := func(c *Context, next func()) {
		order = append(order, "guard")
		next()
	}
	r.Handle(http.MethodGet, "/users", guard, handlerStage("handler", &order))

	c, _ := newTestContext(http.MethodGet, "/users")
	r.Dispatch()(c, nil)
	assert.Equal(t, []string{"guard", "handler"}, order)
}

func TestRouterGuardShortCircuitsRouteChain(t *testing.T) {
	r := NewRouter()
	var hits []string
	deny := func(c *Context, _ func()) {
		c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	r.Handle(http.MethodGet, "/users", deny, handlerStage("handler", &hits))

	c, rec := newTestContext(http.MethodGet, "/users")
	r.Dispatch()(c, nil)

	assert.Empty(t, hits)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
