package handler

import (
	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/labstack/echo/v4"
)

// GraphQLHandler serves POST /graphql through the relay transport. The
// session middleware has already threaded the request's session into the
// context by the time resolvers run.
type GraphQLHandler struct {
	relay *relay.Handler
}

func NewGraphQLHandler(schema *graphqlgo.Schema) *GraphQLHandler {
	return &GraphQLHandler{relay: &relay.Handler{Schema: schema}}
}

func (h *GraphQLHandler) Query(c echo.Context) error {
	h.relay.ServeHTTP(c.Response(), c.Request())
	return nil
}
