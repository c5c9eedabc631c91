package controllers

import (
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/boutiklabs/boutik/app/services"
	"github.com/boutiklabs/boutik/pkg/bind"
	gql "github.com/boutiklabs/boutik/pkg/graphql"
	"github.com/boutiklabs/boutik/pkg/response"
)

// GraphQLController exposes a read-only query surface over the catalogue.
// Mutations stay REST-only so the admin gate has a single choke point.
type GraphQLController struct {
	schema graphql.Schema
}

func NewGraphQLController(service *services.ProductService) (*GraphQLController, error) {
	productType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id":                &graphql.Field{Type: graphql.Float},
			"code":              &graphql.Field{Type: graphql.String},
			"name":              &graphql.Field{Type: graphql.String},
			"description":       &graphql.Field{Type: graphql.String},
			"image":             &graphql.Field{Type: graphql.String},
			"category":          &graphql.Field{Type: graphql.String},
			"price":             &graphql.Field{Type: graphql.Float},
			"quantity":          &graphql.Field{Type: graphql.Int},
			"internalReference": &graphql.Field{Type: graphql.String},
			"shellId":           &graphql.Field{Type: graphql.Float},
			"inventoryStatus":   &graphql.Field{Type: graphql.String},
			"rating":            &graphql.Field{Type: graphql.Float},
			"createdAt":         &graphql.Field{Type: graphql.Float},
			"updatedAt":         &graphql.Field{Type: graphql.Float},
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQuery",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return service.List(), nil
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(float64)
					product, err := service.Get(int64(id))
					if err != nil {
						return nil, nil // absent product resolves to null
					}
					return product, nil
				},
			},
		},
	})

	schema, err := gql.NewSchema(query)
	if err != nil {
		return nil, err
	}

	return &GraphQLController{schema: schema}, nil
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// Query handles POST /graphql.
func (c *GraphQLController) Query(w http.ResponseWriter, r *http.Request) {
	var body graphqlRequest
	if _, err := bind.JSON(r, &body); err != nil {
		response.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         c.schema,
		RequestString:  body.Query,
		VariableValues: body.Variables,
	})

	response.JSON(w, http.StatusOK, result)
}
