package graph

import (
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"

	"college_backend/app/model"
	"college_backend/app/service"
)

var lecturerType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Lecturer",
	Fields: graphql.Fields{
		"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":          &graphql.Field{Type: graphql.String},
		"address":       &graphql.Field{Type: graphql.String},
		"department":    &graphql.Field{Type: graphql.String},
		"email":         &graphql.Field{Type: graphql.String},
		"phone":         &graphql.Field{Type: graphql.String},
		"courseHandled": &graphql.Field{Type: graphql.String},
	},
})

// dataFieldArgs are the six scalar arguments shared by the create and
// update mutations. Each field is a named argument, not an input object.
func dataFieldArgs(requireIdentity bool) graphql.FieldConfigArgument {
	var nameType, emailType graphql.Input = graphql.String, graphql.String
	if requireIdentity {
		nameType = graphql.NewNonNull(graphql.String)
		emailType = graphql.NewNonNull(graphql.String)
	}
	return graphql.FieldConfigArgument{
		"name":          &graphql.ArgumentConfig{Type: nameType},
		"address":       &graphql.ArgumentConfig{Type: graphql.String},
		"department":    &graphql.ArgumentConfig{Type: graphql.String},
		"email":         &graphql.ArgumentConfig{Type: emailType},
		"phone":         &graphql.ArgumentConfig{Type: graphql.String},
		"courseHandled": &graphql.ArgumentConfig{Type: graphql.String},
	}
}

func argString(p graphql.ResolveParams, name string) string {
	if v, ok := p.Args[name].(string); ok {
		return v
	}
	return ""
}

// inputFromArgs builds the full-replace payload: arguments left out of
// the request come back as empty strings.
func inputFromArgs(p graphql.ResolveParams) model.LecturerInput {
	return model.LecturerInput{
		Name:          argString(p, "name"),
		Address:       argString(p, "address"),
		Department:    argString(p, "department"),
		Email:         argString(p, "email"),
		Phone:         argString(p, "phone"),
		CourseHandled: argString(p, "courseHandled"),
	}
}

func argID(p graphql.ResolveParams) (uuid.UUID, error) {
	return uuid.Parse(argString(p, "id"))
}

// NewSchema builds the GraphQL schema over the lecturer service.
func NewSchema(svc service.LecturerService) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getAllLecturers": &graphql.Field{
				Type: graphql.NewList(lecturerType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.GetAll(p.Context)
				},
			},
			"getLecturerById": &graphql.Field{
				Type: lecturerType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := argID(p)
					if err != nil {
						return nil, err
					}
					lecturer, err := svc.GetByID(p.Context, id)
					if err != nil {
						return nil, err
					}
					if lecturer == nil {
						// Unknown id resolves to null, not an error.
						return nil, nil
					}
					return lecturer, nil
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createLecturer": &graphql.Field{
				Type: lecturerType,
				Args: dataFieldArgs(true),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.Create(p.Context, inputFromArgs(p))
				},
			},
			"updateLecturer": &graphql.Field{
				Type: lecturerType,
				Args: func() graphql.FieldConfigArgument {
					args := dataFieldArgs(false)
					args["id"] = &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}
					return args
				}(),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := argID(p)
					if err != nil {
						return nil, err
					}
					return svc.Update(p.Context, id, inputFromArgs(p))
				},
			},
			"deleteLecturer": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := argID(p)
					if err != nil {
						return nil, err
					}
					if err := svc.Delete(p.Context, id); err != nil {
						return nil, err
					}
					return "Lecturer deleted successfully!", nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
