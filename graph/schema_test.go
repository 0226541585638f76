package graph_test

import (
	"context"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/require"

	memory "college_backend/app/repository/memory"
	"college_backend/app/service"
	"college_backend/graph"
)

func newSchema(t *testing.T) graphql.Schema {
	t.Helper()
	svc := service.NewLecturerService(memory.NewLecturerRepository())
	schema, err := graph.NewSchema(svc)
	require.NoError(t, err)
	return schema
}

func exec(t *testing.T, schema graphql.Schema, query string, vars map[string]interface{}) *graphql.Result {
	t.Helper()
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: vars,
		Context:        context.Background(),
	})
}

func field(t *testing.T, result *graphql.Result, name string) map[string]interface{} {
	t.Helper()
	require.Empty(t, result.Errors)
	data, ok := result.Data.(map[string]interface{})
	require.True(t, ok)
	obj, ok := data[name].(map[string]interface{})
	require.True(t, ok)
	return obj
}

const createMutation = `
	mutation {
		createLecturer(
			name: "John Doe"
			address: "12 Campus Road"
			department: "Computer Science"
			email: "john@x.com"
			phone: "555-0101"
			courseHandled: "Algorithms"
		) {
			id name address department email phone courseHandled
		}
	}`

func TestGraphQL_CreateLecturer(t *testing.T) {
	schema := newSchema(t)

	created := field(t, exec(t, schema, createMutation, nil), "createLecturer")
	require.NotEmpty(t, created["id"])
	require.Equal(t, "John Doe", created["name"])
	require.Equal(t, "Computer Science", created["department"])
	require.Equal(t, "Algorithms", created["courseHandled"])

	t.Run("duplicate email surfaces as a graphql error", func(t *testing.T) {
		result := exec(t, schema, createMutation, nil)
		require.NotEmpty(t, result.Errors)
		require.Contains(t, result.Errors[0].Message, "email already registered")
	})

	t.Run("name and email are required arguments", func(t *testing.T) {
		result := exec(t, schema, `mutation { createLecturer(department: "CS") { id } }`, nil)
		require.NotEmpty(t, result.Errors)
	})
}

func TestGraphQL_Queries(t *testing.T) {
	schema := newSchema(t)
	created := field(t, exec(t, schema, createMutation, nil), "createLecturer")
	id := created["id"].(string)

	t.Run("getAllLecturers lists every record", func(t *testing.T) {
		result := exec(t, schema, `{ getAllLecturers { id email } }`, nil)
		require.Empty(t, result.Errors)
		list := result.Data.(map[string]interface{})["getAllLecturers"].([]interface{})
		require.Len(t, list, 1)
	})

	t.Run("getLecturerById returns the record", func(t *testing.T) {
		got := field(t, exec(t, schema,
			`query($id: ID!) { getLecturerById(id: $id) { id name email } }`,
			map[string]interface{}{"id": id}), "getLecturerById")
		require.Equal(t, id, got["id"])
		require.Equal(t, "john@x.com", got["email"])
	})

	t.Run("unknown id resolves to null, not an error", func(t *testing.T) {
		result := exec(t, schema,
			`query($id: ID!) { getLecturerById(id: $id) { id } }`,
			map[string]interface{}{"id": "7e8b5ad2-9e0f-4f54-bd6b-ec2a0c3ad599"})
		require.Empty(t, result.Errors)
		require.Nil(t, result.Data.(map[string]interface{})["getLecturerById"])
	})
}

func TestGraphQL_UpdateLecturer(t *testing.T) {
	schema := newSchema(t)
	created := field(t, exec(t, schema, createMutation, nil), "createLecturer")
	id := created["id"].(string)

	t.Run("omitted arguments clear the stored fields", func(t *testing.T) {
		updated := field(t, exec(t, schema,
			`mutation($id: ID!) {
				updateLecturer(id: $id, name: "John Doe Updated", email: "john2@x.com", department: "SE") {
					id name address department email phone courseHandled
				}
			}`,
			map[string]interface{}{"id": id}), "updateLecturer")
		require.Equal(t, id, updated["id"])
		require.Equal(t, "John Doe Updated", updated["name"])
		require.Equal(t, "SE", updated["department"])
		require.Equal(t, "", updated["address"])
		require.Equal(t, "", updated["phone"])
		require.Equal(t, "", updated["courseHandled"])
	})

	t.Run("unknown id produces an error payload", func(t *testing.T) {
		result := exec(t, schema,
			`mutation($id: ID!) { updateLecturer(id: $id, name: "X", email: "x@x.com") { id } }`,
			map[string]interface{}{"id": "7e8b5ad2-9e0f-4f54-bd6b-ec2a0c3ad599"})
		require.NotEmpty(t, result.Errors)
		require.Contains(t, result.Errors[0].Message, "lecturer not found")
	})
}

func TestGraphQL_DeleteLecturer(t *testing.T) {
	schema := newSchema(t)
	created := field(t, exec(t, schema, createMutation, nil), "createLecturer")
	id := created["id"].(string)

	result := exec(t, schema,
		`mutation($id: ID!) { deleteLecturer(id: $id) }`,
		map[string]interface{}{"id": id})
	require.Empty(t, result.Errors)
	require.Equal(t, "Lecturer deleted successfully!",
		result.Data.(map[string]interface{})["deleteLecturer"])

	t.Run("record is gone afterwards", func(t *testing.T) {
		result := exec(t, schema,
			`query($id: ID!) { getLecturerById(id: $id) { id } }`,
			map[string]interface{}{"id": id})
		require.Empty(t, result.Errors)
		require.Nil(t, result.Data.(map[string]interface{})["getLecturerById"])
	})

	t.Run("deleting again still succeeds", func(t *testing.T) {
		result := exec(t, schema,
			`mutation($id: ID!) { deleteLecturer(id: $id) }`,
			map[string]interface{}{"id": id})
		require.Empty(t, result.Errors)
	})
}
