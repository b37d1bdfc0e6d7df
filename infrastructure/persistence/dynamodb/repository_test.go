package dynamodb

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgmirko/aws-lambda-books-app/domain"
)

func TestBuildFieldUpdate_GeneratesSetClausePerField(t *testing.T) {
	update, err := buildFieldUpdate(domain.Record{
		"title": "Dune",
		"year":  1965,
	})
	require.NoError(t, err)

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	require.NoError(t, err)

	// Attribute names and values go through generated placeholders.
	assert.Len(t, expr.Names(), 2)
	assert.Len(t, expr.Values(), 2)
	assert.Contains(t, *expr.Update(), "SET")

	names := make([]string, 0, 2)
	for _, name := range expr.Names() {
		names = append(names, name)
	}
	assert.ElementsMatch(t, []string{"title", "year"}, names)
}

func TestBuildFieldUpdate_ReservedWordAttributeIsSafe(t *testing.T) {
	// "name" and "status" are DynamoDB reserved words; placeholder mapping
	// keeps them usable.
	update, err := buildFieldUpdate(domain.Record{"name": "x", "status": "published"})
	require.NoError(t, err)

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	require.NoError(t, err)
	assert.NotContains(t, *expr.Update(), "name")
	assert.NotContains(t, *expr.Update(), "status")
}

func TestBuildFieldUpdate_EmptyFieldSetRejected(t *testing.T) {
	_, err := buildFieldUpdate(domain.Record{})
	assert.Error(t, err)
}

func TestBuildFieldUpdate_ValueTypes(t *testing.T) {
	update, err := buildFieldUpdate(domain.Record{"pages": 412})
	require.NoError(t, err)

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	require.NoError(t, err)

	require.Len(t, expr.Values(), 1)
	for _, v := range expr.Values() {
		assert.IsType(t, &types.AttributeValueMemberN{}, v)
	}
}
