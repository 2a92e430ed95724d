package repository

import (
	"testing"

	"servicescale/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamoExpressions(t *testing.T) {
	t.Run("equality", func(t *testing.T) {
		expr, names, values, err := equalityExpression(interfaces.Match{"owner_id": "o1", "deleted": false}, "f")
		require.NoError(t, err)
		assert.Equal(t, "#f0 = :f0 AND #f1 = :f1", expr)
		assert.Equal(t, map[string]string{"#f0": "deleted", "#f1": "owner_id"}, names)
		assert.Equal(t, &types.AttributeValueMemberBOOL{Value: false}, values[":f0"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "o1"}, values[":f1"])
	})

	t.Run("assignment", func(t *testing.T) {
		expr, names, _, err := assignmentExpression(interfaces.Record{"status": "lost", "clicked_at": "t"}, "u")
		require.NoError(t, err)
		assert.Equal(t, "SET #u0 = :u0, #u1 = :u1", expr)
		assert.Equal(t, "clicked_at", names["#u0"])
	})

	t.Run("keyed condition", func(t *testing.T) {
		cond, names, values, err := keyedCondition(interfaces.Match{"id": "c1", "owner_id": "o1"})
		require.NoError(t, err)
		assert.Equal(t, "attribute_exists(#id) AND #m0 = :m0", cond)
		assert.Equal(t, map[string]string{"#id": "id", "#m0": "owner_id"}, names)
		assert.Len(t, values, 1)

		cond, _, values, err = keyedCondition(interfaces.Match{"id": "c1"})
		require.NoError(t, err)
		assert.Equal(t, "attribute_exists(#id)", cond)
		assert.Nil(t, values)
	})

	t.Run("table prefix", func(t *testing.T) {
		assert.Equal(t, "dev-customers", NewDynamoRecordStore(nil, "dev-").tableName("customers"))
	})
}

func TestUnmarshalRecord(t *testing.T) {
	rec, err := unmarshalRecord(map[string]types.AttributeValue{
		"id":       &types.AttributeValueMemberS{Value: "c1"},
		"bedrooms": &types.AttributeValueMemberN{Value: "3"},
		"deleted":  &types.AttributeValueMemberBOOL{Value: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", rec.String("id"))
	assert.Equal(t, 3, rec.Int("bedrooms"))
	assert.True(t, rec.Bool("deleted"))
}
