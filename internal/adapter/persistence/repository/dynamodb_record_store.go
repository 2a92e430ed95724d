package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"servicescale/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoRecordStore persists records in one DynamoDB table per collection.
//
// Table requirements:
//   - PK: id (string)
//   - table name: <prefix><collection>, e.g. "prod_customers"
//
// Filters other than the primary key run as filtered scans; ordering is
// applied after the scan.
type DynamoRecordStore struct {
	ddb    *dynamodb.Client
	prefix string
}

var _ interfaces.IRecordStore = (*DynamoRecordStore)(nil)

func NewDynamoRecordStore(ddb *dynamodb.Client, tablePrefix string) *DynamoRecordStore {
	return &DynamoRecordStore{ddb: ddb, prefix: tablePrefix}
}

func (s *DynamoRecordStore) tableName(table string) string {
	return s.prefix + table
}

func (s *DynamoRecordStore) Select(ctx context.Context, table string, match interfaces.Match, order ...interfaces.Order) ([]interfaces.Record, error) {
	out, err := s.find(ctx, table, match)
	if err != nil {
		return nil, err
	}
	sortRecords(out, order)
	return out, nil
}

func (s *DynamoRecordStore) find(ctx context.Context, table string, match interfaces.Match) ([]interfaces.Record, error) {
	if id, ok := match["id"]; ok {
		out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
			TableName:      aws.String(s.tableName(table)),
			Key:            idKey(id),
			ConsistentRead: aws.Bool(true),
		})
		if err != nil {
			return nil, err
		}
		if len(out.Item) == 0 {
			return nil, nil
		}
		rec, err := unmarshalRecord(out.Item)
		if err != nil {
			return nil, err
		}
		if !matches(rec, match) {
			return nil, nil
		}
		return []interfaces.Record{rec}, nil
	}

	input := &dynamodb.ScanInput{
		TableName:      aws.String(s.tableName(table)),
		ConsistentRead: aws.Bool(true),
	}
	if len(match) > 0 {
		expr, names, values, err := equalityExpression(match, "f")
		if err != nil {
			return nil, err
		}
		input.FilterExpression = aws.String(expr)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var out []interfaces.Record
	p := dynamodb.NewScanPaginator(s.ddb, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			rec, err := unmarshalRecord(item)
			if err != nil {
				return nil, err
			}
			out = append(out, rec)
		}
	}
	return out, nil
}

// Insert writes records one by one. A failure stops the loop; records
// written before it stay.
func (s *DynamoRecordStore) Insert(ctx context.Context, table string, records []interfaces.Record) ([]interfaces.Record, error) {
	out := make([]interfaces.Record, 0, len(records))
	for _, r := range records {
		av, err := attributevalue.MarshalMap(map[string]any(r))
		if err != nil {
			return nil, err
		}
		_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(s.tableName(table)),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		})
		if err != nil {
			return nil, fmt.Errorf("put %s %s: %w", table, r.String("id"), err)
		}
		out = append(out, r.Clone())
	}
	return out, nil
}

func (s *DynamoRecordStore) Update(ctx context.Context, table string, match interfaces.Match, partial interfaces.Record) ([]interfaces.Record, error) {
	fields := partial.Clone()
	delete(fields, "id")
	if len(fields) == 0 {
		return s.find(ctx, table, match)
	}

	ids, err := s.matchingIDs(ctx, table, match)
	if err != nil {
		return nil, err
	}

	setExpr, setNames, setValues, err := assignmentExpression(fields, "u")
	if err != nil {
		return nil, err
	}
	cond, condNames, condValues, err := keyedCondition(match)
	if err != nil {
		return nil, err
	}

	var out []interfaces.Record
	for _, id := range ids {
		res, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                 aws.String(s.tableName(table)),
			Key:                       idKey(id),
			ConditionExpression:       aws.String(cond),
			UpdateExpression:          aws.String(setExpr),
			ExpressionAttributeNames:  mergeNames(setNames, condNames),
			ExpressionAttributeValues: mergeValues(setValues, condValues),
			ReturnValues:              types.ReturnValueAllNew,
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				continue
			}
			return nil, err
		}
		rec, err := unmarshalRecord(res.Attributes)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *DynamoRecordStore) Delete(ctx context.Context, table string, match interfaces.Match) (int, error) {
	ids, err := s.matchingIDs(ctx, table, match)
	if err != nil {
		return 0, err
	}
	cond, names, values, err := keyedCondition(match)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, id := range ids {
		in := &dynamodb.DeleteItemInput{
			TableName:                aws.String(s.tableName(table)),
			Key:                      idKey(id),
			ConditionExpression:      aws.String(cond),
			ExpressionAttributeNames: names,
		}
		if len(values) > 0 {
			in.ExpressionAttributeValues = values
		}
		if _, err := s.ddb.DeleteItem(ctx, in); err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				continue
			}
			return n, err
		}
		n++
	}
	return n, nil
}

func (s *DynamoRecordStore) matchingIDs(ctx context.Context, table string, match interfaces.Match) ([]any, error) {
	if id, ok := match["id"]; ok {
		return []any{id}, nil
	}
	recs, err := s.find(ctx, table, match)
	if err != nil {
		return nil, err
	}
	ids := make([]any, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r["id"])
	}
	return ids, nil
}

func idKey(id any) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: fmt.Sprint(id)},
	}
}

func unmarshalRecord(item map[string]types.AttributeValue) (interfaces.Record, error) {
	var m map[string]any
	if err := attributevalue.UnmarshalMap(item, &m); err != nil {
		return nil, err
	}
	return interfaces.Record(m), nil
}

// equalityExpression renders "#f0 = :f0 AND #f1 = :f1" for the match columns.
func equalityExpression(match interfaces.Match, prefix string) (string, map[string]string, map[string]types.AttributeValue, error) {
	parts := make([]string, 0, len(match))
	names := make(map[string]string, len(match))
	values := make(map[string]types.AttributeValue, len(match))
	for i, k := range sortedKeys(match) {
		av, err := attributevalue.Marshal(match[k])
		if err != nil {
			return "", nil, nil, err
		}
		n, v := fmt.Sprintf("#%s%d", prefix, i), fmt.Sprintf(":%s%d", prefix, i)
		names[n] = k
		values[v] = av
		parts = append(parts, n+" = "+v)
	}
	return strings.Join(parts, " AND "), names, values, nil
}

// assignmentExpression renders "SET #u0 = :u0, #u1 = :u1".
func assignmentExpression(fields interfaces.Record, prefix string) (string, map[string]string, map[string]types.AttributeValue, error) {
	expr, names, values, err := equalityExpression(interfaces.Match(fields), prefix)
	if err != nil {
		return "", nil, nil, err
	}
	return "SET " + strings.ReplaceAll(expr, " AND ", ", "), names, values, nil
}

// keyedCondition requires the item to exist and to still satisfy the non-key
// columns of match.
func keyedCondition(match interfaces.Match) (string, map[string]string, map[string]types.AttributeValue, error) {
	rest := interfaces.Match{}
	for k, v := range match {
		if k != "id" {
			rest[k] = v
		}
	}
	cond := "attribute_exists(#id)"
	names := map[string]string{"#id": "id"}
	if len(rest) == 0 {
		return cond, names, nil, nil
	}
	expr, restNames, values, err := equalityExpression(rest, "m")
	if err != nil {
		return "", nil, nil, err
	}
	return cond + " AND " + expr, mergeNames(names, restNames), values, nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func mergeValues(a, b map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
