package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJSON_AnomalyList(t *testing.T) {
	valid := `[{"id":"a1","type":"Late Clock-In","description":"late","employeeId":"e1","severity":"Low","date":"2024-03-01T09:30:00Z","recommendation":"watch"}]`

	require.NoError(t, ValidateJSON(valid, AnomalyListSchema))
	require.NoError(t, ValidateJSON(`[]`, AnomalyListSchema))

	mismatches := map[string]string{
		"object not array":   `{"anomalies":[]}`,
		"missing employeeId": `[{"id":"a1","type":"x","description":"d","severity":"Low","date":"2024-03-01","recommendation":"r"}]`,
		"unknown severity":   `[{"id":"a1","type":"x","description":"d","employeeId":"e1","severity":"Urgent","date":"2024-03-01","recommendation":"r"}]`,
		"numeric employeeId": `[{"id":"a1","type":"x","description":"d","employeeId":7,"severity":"Low","date":"2024-03-01","recommendation":"r"}]`,
	}
	for name, doc := range mismatches {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateJSON(doc, AnomalyListSchema), ErrSchemaMismatch)
		})
	}
}

func TestValidateJSON_Attrition(t *testing.T) {
	assert.NoError(t, ValidateJSON(`{"riskLevel":"High","riskScore":0.82,"factors":["tenure"]}`, AttritionSchema))
	assert.NoError(t, ValidateJSON(`{"riskLevel":"Low","riskScore":0}`, AttritionSchema))

	assert.ErrorIs(t, ValidateJSON(`{"riskLevel":"Severe","riskScore":0.5}`, AttritionSchema), ErrSchemaMismatch)
	assert.ErrorIs(t, ValidateJSON(`{"riskLevel":"Low","riskScore":1.5}`, AttritionSchema), ErrSchemaMismatch)
	assert.ErrorIs(t, ValidateJSON(`{"riskLevel":"Low","riskScore":"0.3"}`, AttritionSchema), ErrSchemaMismatch)
}

func TestValidateJSON_NotJSON(t *testing.T) {
	err := ValidateJSON("Here are the anomalies: none", AnomalyListSchema)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSchemaMismatch)
}
