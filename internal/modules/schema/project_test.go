package schema

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vimco/vimco-api/internal/modules/model"
)

func TestImportRequest_SpreadsheetRows(t *testing.T) {
	body := `{"projects":[
		{"title":"Rooftop","location":"Pune","capacity":5,"completed_date":"2023-11-20","client_name":"Mehta","images":"https://a.io/1.jpg, https://a.io/2.jpg"},
		{"title":"Factory","capacity":"250 kW","project_type":"industrial","completed_date":"next year"}
	]}`

	var req ImportRequest
	require.NoError(t, sonic.Unmarshal([]byte(body), &req))
	require.Len(t, req.Projects, 2)

	first := req.Projects[0].Model()
	assert.Equal(t, "5", first.Capacity)
	assert.Equal(t, model.ProjectTypeResidential, first.ProjectType)
	require.NotNil(t, first.CompletedDate)
	assert.Equal(t, time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC), *first.CompletedDate)
	assert.Equal(t, []string{"https://a.io/1.jpg", "https://a.io/2.jpg"}, []string(first.Images))

	second := req.Projects[1].Model()
	assert.Equal(t, model.ProjectTypeIndustrial, second.ProjectType)
	assert.Nil(t, second.CompletedDate)
	assert.Empty(t, second.Images)
	assert.NotNil(t, second.Images)
}

func TestImportRequest_NonScalarCellsBecomeText(t *testing.T) {
	body := `{"projects":[
		{"title":["Rooftop","Phase 2"],"location":{"state":"MH","city":"Pune"},"capacity":true,"images":["https://a.io/1.jpg",7,null]}
	]}`

	var req ImportRequest
	require.NoError(t, sonic.Unmarshal([]byte(body), &req))
	require.Len(t, req.Projects, 1)

	p := req.Projects[0].Model()
	assert.Equal(t, `["Rooftop","Phase 2"]`, p.Title)
	assert.Equal(t, `{"city":"Pune","state":"MH"}`, p.Location)
	assert.Equal(t, "true", p.Capacity)
	assert.Equal(t, []string{"https://a.io/1.jpg", "7"}, []string(p.Images))
}
