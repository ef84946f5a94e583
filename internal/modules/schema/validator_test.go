package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vimco/vimco-api/internal/modules/model"
)

func TestDecode_Errors(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		newIn   func() interface{ Sanitize() }
		body    string
		wantMsg string
	}{
		{
			name:    "body is not an object",
			newIn:   func() interface{ Sanitize() } { return &CertificateInput{} },
			body:    `[1,2]`,
			wantMsg: `"value" must be of type object`,
		},
		{
			name:    "first violation wins",
			newIn:   func() interface{ Sanitize() } { return &CertificateInput{} },
			body:    `{"title":"ab","description":"x"}`,
			wantMsg: `"title" length must be at least 3 characters long`,
		},
		{
			name:    "required field missing",
			newIn:   func() interface{ Sanitize() } { return &CertificateInput{} },
			body:    `{"title":"Solar Excellence Award"}`,
			wantMsg: `"description" is required`,
		},
		{
			name:    "null on required field",
			newIn:   func() interface{ Sanitize() } { return &CertificateInput{} },
			body:    `{"title":null,"description":"Awarded in 2024"}`,
			wantMsg: `"title" is required`,
		},
		{
			name:    "empty string",
			newIn:   func() interface{ Sanitize() } { return &LogoInput{} },
			body:    `{"name":""}`,
			wantMsg: `"name" is not allowed to be empty`,
		},
		{
			name:    "rating above maximum",
			newIn:   func() interface{ Sanitize() } { return &TestimonialInput{} },
			body:    `{"name":"Asha","role":"Home owner","content":"Great install","rating":7}`,
			wantMsg: `"rating" must be less than or equal to 5`,
		},
		{
			name:    "rating not integer",
			newIn:   func() interface{ Sanitize() } { return &TestimonialInput{} },
			body:    `{"name":"Asha","role":"Home owner","content":"Great install","rating":4.5}`,
			wantMsg: `"rating" must be an integer`,
		},
		{
			name:    "type errors come before constraint errors",
			newIn:   func() interface{ Sanitize() } { return &TestimonialInput{} },
			body:    `{"name":"A","role":"Home owner","content":"Great install","rating":"five"}`,
			wantMsg: `"rating" must be a number`,
		},
		{
			name:    "string expected",
			newIn:   func() interface{ Sanitize() } { return &LogoInput{} },
			body:    `{"name":42}`,
			wantMsg: `"name" must be a string`,
		},
		{
			name:    "boolean expected",
			newIn:   func() interface{ Sanitize() } { return &LogoInput{} },
			body:    `{"name":"Tata Power","is_active":"yes"}`,
			wantMsg: `"is_active" must be a boolean`,
		},
		{
			name:    "negative display order",
			newIn:   func() interface{ Sanitize() } { return &LogoInput{} },
			body:    `{"name":"Tata Power","display_order":-1}`,
			wantMsg: `"display_order" must be greater than or equal to 0`,
		},
		{
			name:    "invalid uri",
			newIn:   func() interface{ Sanitize() } { return &CertificateInput{} },
			body:    `{"title":"Solar Excellence Award","description":"Awarded in 2024","image_url":"not a url"}`,
			wantMsg: `"image_url" must be a valid uri`,
		},
		{
			name:    "invalid date",
			newIn:   func() interface{ Sanitize() } { return &EventInput{} },
			body:    `{"title":"Expo 2024","description":"Solar expo","event_date":"someday"}`,
			wantMsg: `"event_date" must be a valid date`,
		},
		{
			name:    "enum violation",
			newIn:   func() interface{ Sanitize() } { return &ProjectPatch{} },
			body:    `{"project_type":"farm"}`,
			wantMsg: `"project_type" must be one of [residential, commercial, industrial]`,
		},
		{
			name:    "array item not a uri",
			newIn:   func() interface{ Sanitize() } { return &ProjectPatch{} },
			body:    `{"images":["https://cdn.example.com/a.jpg","nope"]}`,
			wantMsg: `"images[1]" must be a valid uri`,
		},
		{
			name:    "array expected",
			newIn:   func() interface{ Sanitize() } { return &ProjectPatch{} },
			body:    `{"images":"https://cdn.example.com/a.jpg"}`,
			wantMsg: `"images" must be an array`,
		},
		{
			name:    "invalid email",
			newIn:   func() interface{ Sanitize() } { return &ContactInput{} },
			body:    `{"name":"Ravi","email":"ravi-at-example","message":"Quote please"}`,
			wantMsg: `"email" must be a valid email`,
		},
		{
			name:    "unknown keys reported in lexical order",
			newIn:   func() interface{ Sanitize() } { return &LogoInput{} },
			body:    `{"name":"Tata Power","zeta":1,"alpha":2}`,
			wantMsg: `"alpha" is not allowed`,
		},
		{
			name:    "trimmed to empty",
			newIn:   func() interface{ Sanitize() } { return &ProjectPatch{} },
			body:    `{"client_name":"   "}`,
			wantMsg: `"client_name" is not allowed to be empty`,
		},
		{
			name:    "strict project create",
			newIn:   func() interface{ Sanitize() } { return &ProjectInput{} },
			body:    `{"title":"Rooftop 5kW"}`,
			wantMsg: `"location" is required`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Decode([]byte(tt.body), tt.newIn())
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantMsg, verr.Message)
		})
	}
}

func TestDecode_CertificateDefaults(t *testing.T) {
	v := New()
	in := &CertificateInput{}

	present, err := v.Decode([]byte(`{"title":"Solar Excellence Award","description":"Awarded in 2024"}`), in)
	require.NoError(t, err)

	m := model.NewCertificate()
	cols := in.Apply(m, present)

	assert.Equal(t, []string{"title", "description"}, cols)
	assert.Equal(t, "Solar Excellence Award", m.Title)
	assert.Equal(t, 0, m.DisplayOrder)
	assert.True(t, m.IsActive)
	assert.False(t, m.IsFeatured)
}

func TestDecode_NullHandling(t *testing.T) {
	v := New()
	in := &EventInput{}
	body := `{"title":"Expo 2024","description":"Solar expo","event_date":"2024-03-01","author":null,"is_active":null}`

	present, err := v.Decode([]byte(body), in)
	require.NoError(t, err)

	author := "Someone"
	m := model.NewEvent()
	m.Author = &author
	m.IsActive = false

	cols := in.Apply(m, present)

	assert.Equal(t, []string{"title", "author", "description", "event_date"}, cols)
	assert.Nil(t, m.Author, "null clears a nullable field")
	assert.False(t, m.IsActive, "null on a non-nullable optional field is ignored")
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), m.EventDate)
}

func TestDecode_EmptyStringAllowedOnOptionalURL(t *testing.T) {
	v := New()
	in := &TestimonialInput{}
	body := `{"name":"Asha","role":"Home owner","content":"Great install","rating":"4","image_url":""}`

	present, err := v.Decode([]byte(body), in)
	require.NoError(t, err)

	m := model.NewTestimonial()
	in.Apply(m, present)

	assert.Equal(t, 4, m.Rating)
	require.NotNil(t, m.ImageURL)
	assert.Equal(t, "", *m.ImageURL)
}

func TestDecode_IntegralFloatIsAnInteger(t *testing.T) {
	v := New()

	for _, rating := range []string{`4.0`, `"4.0"`, `4e0`} {
		in := &TestimonialInput{}
		body := `{"name":"Asha","role":"Home owner","content":"Great install","rating":` + rating + `}`

		present, err := v.Decode([]byte(body), in)
		require.NoError(t, err, rating)

		m := model.NewTestimonial()
		in.Apply(m, present)
		assert.Equal(t, 4, m.Rating, rating)
	}

	_, err := v.Decode([]byte(`{"name":"Asha","role":"Home owner","content":"Great install","rating":1e300}`), &TestimonialInput{})
	require.Error(t, err)
	assert.Equal(t, `"rating" must be a safe number`, err.Error())
}

func TestDecode_ProjectPatchMergesPresentFields(t *testing.T) {
	v := New()
	in := &ProjectPatch{}

	present, err := v.Decode([]byte(`{"title":"  Rooftop 10kW  ","images":["https://cdn.example.com/a.jpg"]}`), in)
	require.NoError(t, err)

	m := model.NewProject()
	m.Location = "Pune"
	cols := in.Apply(m, present)

	assert.Equal(t, []string{"title", "images"}, cols)
	assert.Equal(t, "Rooftop 10kW", m.Title)
	assert.Equal(t, "Pune", m.Location)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, []string(m.Images))
	assert.Equal(t, model.ProjectTypeResidential, m.ProjectType)
}

func TestDecode_ContactStatusWorkflow(t *testing.T) {
	v := New()
	in := &ContactPatch{}

	present, err := v.Decode([]byte(`{"status":"contacted"}`), in)
	require.NoError(t, err)

	m := model.NewContactSubmission()
	cols := in.Apply(m, present)

	assert.Equal(t, []string{"status"}, cols)
	assert.Equal(t, model.LeadStatusContacted, m.Status)
}

func TestDecode_UpdateOmittedVersusUnchanged(t *testing.T) {
	stored := func() *model.Certificate {
		m := model.NewCertificate()
		m.Title = "Solar Excellence Award"
		m.Description = "Awarded in 2024"
		m.DisplayOrder = 3
		m.IsFeatured = true
		return m
	}

	tests := []struct {
		name     string
		body     string
		wantCols []string
	}{
		{
			name:     "omitted optional fields keep the stored value",
			body:     `{"title":"Solar Excellence Award","description":"Awarded in 2025"}`,
			wantCols: []string{"title", "description"},
		},
		{
			name:     "present but unchanged fields are written back as sent",
			body:     `{"title":"Solar Excellence Award","description":"Awarded in 2025","is_featured":true,"display_order":3}`,
			wantCols: []string{"title", "description", "is_featured", "display_order"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &CertificateInput{}
			present, err := New().Decode([]byte(tt.body), in)
			require.NoError(t, err)

			m := stored()
			cols := in.Apply(m, present)

			assert.Equal(t, tt.wantCols, cols)
			assert.Equal(t, "Awarded in 2025", m.Description)
			assert.Equal(t, 3, m.DisplayOrder)
			assert.True(t, m.IsFeatured)
			assert.True(t, m.IsActive)
		})
	}
}
