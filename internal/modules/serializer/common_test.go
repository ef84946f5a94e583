package serializer

import (
	"errors"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_JSONShape(t *testing.T) {
	tests := []struct {
		name string
		resp interface{}
		want string
	}{
		{
			name: "empty list renders an array with count",
			resp: List[string](nil),
			want: `{"success":true,"data":[],"count":0}`,
		},
		{
			name: "created record",
			resp: OK("Logo created successfully", map[string]string{"name": "Tata Power"}),
			want: `{"success":true,"message":"Logo created successfully","data":{"name":"Tata Power"}}`,
		},
		{
			name: "delete confirmation has no data",
			resp: OK("Logo deleted successfully", nil),
			want: `{"success":true,"message":"Logo deleted successfully"}`,
		},
		{
			name: "not found",
			resp: NotFound("Testimonial"),
			want: `{"success":false,"message":"Testimonial not found"}`,
		},
		{
			name: "store failure message passes through",
			resp: DBErr(errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")),
			want: `{"success":false,"message":"dial tcp 127.0.0.1:5432: connect: connection refused"}`,
		},
		{
			name: "upload",
			resp: UploadResponse{Response: OK("Files uploaded successfully", nil), URLs: []string{"/images/a.png"}},
			want: `{"success":true,"message":"Files uploaded successfully","urls":["/images/a.png"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := sonic.Marshal(tt.resp)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}
