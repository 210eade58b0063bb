package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformationString(t *testing.T) {
	tests := []struct {
		name           string
		transformation Transformation
		want           string
	}{
		{
			name:           "empty",
			transformation: Transformation{},
			want:           "",
		},
		{
			name:           "raw passthrough",
			transformation: Transformation{Raw: "w_150,h_100,c_fill"},
			want:           "w_150,h_100,c_fill",
		},
		{
			name:           "raw wins over structured fields",
			transformation: Transformation{Raw: "w_10", Width: "500"},
			want:           "w_10",
		},
		{
			name:           "structured fields sorted by code",
			transformation: Transformation{Width: "150", Height: "100", Crop: "fill"},
			want:           "c_fill,h_100,w_150",
		},
		{
			name: "full set",
			transformation: Transformation{
				Angle:   "45",
				Crop:    "scale",
				Effect:  "sepia",
				Gravity: "face",
				Quality: "80",
				Radius:  "max",
				Width:   "0.5",
			},
			want: "a_45,c_scale,e_sepia,g_face,q_80,r_max,w_0.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.transformation.String())
		})
	}
}

func TestRawTransformation(t *testing.T) {
	transformation := RawTransformation("c_fit,w_100")
	assert.Equal(t, "c_fit,w_100", transformation.String())
}
