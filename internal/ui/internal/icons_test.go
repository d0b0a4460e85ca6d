package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yiponline/shelf/internal/ui/constants"
)

func TestRasterizeIcon(t *testing.T) {
	for _, name := range []string{
		constants.IconProducts,
		constants.IconAdd,
		constants.IconCamera,
		constants.IconAlert,
	} {
		t.Run(name, func(t *testing.T) {
			img, err := RasterizeIcon(name, 32)
			require.NoError(t, err)
			assert.Equal(t, 32, img.Bounds().Dx())

			opaque := 0
			for i := 3; i < len(img.Pix); i += 4 {
				if img.Pix[i] > 0 {
					opaque++
				}
			}
			assert.Positive(t, opaque)
		})
	}
}

func TestRasterizeIcon_Unknown(t *testing.T) {
	_, err := RasterizeIcon("nope", 16)
	assert.Error(t, err)
}
