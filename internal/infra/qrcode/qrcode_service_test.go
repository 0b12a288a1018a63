package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateCertificateQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	data, err := svc.GenerateCertificateQR("a1b2c3")

	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestQRCodeService_UnknownLevelFallsBack(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	data, err := svc.GenerateCertificateQR("a1b2c3")

	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestQRCodeService_DistinctHashesDistinctCodes(t *testing.T) {
	svc := NewQRCodeService(128, "H")

	a, err := svc.GenerateCertificateQR("hash-a")
	require.NoError(t, err)
	b, err := svc.GenerateCertificateQR("hash-b")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
