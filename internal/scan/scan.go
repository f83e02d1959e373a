// Package scan wraps barcode image decoding behind a small interface so
// the rest of the system never depends on the decoding library. When no
// decoder is wired in, the service runs in a degraded, search-only mode.
package scan

import (
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// ErrDecoderUnavailable signals that no decoder is configured; callers
// should fall back to manual search.
var ErrDecoderUnavailable = errors.New("barcode decoder unavailable")

// Decoder turns a captured image into zero or more decoded code strings.
type Decoder interface {
	Decode(r io.Reader) ([]string, error)
}

// ZXingDecoder decodes EAN/UPC, Code 128 and QR codes, which covers the
// symbologies found on surgical supply packaging.
type ZXingDecoder struct {
	readers []gozxing.Reader
}

func NewZXingDecoder() *ZXingDecoder {
	return &ZXingDecoder{
		readers: []gozxing.Reader{
			oned.NewMultiFormatUPCEANReader(nil),
			oned.NewCode128Reader(),
			qrcode.NewQRCodeReader(),
		},
	}
}

// Decode returns the codes found in the image. An image with no
// recognisable barcode yields an empty slice, not an error; errors are
// reserved for unreadable image data.
func (d *ZXingDecoder) Decode(r io.Reader) ([]string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, err
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}

	var codes []string
	for _, reader := range d.readers {
		result, err := reader.Decode(bmp, hints)
		if err != nil {
			continue // this symbology is not in the image
		}
		codes = append(codes, result.GetText())
	}
	return codes, nil
}
