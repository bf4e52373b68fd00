package meadow

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// captureDir is where Capture writes PNG files.
const captureDir = "captures"

// Capture queues a PNG export of the garden. The file is written at the
// end of the next Draw, once every queued command has been submitted, so
// the image matches what the player sees. Label becomes part of the
// filename; pass "" for an unlabeled capture.
func (g *Garden) Capture(label string) {
	g.captures = append(g.captures, label)
}

// flushCaptures writes any queued captures and empties the queue.
func (g *Garden) flushCaptures(screen *ebiten.Image) {
	if len(g.captures) == 0 {
		return
	}
	stamp := time.Now().Format("20060102_150405")
	for i, label := range g.captures {
		name := fmt.Sprintf("meadow_%s_%s_%d.png", sanitizeLabel(label), stamp, i)
		path := filepath.Join(captureDir, name)
		if err := SaveImage(screen, path); err != nil {
			debugWarnf("capture %q: %v", label, err)
			continue
		}
		debugWarnf("capture saved to %s", path)
	}
	g.captures = g.captures[:0]
}

// SaveImage writes img to a PNG file at path, creating parent directories
// as needed. Ebiten images hold premultiplied alpha; the file gets
// straight alpha so external tools show the expected colors.
func SaveImage(img *ebiten.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save image: %w", err)
		}
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	img.ReadPixels(pixels)
	return writePNG(path, unpremultiply(pixels, w, h))
}

// unpremultiply converts premultiplied RGBA bytes into a straight-alpha
// image suitable for PNG encoding.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = r, g, b, a
	}
	return out
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel keeps filenames portable. Anything outside letters,
// digits, dots and dashes becomes an underscore.
func sanitizeLabel(label string) string {
	if label == "" {
		return "unlabeled"
	}
	out := make([]byte, 0, len(label))
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z',
			c >= '0' && c <= '9', c == '.', c == '-':
			out = append(out, c)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
