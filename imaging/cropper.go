// Package imaging 把任意矩形图片裁剪为带透明背景的圆形头像。
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log/slog"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultOversample 是圆形边缘抗锯齿的默认过采样倍数。
const DefaultOversample = 4

// MaxPixels 是允许解码的最大像素数。文件头声明的尺寸超过它时不分配像素缓冲。
const MaxPixels = 40_000_000

// ImageDecodeError 表示源图片无法解码或编码。Cropper 只记录它，不向调用方返回。
type ImageDecodeError struct {
	Op  string
	Err error
}

func (e *ImageDecodeError) Error() string {
	return fmt.Sprintf("image %s: %v", e.Op, e.Err)
}

func (e *ImageDecodeError) Unwrap() error { return e.Err }

// Cropper 生成圆形头像。零值可用。
type Cropper struct {
	// Oversample 小于 1 时使用 DefaultOversample。
	Oversample int
	Logger     *slog.Logger
}

// Crop 把 data 裁剪成 size x size 的圆形 PNG。
// 解码失败时原样返回 data 和 false，调用方需要能处理非圆形图片。
func (c Cropper) Crop(data []byte, size int) ([]byte, bool) {
	out, err := c.crop(data, size)
	if err != nil {
		c.logger().Warn("circular crop failed, using original image", "error", err, "bytes", len(data))
		return data, false
	}
	return out, true
}

func (c Cropper) crop(data []byte, size int) ([]byte, error) {
	if size <= 0 {
		return nil, &ImageDecodeError{Op: "crop", Err: fmt.Errorf("invalid target size %d", size)}
	}
	src, err := Decode(data)
	if err != nil {
		return nil, err
	}
	k := c.Oversample
	if k < 1 {
		k = DefaultOversample
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, CropImage(src, size, k)); err != nil {
		return nil, &ImageDecodeError{Op: "encode", Err: err}
	}
	return buf.Bytes(), nil
}

// Decode 先读取文件头检查尺寸，再解码完整图片。
// 尺寸为零或超过 MaxPixels 的图片返回 *ImageDecodeError。
func Decode(data []byte) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &ImageDecodeError{Op: "decode", Err: err}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, &ImageDecodeError{Op: "decode", Err: fmt.Errorf("dimensions %dx%d exceed limit of %d pixels", cfg.Width, cfg.Height, MaxPixels)}
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &ImageDecodeError{Op: "decode", Err: err}
	}
	return src, nil
}

func (c Cropper) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// CropImage 按 object-fit: cover 把 src 缩放到 size*k 的方形画布上，经圆形遮罩绘制后
// 缩小到 size，并清除像素中心落在内切圆之外的所有像素。
func CropImage(src image.Image, size, k int) *image.NRGBA {
	if k < 1 {
		k = 1
	}
	canvasSize := size * k
	big := image.NewNRGBA(image.Rect(0, 0, canvasSize, canvasSize))

	sb := src.Bounds()
	if sb.Dx() > 0 && sb.Dy() > 0 {
		scale := max(float64(canvasSize)/float64(sb.Dx()), float64(canvasSize)/float64(sb.Dy()))
		dw := int(float64(sb.Dx())*scale + 0.5)
		dh := int(float64(sb.Dy())*scale + 0.5)
		ox := (canvasSize - dw) / 2
		oy := (canvasSize - dh) / 2
		dr := image.Rect(ox, oy, ox+dw, oy+dh)
		draw.CatmullRom.Scale(big, dr, src, sb, draw.Over, &draw.Options{
			DstMask: circleMask{size: canvasSize},
		})
	}

	out := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(out, out.Bounds(), big, big.Bounds(), draw.Src, nil)
	clearOutside(out)
	return out
}

// Inside 报告 size x size 画布上像素 (x, y) 的中心是否位于内切圆内。
func Inside(x, y, size int) bool {
	r := float64(size) / 2
	dx := float64(x) + 0.5 - r
	dy := float64(y) + 0.5 - r
	return dx*dx+dy*dy <= r*r
}

func clearOutside(img *image.NRGBA) {
	size := img.Bounds().Dx()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !Inside(x, y, size) {
				img.SetNRGBA(x, y, color.NRGBA{})
			}
		}
	}
}

// circleMask 是以画布中心为圆心、半径 size/2 的 alpha 遮罩。
type circleMask struct {
	size int
}

func (m circleMask) ColorModel() color.Model { return color.AlphaModel }

func (m circleMask) Bounds() image.Rectangle { return image.Rect(0, 0, m.size, m.size) }

func (m circleMask) At(x, y int) color.Color {
	if Inside(x, y, m.size) {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}
