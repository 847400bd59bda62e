package imaging

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestCropImageGeometry(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	out := CropImage(solid(300, 200, red), 64, 4)

	if b := out.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("输出尺寸错误: %v", b)
	}
	for _, p := range []image.Point{{0, 0}, {63, 0}, {0, 63}, {63, 63}} {
		if a := out.NRGBAAt(p.X, p.Y).A; a != 0 {
			t.Fatalf("角落 %v 应完全透明, alpha=%d", p, a)
		}
	}
	if c := out.NRGBAAt(32, 32); c.A != 255 || c.R < 250 {
		t.Fatalf("中心应为不透明的源颜色: %+v", c)
	}
	// 横图按 cover 缩放，左右两侧被裁掉而上下不留空
	if a := out.NRGBAAt(32, 1).A; a == 0 {
		t.Fatalf("顶部中点应被覆盖")
	}
}

func TestCropImageMaskIsDeterministic(t *testing.T) {
	a := CropImage(solid(120, 90, color.NRGBA{G: 200, A: 255}), 40, 4)
	b := CropImage(solid(90, 120, color.NRGBA{B: 200, A: 255}), 40, 4)
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if (a.NRGBAAt(x, y).A == 0) != (b.NRGBAAt(x, y).A == 0) {
				t.Fatalf("透明边界应只由尺寸决定, 像素 (%d,%d) 不一致", x, y)
			}
		}
	}
}

func TestCropEncodesPNG(t *testing.T) {
	var src bytes.Buffer
	if err := png.Encode(&src, solid(50, 80, color.NRGBA{R: 10, G: 20, B: 30, A: 255})); err != nil {
		t.Fatalf("准备图片失败: %v", err)
	}
	out, ok := Cropper{}.Crop(src.Bytes(), 32)
	if !ok {
		t.Fatalf("合法图片应裁剪成功")
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("输出不是 PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("输出尺寸错误: %v", b)
	}
}

func TestCropFallsBackOnDecodeFailure(t *testing.T) {
	data := []byte("definitely not an image")
	out, ok := Cropper{Oversample: 8}.Crop(data, 32)
	if ok {
		t.Fatalf("无法解码的图片应返回 false")
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("失败时应原样返回输入")
	}
}

// headerOnlyPNG 返回只有签名和 IHDR 的 PNG，文件头声明 w x h 的 RGBA 尺寸。
func headerOnlyPNG(w, h uint32) []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], w)
	binary.BigEndian.PutUint32(ihdr[4:], h)
	ihdr[8], ihdr[9] = 8, 6

	var b bytes.Buffer
	b.WriteString("\x89PNG\r\n\x1a\n")
	binary.Write(&b, binary.BigEndian, uint32(len(ihdr)))
	chunk := append([]byte("IHDR"), ihdr...)
	b.Write(chunk)
	binary.Write(&b, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return b.Bytes()
}

func TestCropRejectsOversizedImage(t *testing.T) {
	data := headerOnlyPNG(20000, 20000)
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		t.Fatalf("测试图片的文件头应可读: %v", err)
	}
	out, ok := Cropper{}.Crop(data, 300)
	if ok {
		t.Fatalf("超出像素上限的图片应返回 false")
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("失败时应原样返回输入")
	}
}

func TestDecodeChecksDimensions(t *testing.T) {
	var decErr *ImageDecodeError
	if _, err := Decode(headerOnlyPNG(20000, 20000)); !errors.As(err, &decErr) {
		t.Fatalf("超大图片应返回 ImageDecodeError, got %v", err)
	}

	var src bytes.Buffer
	if err := png.Encode(&src, solid(40, 30, color.NRGBA{A: 255})); err != nil {
		t.Fatalf("准备图片失败: %v", err)
	}
	img, err := Decode(src.Bytes())
	if err != nil {
		t.Fatalf("正常图片应解码成功: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Fatalf("解码尺寸错误: %v", b)
	}
}

func TestInside(t *testing.T) {
	if !Inside(5, 5, 10) || Inside(0, 0, 10) || Inside(9, 0, 10) {
		t.Fatalf("内切圆判断错误")
	}
}
