package util

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"io"

	"github.com/disintegration/imaging"
)

const thumbnailMaxEdge = 320

// GifThumbnail 取 GIF 的第一帧，等比缩放后编码为 PNG 缩略图
func GifThumbnail(reader io.ReadSeeker) ([]byte, int, int, error) {
	g, err := gif.DecodeAll(reader)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("GIF 解码失败: %w", err)
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return nil, 0, 0, err
	}
	if len(g.Image) == 0 {
		return nil, 0, 0, fmt.Errorf("GIF 不包含任何帧")
	}

	firstFrame := g.Image[0]
	return encodeThumbnail(firstFrame)
}

// ImageThumbnail 普通图片的缩略图
func ImageThumbnail(reader io.ReadSeeker) ([]byte, int, int, error) {
	img, err := imaging.Decode(reader)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("图片解码失败: %w", err)
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return nil, 0, 0, err
	}
	return encodeThumbnail(img)
}

func encodeThumbnail(img image.Image) ([]byte, int, int, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	thumb := imaging.Fit(img, thumbnailMaxEdge, thumbnailMaxEdge, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.PNG); err != nil {
		return nil, 0, 0, fmt.Errorf("缩略图编码失败: %w", err)
	}

	return buf.Bytes(), width, height, nil
}
