package utils

import (
	"image"
	"image/color"
	"math"

	"github.com/ojrac/opensimplex-go"
)

// GenerateDisplacementPattern 生成可无缝平铺的置换贴图
//
// R、G 通道分别存放 X、Y 方向的置换量，0.5 表示不偏移。
// 噪声在四维空间的两个圆上采样，因此贴图左右、上下边缘首尾相接。
func GenerateDisplacementPattern(size int, seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if size <= 0 {
		return img
	}

	noiseX := opensimplex.NewNormalized(seed)
	noiseY := opensimplex.NewNormalized(seed + 1)

	// 控制纹理的"颗粒度"，越大起伏越密
	const frequency = 1.6

	for y := 0; y < size; y++ {
		v := float64(y) / float64(size) * 2 * math.Pi
		for x := 0; x < size; x++ {
			u := float64(x) / float64(size) * 2 * math.Pi
			nx, ny, nz, nw := math.Cos(u)*frequency, math.Sin(u)*frequency, math.Cos(v)*frequency, math.Sin(v)*frequency

			r := noiseX.Eval4(nx, ny, nz, nw)
			g := noiseY.Eval4(nx, ny, nz, nw)
			img.SetRGBA(x, y, color.RGBA{R: toByte(r), G: toByte(g), B: 0x80, A: 0xff})
		}
	}
	return img
}

// GenerateBackground 生成水族店背景：由上到下的蓝绿渐变叠加光斑
func GenerateBackground(width, height int, seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}

	top := [3]float64{0x3d, 0xc6, 0xe0}
	bottom := [3]float64{0x06, 0x2f, 0x5c}
	caustics := opensimplex.NewNormalized(seed)

	for y := 0; y < height; y++ {
		t := float64(y) / float64(height)
		for x := 0; x < width; x++ {
			n := caustics.Eval2(float64(x)/90, float64(y)/90)
			// 只保留噪声的亮脊，模拟水下焦散
			light := math.Max(0, 1-math.Abs(n-0.5)*8) * (1 - t) * 60

			var rgb [3]uint8
			for i := range rgb {
				rgb[i] = clampByte(top[i] + (bottom[i]-top[i])*t + light)
			}
			img.SetRGBA(x, y, color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff})
		}
	}
	return img
}

func toByte(v float64) uint8 {
	return clampByte(v * 255)
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
