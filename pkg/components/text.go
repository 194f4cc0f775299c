package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextComponent 居中绘制的文本（标题）
type TextComponent struct {
	Text  string
	Face  *text.GoTextFace
	Color color.Color

	// Shadow 投影，nil 表示不绘制
	Shadow *TextShadow
}

// TextShadow 文本投影参数
type TextShadow struct {
	Color color.Color
	// DX, DY 投影偏移（像素），由距离和角度计算得到
	DX, DY float64
	// Blur 模糊半径，以多次偏移绘制近似
	Blur int
}
